package utils

import (
	"testing"

	"epic-connect-service/internal/pkg/constvars"
	"epic-connect-service/internal/pkg/dto/requests"
	"epic-connect-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
)

func TestBuildEpicPatientResource(t *testing.T) {
	t.Run("Minimal Valid Input", func(t *testing.T) {
		request := &requests.CreateEpicPatientRequest{
			Name: "Jane Doe",
			DOB:  "1990-05-01",
		}

		patient, err := BuildEpicPatientResource(request)

		assert.NoError(t, err)
		assert.Equal(t, constvars.ResourcePatient, patient.ResourceType)
		assert.True(t, patient.Active, "active should default to true")
		assert.Equal(t, constvars.FhirGenderUnknown, patient.Gender, "gender should default to unknown")
		assert.Equal(t, "1990-05-01", patient.BirthDate)
	})

	t.Run("Placeholder Identifier Block", func(t *testing.T) {
		request := &requests.CreateEpicPatientRequest{
			Name: "Jane Doe",
			DOB:  "1990-05-01",
		}

		patient, err := BuildEpicPatientResource(request)

		assert.NoError(t, err)
		assert.Len(t, patient.Identifier, 1)
		assert.Equal(t, constvars.FhirIdentifierUseUsual, patient.Identifier[0].Use)
		assert.Equal(t, constvars.FhirIdentifierSystemSSN, patient.Identifier[0].System)
		assert.Equal(t, constvars.FhirIdentifierPlaceholderValue, patient.Identifier[0].Value)
	})

	t.Run("Single Token Name Has No Family", func(t *testing.T) {
		request := &requests.CreateEpicPatientRequest{
			Name: "Madonna",
			DOB:  "1958-08-16",
		}

		patient, err := BuildEpicPatientResource(request)

		assert.NoError(t, err)
		assert.Len(t, patient.Name, 1)
		assert.Equal(t, constvars.FhirNameUseOfficial, patient.Name[0].Use)
		assert.Equal(t, []string{"Madonna"}, patient.Name[0].Given)
		assert.Empty(t, patient.Name[0].Family)
	})

	t.Run("Middle Tokens Are Dropped", func(t *testing.T) {
		request := &requests.CreateEpicPatientRequest{
			Name: "Jane Elizabeth van Dyke",
			DOB:  "1990-05-01",
		}

		patient, err := BuildEpicPatientResource(request)

		assert.NoError(t, err)
		assert.Equal(t, []string{"Jane"}, patient.Name[0].Given)
		assert.Equal(t, "Dyke", patient.Name[0].Family)
	})

	t.Run("Gender Is Lowercase Normalized", func(t *testing.T) {
		request := &requests.CreateEpicPatientRequest{
			Name:   "Jane Doe",
			DOB:    "1990-05-01",
			Gender: "FeMale",
		}

		patient, err := BuildEpicPatientResource(request)

		assert.NoError(t, err)
		assert.Equal(t, constvars.FhirGenderFemale, patient.Gender)
	})

	t.Run("Invalid Gender Fails", func(t *testing.T) {
		request := &requests.CreateEpicPatientRequest{
			Name:   "Jane Doe",
			DOB:    "1990-05-01",
			Gender: "nonbinary",
		}

		patient, err := BuildEpicPatientResource(request)

		assert.Nil(t, patient)
		assertBadRequest(t, err)
	})

	t.Run("Missing Name Fails", func(t *testing.T) {
		request := &requests.CreateEpicPatientRequest{
			DOB: "1990-05-01",
		}

		patient, err := BuildEpicPatientResource(request)

		assert.Nil(t, patient)
		assertBadRequest(t, err)
	})

	t.Run("Missing DOB Fails", func(t *testing.T) {
		request := &requests.CreateEpicPatientRequest{
			Name: "Jane Doe",
		}

		patient, err := BuildEpicPatientResource(request)

		assert.Nil(t, patient)
		assertBadRequest(t, err)
	})

	t.Run("Malformed DOB Fails", func(t *testing.T) {
		request := &requests.CreateEpicPatientRequest{
			Name: "Jane Doe",
			DOB:  "01-05-1990",
		}

		patient, err := BuildEpicPatientResource(request)

		assert.Nil(t, patient)
		assertBadRequest(t, err)
	})

	t.Run("IsActive Override", func(t *testing.T) {
		inactive := false
		request := &requests.CreateEpicPatientRequest{
			Name:     "Jane Doe",
			DOB:      "1990-05-01",
			IsActive: &inactive,
		}

		patient, err := BuildEpicPatientResource(request)

		assert.NoError(t, err)
		assert.False(t, patient.Active)
	})

	t.Run("Email Is Lowercased By Sanitization", func(t *testing.T) {
		request := &requests.CreateEpicPatientRequest{
			Name:  "Jane Doe",
			DOB:   "1990-05-01",
			Email: "  Jane.Doe@Example.COM  ",
		}

		_, err := BuildEpicPatientResource(request)

		assert.NoError(t, err)
		assert.Equal(t, "jane.doe@example.com", request.Email)
	})
}

func assertBadRequest(t *testing.T, err error) {
	t.Helper()
	assert.Error(t, err)
	customErr, ok := err.(*exceptions.CustomError)
	assert.True(t, ok, "expected a CustomError")
	assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
}
