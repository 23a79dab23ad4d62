package requests

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearchEpicPatientRequest_HasCriteria(t *testing.T) {
	t.Run("All Fields Empty", func(t *testing.T) {
		request := &SearchEpicPatientRequest{}
		assert.False(t, request.HasCriteria())
	})

	t.Run("Single Field Set", func(t *testing.T) {
		fields := []SearchEpicPatientRequest{
			{Family: "Smith"},
			{Given: "Jane"},
			{BirthDate: "1990-05-01"},
			{Identifier: "123"},
			{Telecom: "555-0100"},
			{LegalSex: "female"},
			{PartnerPrefix: "van"},
		}
		for _, request := range fields {
			request := request
			assert.True(t, request.HasCriteria())
		}
	})
}

func TestSearchEpicPatientRequest_ToURLValues(t *testing.T) {
	t.Run("Only Non-Empty Fields Are Encoded", func(t *testing.T) {
		request := &SearchEpicPatientRequest{
			Family:    "Smith",
			BirthDate: "1990-05-01",
		}

		params := request.ToURLValues()

		assert.Equal(t, "Smith", params.Get("family"))
		assert.Equal(t, "1990-05-01", params.Get("birthdate"))
		assert.Len(t, params, 2)
	})

	t.Run("FHIR Hyphenated Parameter Names", func(t *testing.T) {
		request := &SearchEpicPatientRequest{
			AddressCity:       "Madison",
			AddressPostalCode: "53703",
			OwnName:           "Smith",
			LegalSex:          "female",
		}

		params := request.ToURLValues()

		assert.Equal(t, "Madison", params.Get("address-city"))
		assert.Equal(t, "53703", params.Get("address-postalcode"))
		assert.Equal(t, "Smith", params.Get("own-name"))
		assert.Equal(t, "female", params.Get("legal-sex"))
	})
}
