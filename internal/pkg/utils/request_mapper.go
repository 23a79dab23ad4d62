package utils

import (
	"strings"

	"epic-connect-service/internal/pkg/constvars"
	"epic-connect-service/internal/pkg/dto/requests"
	"epic-connect-service/internal/pkg/exceptions"
	"epic-connect-service/internal/pkg/fhir_dto"
)

// BuildEpicPatientResource turns the flat create-patient payload into a FHIR
// R4 Patient document. Defaults: active=true, gender="unknown". The
// identifier block is a fixed placeholder; Epic assigns the real identifier
// on create and returns it via the Location header.
func BuildEpicPatientResource(request *requests.CreateEpicPatientRequest) (*fhir_dto.Patient, error) {
	SanitizeCreateEpicPatientRequest(request)
	if err := ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	patient := &fhir_dto.Patient{
		ResourceType: constvars.ResourcePatient,
		Identifier: []fhir_dto.Identifier{
			{
				Use:    constvars.FhirIdentifierUseUsual,
				System: constvars.FhirIdentifierSystemSSN,
				Value:  constvars.FhirIdentifierPlaceholderValue,
			},
		},
		Active:    true,
		Name:      []fhir_dto.HumanName{buildHumanName(request.Name)},
		Gender:    constvars.FhirGenderUnknown,
		BirthDate: request.DOB,
	}

	if request.IsActive != nil {
		patient.Active = *request.IsActive
	}
	if request.Gender != "" {
		patient.Gender = request.Gender
	}

	return patient, nil
}

// buildHumanName splits the full name on whitespace: first token becomes the
// given name, last token the family name. Middle tokens are dropped; a
// single-token name has no family part.
func buildHumanName(fullName string) fhir_dto.HumanName {
	name := fhir_dto.HumanName{Use: constvars.FhirNameUseOfficial}

	tokens := strings.Fields(fullName)
	if len(tokens) == 0 {
		return name
	}

	name.Given = []string{tokens[0]}
	if len(tokens) > 1 {
		name.Family = tokens[len(tokens)-1]
	}
	return name
}
