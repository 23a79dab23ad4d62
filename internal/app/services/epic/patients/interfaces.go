package patients

import (
	"context"
	"net/url"

	"epic-connect-service/internal/pkg/fhir_dto"
)

// PatientEpicClient issues Patient calls against Epic's FHIR R4 endpoint.
// Every operation authorizes first, then calls, then maps the status: 200
// with a body → parsed map, 200 empty → no-content, 404 → not-found,
// anything else → generic server error.
type PatientEpicClient interface {
	SearchPatient(ctx context.Context, params url.Values) (map[string]interface{}, error)
	FindPatientByID(ctx context.Context, patientID string) (map[string]interface{}, error)
	// CreatePatient posts the resource and returns the Location reference of
	// the created Patient on a 201.
	CreatePatient(ctx context.Context, patient *fhir_dto.Patient) (string, error)
}
