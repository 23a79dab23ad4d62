package patients

import (
	"context"

	"epic-connect-service/internal/pkg/dto/requests"
)

type PatientUsecase interface {
	SearchPatient(ctx context.Context, request *requests.SearchEpicPatientRequest) (map[string]interface{}, error)
	GetPatient(ctx context.Context, patientID string) (map[string]interface{}, error)
	// CreatePatient returns an error only for input validation failures.
	// Remote create failures are logged and absorbed; the caller cannot tell
	// them apart from success.
	CreatePatient(ctx context.Context, request *requests.CreateEpicPatientRequest) error
}
