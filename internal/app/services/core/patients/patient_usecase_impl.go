package patients

import (
	"context"

	"epic-connect-service/internal/app/services/core/users"
	epicPatients "epic-connect-service/internal/app/services/epic/patients"
	"epic-connect-service/internal/pkg/constvars"
	"epic-connect-service/internal/pkg/dto/requests"
	"epic-connect-service/internal/pkg/exceptions"
	"epic-connect-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type patientUsecase struct {
	Log               *zap.Logger
	PatientEpicClient epicPatients.PatientEpicClient
	UserRepository    users.UserRepository
}

func NewPatientUsecase(
	logger *zap.Logger,
	patientEpicClient epicPatients.PatientEpicClient,
	userRepository users.UserRepository,
) PatientUsecase {
	return &patientUsecase{
		Log:               logger,
		PatientEpicClient: patientEpicClient,
		UserRepository:    userRepository,
	}
}

func (u *patientUsecase) SearchPatient(ctx context.Context, request *requests.SearchEpicPatientRequest) (map[string]interface{}, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	u.Log.Info("patientUsecase.SearchPatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if !request.HasCriteria() {
		return nil, exceptions.ErrSearchQueryEmpty(nil)
	}
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	return u.PatientEpicClient.SearchPatient(ctx, request.ToURLValues())
}

func (u *patientUsecase) GetPatient(ctx context.Context, patientID string) (map[string]interface{}, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	u.Log.Info("patientUsecase.GetPatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	return u.PatientEpicClient.FindPatientByID(ctx, patientID)
}

func (u *patientUsecase) CreatePatient(ctx context.Context, request *requests.CreateEpicPatientRequest) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	u.Log.Info("patientUsecase.CreatePatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	patient, err := utils.BuildEpicPatientResource(request)
	if err != nil {
		return err
	}

	// Best-effort contract: once the input validated, remote and store
	// failures are logged but never surfaced to the caller.
	locationRef, err := u.PatientEpicClient.CreatePatient(ctx, patient)
	if err != nil {
		u.Log.Error("patientUsecase.CreatePatient failed to create patient in Epic",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil
	}

	epicIdentifier := utils.ExtractResourceID(locationRef)
	err = u.UserRepository.UpdateEpicIdentifierByEmail(ctx, request.Email, epicIdentifier)
	if err != nil {
		u.Log.Error("patientUsecase.CreatePatient failed to store Epic identifier",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEmailKey, request.Email),
			zap.Error(err),
		)
		return nil
	}

	u.Log.Info("patientUsecase.CreatePatient stored Epic identifier",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, request.Email),
		zap.String(constvars.LoggingPatientIDKey, epicIdentifier),
	)
	return nil
}
