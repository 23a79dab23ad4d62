package patients

import (
	"context"
	"net/http"
	"time"

	"epic-connect-service/internal/app/config"
	"epic-connect-service/internal/pkg/constvars"
	"epic-connect-service/internal/pkg/dto/requests"
	"epic-connect-service/internal/pkg/exceptions"
	"epic-connect-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type PatientController struct {
	Log            *zap.Logger
	PatientUsecase PatientUsecase
	requestTimeout time.Duration
}

func NewPatientController(logger *zap.Logger, patientUsecase PatientUsecase, internalConfig *config.InternalConfig) *PatientController {
	return &PatientController{
		Log:            logger,
		PatientUsecase: patientUsecase,
		requestTimeout: time.Duration(internalConfig.App.RequestTimeoutInSeconds) * time.Second,
	}
}

func (ctrl *PatientController) SearchPatient(w http.ResponseWriter, r *http.Request) {
	request := new(requests.SearchEpicPatientRequest)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.requestTimeout)
	defer cancel()

	result, err := ctrl.PatientUsecase.SearchPatient(ctx, request)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildProxyResponse(w, constvars.StatusOK, result)
}

func (ctrl *PatientController) GetPatient(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, constvars.URLParamPatientID)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.requestTimeout)
	defer cancel()

	result, err := ctrl.PatientUsecase.GetPatient(ctx, patientID)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildProxyResponse(w, constvars.StatusOK, result)
}

func (ctrl *PatientController) CreatePatient(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateEpicPatientRequest)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.requestTimeout)
	defer cancel()

	err = ctrl.PatientUsecase.CreatePatient(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	// Data is always null on create; remote outcomes are not reflected here.
	utils.BuildProxyResponse(w, constvars.StatusOK, nil)
}
