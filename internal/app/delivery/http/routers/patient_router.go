package routers

import (
	"fmt"

	"epic-connect-service/internal/app/services/core/patients"
	"epic-connect-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(router chi.Router, patientController *patients.PatientController) {
	router.Post("/patient_search", patientController.SearchPatient)
	router.Get(fmt.Sprintf("/patient/{%s}", constvars.URLParamPatientID), patientController.GetPatient)
	router.Post("/create_patient", patientController.CreatePatient)
}
