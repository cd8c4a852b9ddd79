package routers

import (
	"hospital-service/internal/app/services/patients"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(router chi.Router, patientController *patients.PatientController) {
	router.Get("/", patientController.FindAll)
	router.Post("/", patientController.Create)
}
