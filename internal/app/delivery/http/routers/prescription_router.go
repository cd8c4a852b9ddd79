package routers

import (
	"hospital-service/internal/app/services/prescriptions"

	"github.com/go-chi/chi/v5"
)

func attachPrescriptionRoutes(router chi.Router, prescriptionController *prescriptions.PrescriptionController) {
	router.Get("/", prescriptionController.FindAll)
	router.Post("/", prescriptionController.Create)
	router.Patch("/{prescription_id}/tests/{test_id}/status", prescriptionController.UpdateTestStatus)
}
