package routers

import (
	"hospital-service/internal/app/services/appointments"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, appointmentController *appointments.AppointmentController) {
	router.Get("/", appointmentController.FindAll)
	router.Post("/", appointmentController.Create)
	router.Patch("/{appointment_id}/status", appointmentController.UpdateStatus)
}
