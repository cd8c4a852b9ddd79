package routers

import (
	"hospital-service/internal/app/services/doctors"

	"github.com/go-chi/chi/v5"
)

func attachDoctorRoutes(router chi.Router, doctorController *doctors.DoctorController) {
	router.Get("/", doctorController.FindAll)
	router.Post("/", doctorController.Create)
}
