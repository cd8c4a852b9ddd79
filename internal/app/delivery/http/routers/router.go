package routers

import (
	"time"

	"hospital-service/internal/app/config"
	"hospital-service/internal/app/delivery/http/middlewares"
	"hospital-service/internal/app/services/appointments"
	"hospital-service/internal/app/services/billing"
	"hospital-service/internal/app/services/doctors"
	"hospital-service/internal/app/services/patients"
	"hospital-service/internal/app/services/prescriptions"
	"hospital-service/internal/app/services/tests"
	"hospital-service/internal/app/services/users"
	"hospital-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	doctorController *doctors.DoctorController,
	patientController *patients.PatientController,
	appointmentController *appointments.AppointmentController,
	prescriptionController *prescriptions.PrescriptionController,
	billingController *billing.BillingController,
	testController *tests.TestController,
	userController *users.UserController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	router.Use(httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second))

	router.Use(middlewares.RequestID)
	router.Use(middlewares.Logging)

	router.Route(constvars.EndpointDoctors, func(r chi.Router) {
		attachDoctorRoutes(r, doctorController)
	})
	router.Route(constvars.EndpointPatients, func(r chi.Router) {
		attachPatientRoutes(r, patientController)
	})
	router.Route(constvars.EndpointAppointments, func(r chi.Router) {
		attachAppointmentRoutes(r, appointmentController)
	})
	router.Route(constvars.EndpointPrescriptions, func(r chi.Router) {
		attachPrescriptionRoutes(r, prescriptionController)
	})
	router.Route(constvars.EndpointBilling, func(r chi.Router) {
		attachBillingRoutes(r, billingController)
	})
	router.Route(constvars.EndpointTests, func(r chi.Router) {
		attachTestRoutes(r, testController)
	})

	attachUserRoutes(router, userController)
}
