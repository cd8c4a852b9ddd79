package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hospital-service/internal/app/clients/mockdata"
	"hospital-service/internal/app/config"
	"hospital-service/internal/app/delivery/http/middlewares"
	"hospital-service/internal/app/delivery/http/routers"
	"hospital-service/internal/app/drivers/logger"
	"hospital-service/internal/app/services/appointments"
	"hospital-service/internal/app/services/billing"
	"hospital-service/internal/app/services/doctors"
	"hospital-service/internal/app/services/patients"
	"hospital-service/internal/app/services/prescriptions"
	"hospital-service/internal/app/services/tests"
	"hospital-service/internal/app/services/users"
	"hospital-service/internal/pkg/models"
	"hospital-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// seedPassword is the shared credential of the canned demo accounts.
const seedPassword = "password123"

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)
	defer log.Sync()

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatal("Error loading location", zap.Error(err))
	}
	time.Local = location

	chiRouter := chi.NewRouter()
	bootstrapTheApp(chiRouter, internalConfig, log)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", internalConfig.App.Port))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	log.Info("Waiting for pending requests already received by the server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exiting")
}

func bootstrapTheApp(chiRouter *chi.Mux, internalConfig *config.InternalConfig, log *zap.Logger) {
	seedHash, err := utils.HashPassword(seedPassword)
	if err != nil {
		log.Fatal("Failed to hash seed password", zap.Error(err))
	}
	accounts := make([]users.UserAccount, 0)
	for _, u := range mockdata.Users() {
		accounts = append(accounts, users.UserAccount{User: u, PasswordHash: seedHash})
	}

	seedPrescriptions := mockdata.Prescriptions()
	seedTests := make([]models.Test, 0)
	for _, p := range seedPrescriptions {
		seedTests = append(seedTests, p.Tests...)
	}

	doctorRepository := doctors.NewDoctorInMemoryRepository(mockdata.Doctors())
	patientRepository := patients.NewPatientInMemoryRepository(mockdata.Patients())
	appointmentRepository := appointments.NewAppointmentInMemoryRepository(mockdata.Appointments())
	prescriptionRepository := prescriptions.NewPrescriptionInMemoryRepository(seedPrescriptions)
	billingRepository := billing.NewBillingInMemoryRepository(mockdata.Billing())
	testRepository := tests.NewTestInMemoryRepository(seedTests)
	userRepository := users.NewUserInMemoryRepository(accounts)

	doctorUsecase := doctors.NewDoctorUsecase(doctorRepository, log)
	patientUsecase := patients.NewPatientUsecase(patientRepository, log)
	appointmentUsecase := appointments.NewAppointmentUsecase(appointmentRepository, doctorRepository, patientRepository, log)
	prescriptionUsecase := prescriptions.NewPrescriptionUsecase(prescriptionRepository, log)
	billingUsecase := billing.NewBillingUsecase(billingRepository, log)
	testUsecase := tests.NewTestUsecase(testRepository, log)
	userUsecase := users.NewUserUsecase(userRepository, internalConfig, log)

	doctorController := doctors.NewDoctorController(log, doctorUsecase)
	patientController := patients.NewPatientController(log, patientUsecase)
	appointmentController := appointments.NewAppointmentController(log, appointmentUsecase)
	prescriptionController := prescriptions.NewPrescriptionController(log, prescriptionUsecase)
	billingController := billing.NewBillingController(log, billingUsecase)
	testController := tests.NewTestController(log, testUsecase)
	userController := users.NewUserController(log, userUsecase)

	mw := middlewares.NewMiddlewares(log, internalConfig)

	routers.SetupRoutes(
		chiRouter,
		internalConfig,
		mw,
		doctorController,
		patientController,
		appointmentController,
		prescriptionController,
		billingController,
		testController,
		userController,
	)
}
