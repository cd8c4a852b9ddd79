// hospital-desk is a console walkthrough of the client layer: it signs in,
// resolves the role layout, loads every collection and prints the headline
// numbers. With APP_USE_MOCK_CLIENTS=true it runs fully offline against the
// canned datasets; otherwise it talks to the configured backends.
package main

import (
	"context"
	"fmt"
	"time"

	"hospital-service/internal/app/api"
	"hospital-service/internal/app/clients/appointments"
	"hospital-service/internal/app/clients/auth"
	"hospital-service/internal/app/clients/billing"
	"hospital-service/internal/app/clients/doctors"
	"hospital-service/internal/app/clients/patients"
	"hospital-service/internal/app/clients/prescriptions"
	"hospital-service/internal/app/config"
	"hospital-service/internal/app/drivers/logger"
	"hospital-service/internal/app/layouts"
	"hospital-service/internal/app/store"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/utils"

	"go.uber.org/zap"
)

const demoEmail = "admin@hospital.com"

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)
	defer log.Sync()

	clients := buildClients(internalConfig, log)
	s := store.New(clients, log)

	ctx := context.WithValue(context.Background(), constvars.ContextRequestIDKey, utils.GenerateRequestID())
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	user, err := s.Auth.Login(ctx, demoEmail, "password123")
	if err != nil {
		log.Fatal("Login failed", zap.Error(err))
	}

	layout := layouts.LayoutFor(user)
	fmt.Printf("Signed in as %s (%s), layout %q:\n", user.Name, user.Role, layout.Name)
	for _, item := range layout.Menu {
		fmt.Printf("  %-18s %s\n", item.Name, item.Href)
	}

	if err := s.FetchAll(ctx); err != nil {
		log.Fatal("Initial load failed", zap.Error(err))
	}

	stats := s.Stats()
	fmt.Println()
	fmt.Printf("Doctors:      %d\n", stats.TotalDoctors)
	fmt.Printf("Patients:     %d\n", stats.TotalPatients)
	fmt.Printf("Appointments: %d (%d pending, %d completed)\n",
		stats.TotalAppointments, stats.PendingAppointments, stats.CompletedAppointments)
	fmt.Printf("Revenue:      %.2f\n", stats.TotalRevenue)
}

func buildClients(internalConfig *config.InternalConfig, log *zap.Logger) store.Clients {
	if internalConfig.App.UseMockClients {
		return store.Clients{
			Doctor:       doctors.NewDoctorMockClient(constvars.MockFetchDelay, constvars.MockCreateDelay, log),
			Patient:      patients.NewPatientMockClient(constvars.MockFetchDelay, constvars.MockCreateDelay, log),
			Appointment:  appointments.NewAppointmentMockClient(constvars.MockFetchDelay, constvars.MockCreateDelay, constvars.MockUpdateDelay, log),
			Prescription: prescriptions.NewPrescriptionMockClient(constvars.MockFetchDelay, constvars.MockCreateDelay, constvars.MockUpdateDelay, log),
			Billing:      billing.NewBillingMockClient(constvars.MockFetchDelay, constvars.MockCreateDelay, constvars.MockUpdateDelay, log),
			Auth:         auth.NewAuthMockClient(constvars.MockFetchDelay, log),
		}
	}

	hospital := api.NewHospitalEndpoints(internalConfig.Upstream)
	userAPI := api.NewUserEndpoints(internalConfig.Upstream)
	return store.Clients{
		Doctor:       doctors.NewDoctorHTTPClient(hospital.Doctors, log),
		Patient:      patients.NewPatientHTTPClient(hospital.Patients, log),
		Appointment:  appointments.NewAppointmentHTTPClient(hospital.Appointments, log),
		Prescription: prescriptions.NewPrescriptionHTTPClient(hospital.Prescriptions, log),
		Billing:      billing.NewBillingHTTPClient(hospital.Billing, log),
		Auth:         auth.NewAuthHTTPClient(userAPI.Login, userAPI.Register, log),
	}
}
