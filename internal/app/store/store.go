package store

import (
	"context"

	"hospital-service/internal/app/contracts"
	"hospital-service/internal/pkg/models"

	"go.uber.org/zap"
)

// Store composes the per-entity slices behind one handle, the way the
// dashboard consumes them.
type Store struct {
	Doctors       *DoctorSlice
	Patients      *PatientSlice
	Appointments  *AppointmentSlice
	Prescriptions *PrescriptionSlice
	Billing       *BillingSlice
	Auth          *AuthSlice
}

type Clients struct {
	Doctor       contracts.DoctorClient
	Patient      contracts.PatientClient
	Appointment  contracts.AppointmentClient
	Prescription contracts.PrescriptionClient
	Billing      contracts.BillingClient
	Auth         contracts.AuthClient
}

func New(clients Clients, logger *zap.Logger) *Store {
	return &Store{
		Doctors:       NewDoctorSlice(clients.Doctor, logger),
		Patients:      NewPatientSlice(clients.Patient, logger),
		Appointments:  NewAppointmentSlice(clients.Appointment, logger),
		Prescriptions: NewPrescriptionSlice(clients.Prescription, logger),
		Billing:       NewBillingSlice(clients.Billing, logger),
		Auth:          NewAuthSlice(clients.Auth, logger),
	}
}

// FetchAll loads every collection sequentially. The first failure stops
// the load and is returned; collections fetched before it keep their data.
func (s *Store) FetchAll(ctx context.Context) error {
	if err := s.Doctors.FetchAll(ctx); err != nil {
		return err
	}
	if err := s.Patients.FetchAll(ctx); err != nil {
		return err
	}
	if err := s.Appointments.FetchAll(ctx); err != nil {
		return err
	}
	if err := s.Prescriptions.FetchAll(ctx); err != nil {
		return err
	}
	return s.Billing.FetchAll(ctx)
}

// Stats derives the dashboard headline numbers from the loaded slices.
// Revenue counts the paid amount of every billing record, matching how
// the admin dashboard sums it.
func (s *Store) Stats() models.HospitalStats {
	appointments := s.Appointments.Items()
	stats := models.HospitalStats{
		TotalDoctors:      len(s.Doctors.Items()),
		TotalPatients:     len(s.Patients.Items()),
		TotalAppointments: len(appointments),
	}
	for _, a := range appointments {
		switch a.Status {
		case models.AppointmentStatusScheduled, models.AppointmentStatusConfirmed:
			stats.PendingAppointments++
		case models.AppointmentStatusCompleted:
			stats.CompletedAppointments++
		}
	}
	for _, b := range s.Billing.Items() {
		stats.TotalRevenue += b.PaidAmount
	}
	return stats
}
