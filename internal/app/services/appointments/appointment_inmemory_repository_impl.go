package appointments

import (
	"context"
	"sync"

	"hospital-service/internal/pkg/models"
)

type appointmentInMemoryRepository struct {
	mu           sync.RWMutex
	appointments []models.Appointment
}

func NewAppointmentInMemoryRepository(seed []models.Appointment) AppointmentRepository {
	appointments := make([]models.Appointment, len(seed))
	copy(appointments, seed)
	return &appointmentInMemoryRepository{appointments: appointments}
}

func (r *appointmentInMemoryRepository) FindAll(ctx context.Context) ([]models.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	appointments := make([]models.Appointment, len(r.appointments))
	copy(appointments, r.appointments)
	return appointments, nil
}

func (r *appointmentInMemoryRepository) FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, a := range r.appointments {
		if a.ID == appointmentID {
			appointment := a
			return &appointment, nil
		}
	}
	return nil, nil
}

func (r *appointmentInMemoryRepository) Insert(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.appointments = append(r.appointments, *appointment)
	inserted := *appointment
	return &inserted, nil
}

func (r *appointmentInMemoryRepository) UpdateStatus(ctx context.Context, appointmentID string, status models.AppointmentStatus) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.appointments {
		if r.appointments[i].ID == appointmentID {
			r.appointments[i].Status = status
			updated := r.appointments[i]
			return &updated, nil
		}
	}
	return nil, nil
}
