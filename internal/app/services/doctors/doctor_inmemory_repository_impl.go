package doctors

import (
	"context"
	"sync"

	"hospital-service/internal/pkg/models"
)

// doctorInMemoryRepository keeps doctors in insertion order behind a
// mutex. It backs the development server; there is no persistence.
type doctorInMemoryRepository struct {
	mu      sync.RWMutex
	doctors []models.Doctor
}

func NewDoctorInMemoryRepository(seed []models.Doctor) DoctorRepository {
	doctors := make([]models.Doctor, len(seed))
	copy(doctors, seed)
	return &doctorInMemoryRepository{doctors: doctors}
}

func (r *doctorInMemoryRepository) FindAll(ctx context.Context) ([]models.Doctor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	doctors := make([]models.Doctor, len(r.doctors))
	copy(doctors, r.doctors)
	return doctors, nil
}

func (r *doctorInMemoryRepository) FindByID(ctx context.Context, doctorID string) (*models.Doctor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, d := range r.doctors {
		if d.ID == doctorID {
			doctor := d
			return &doctor, nil
		}
	}
	return nil, nil
}

func (r *doctorInMemoryRepository) Insert(ctx context.Context, doctor *models.Doctor) (*models.Doctor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.doctors = append(r.doctors, *doctor)
	inserted := *doctor
	return &inserted, nil
}
