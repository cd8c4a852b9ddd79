package patients

import (
	"context"
	"sync"

	"hospital-service/internal/pkg/models"
)

type patientInMemoryRepository struct {
	mu       sync.RWMutex
	patients []models.Patient
}

func NewPatientInMemoryRepository(seed []models.Patient) PatientRepository {
	patients := make([]models.Patient, len(seed))
	copy(patients, seed)
	return &patientInMemoryRepository{patients: patients}
}

func (r *patientInMemoryRepository) FindAll(ctx context.Context) ([]models.Patient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	patients := make([]models.Patient, len(r.patients))
	copy(patients, r.patients)
	return patients, nil
}

func (r *patientInMemoryRepository) FindByID(ctx context.Context, patientID string) (*models.Patient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.patients {
		if p.ID == patientID {
			patient := p
			return &patient, nil
		}
	}
	return nil, nil
}

func (r *patientInMemoryRepository) Insert(ctx context.Context, patient *models.Patient) (*models.Patient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.patients = append(r.patients, *patient)
	inserted := *patient
	return &inserted, nil
}
