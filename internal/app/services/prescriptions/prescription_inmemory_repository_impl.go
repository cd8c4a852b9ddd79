package prescriptions

import (
	"context"
	"sync"

	"hospital-service/internal/pkg/models"
)

type prescriptionInMemoryRepository struct {
	mu            sync.RWMutex
	prescriptions []models.Prescription
}

func NewPrescriptionInMemoryRepository(seed []models.Prescription) PrescriptionRepository {
	prescriptions := make([]models.Prescription, len(seed))
	copy(prescriptions, seed)
	return &prescriptionInMemoryRepository{prescriptions: prescriptions}
}

func (r *prescriptionInMemoryRepository) FindAll(ctx context.Context) ([]models.Prescription, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	prescriptions := make([]models.Prescription, len(r.prescriptions))
	copy(prescriptions, r.prescriptions)
	return prescriptions, nil
}

func (r *prescriptionInMemoryRepository) FindByID(ctx context.Context, prescriptionID string) (*models.Prescription, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.prescriptions {
		if p.ID == prescriptionID {
			prescription := p
			return &prescription, nil
		}
	}
	return nil, nil
}

func (r *prescriptionInMemoryRepository) Insert(ctx context.Context, prescription *models.Prescription) (*models.Prescription, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.prescriptions = append(r.prescriptions, *prescription)
	inserted := *prescription
	return &inserted, nil
}

func (r *prescriptionInMemoryRepository) UpdateTest(ctx context.Context, prescriptionID string, test *models.Test) (*models.Prescription, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.prescriptions {
		if r.prescriptions[i].ID != prescriptionID {
			continue
		}
		for j := range r.prescriptions[i].Tests {
			if r.prescriptions[i].Tests[j].ID == test.ID {
				r.prescriptions[i].Tests[j] = *test
				updated := r.prescriptions[i]
				return &updated, nil
			}
		}
	}
	return nil, nil
}
