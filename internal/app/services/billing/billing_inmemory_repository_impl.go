package billing

import (
	"context"
	"sync"

	"hospital-service/internal/pkg/models"
)

type billingInMemoryRepository struct {
	mu      sync.RWMutex
	records []models.Billing
}

func NewBillingInMemoryRepository(seed []models.Billing) BillingRepository {
	records := make([]models.Billing, len(seed))
	copy(records, seed)
	return &billingInMemoryRepository{records: records}
}

func (r *billingInMemoryRepository) FindAll(ctx context.Context) ([]models.Billing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	records := make([]models.Billing, len(r.records))
	copy(records, r.records)
	return records, nil
}

func (r *billingInMemoryRepository) FindByID(ctx context.Context, billingID string) (*models.Billing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, b := range r.records {
		if b.ID == billingID {
			record := b
			return &record, nil
		}
	}
	return nil, nil
}

func (r *billingInMemoryRepository) Insert(ctx context.Context, record *models.Billing) (*models.Billing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, *record)
	inserted := *record
	return &inserted, nil
}

func (r *billingInMemoryRepository) Update(ctx context.Context, record *models.Billing) (*models.Billing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.records {
		if r.records[i].ID == record.ID {
			r.records[i] = *record
			updated := r.records[i]
			return &updated, nil
		}
	}
	return nil, nil
}
