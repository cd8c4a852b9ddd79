package tests

import (
	"context"
	"sync"

	"hospital-service/internal/pkg/models"
)

type testInMemoryRepository struct {
	mu    sync.RWMutex
	tests []models.Test
}

// NewTestInMemoryRepository seeds the lab catalog. The dev server passes
// the tests flattened out of the canned prescriptions, so the two
// surfaces start out consistent.
func NewTestInMemoryRepository(seed []models.Test) TestRepository {
	tests := make([]models.Test, len(seed))
	copy(tests, seed)
	return &testInMemoryRepository{tests: tests}
}

func (r *testInMemoryRepository) FindAll(ctx context.Context) ([]models.Test, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tests := make([]models.Test, len(r.tests))
	copy(tests, r.tests)
	return tests, nil
}

func (r *testInMemoryRepository) FindByID(ctx context.Context, testID string) (*models.Test, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, t := range r.tests {
		if t.ID == testID {
			test := t
			return &test, nil
		}
	}
	return nil, nil
}

func (r *testInMemoryRepository) Insert(ctx context.Context, test *models.Test) (*models.Test, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tests = append(r.tests, *test)
	inserted := *test
	return &inserted, nil
}

func (r *testInMemoryRepository) Update(ctx context.Context, test *models.Test) (*models.Test, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.tests {
		if r.tests[i].ID == test.ID {
			r.tests[i] = *test
			updated := r.tests[i]
			return &updated, nil
		}
	}
	return nil, nil
}
