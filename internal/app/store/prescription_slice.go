package store

import (
	"context"
	"sync"
	"time"

	"hospital-service/internal/app/contracts"
	"hospital-service/internal/pkg/dto/requests"
	"hospital-service/internal/pkg/exceptions"
	"hospital-service/internal/pkg/models"

	"go.uber.org/zap"
)

type PrescriptionSlice struct {
	mu       sync.Mutex
	client   contracts.PrescriptionClient
	log      *zap.Logger
	items    []models.Prescription
	loading  bool
	errMsg   string
	selected *models.Prescription
	fetchSeq uint64
}

func NewPrescriptionSlice(client contracts.PrescriptionClient, logger *zap.Logger) *PrescriptionSlice {
	return &PrescriptionSlice{
		client: client,
		log:    logger,
	}
}

func (s *PrescriptionSlice) FetchAll(ctx context.Context) error {
	s.mu.Lock()
	s.fetchSeq++
	seq := s.fetchSeq
	s.loading = true
	s.errMsg = ""
	s.mu.Unlock()

	items, err := s.client.FindAll(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.fetchSeq {
		s.log.Debug("PrescriptionSlice.FetchAll stale completion dropped")
		return err
	}
	s.loading = false
	if err != nil {
		s.errMsg = exceptions.ClientMessageOf(err)
		return err
	}
	s.items = items
	s.errMsg = ""
	return nil
}

func (s *PrescriptionSlice) Create(ctx context.Context, request *requests.CreatePrescriptionRequest) (*models.Prescription, error) {
	created, err := s.client.Create(ctx, request)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.errMsg = exceptions.ClientMessageOf(err)
		return nil, err
	}
	s.items = append(s.items, *created)
	s.errMsg = ""
	return created, nil
}

// UpdateTestStatus changes one test inside one prescription. A test moved
// to completed gets its completion timestamp stamped here, matching how
// the lab workflow records it.
func (s *PrescriptionSlice) UpdateTestStatus(ctx context.Context, prescriptionID, testID string, status models.TestStatus) error {
	err := s.client.UpdateTestStatus(ctx, prescriptionID, testID, status)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.errMsg = exceptions.ClientMessageOf(err)
		return err
	}
	for i := range s.items {
		if s.items[i].ID != prescriptionID {
			continue
		}
		for j := range s.items[i].Tests {
			if s.items[i].Tests[j].ID == testID {
				s.items[i].Tests[j].Status = status
				if status == models.TestStatusCompleted {
					now := time.Now().UTC()
					s.items[i].Tests[j].CompletedAt = &now
				}
				break
			}
		}
		break
	}
	s.errMsg = ""
	return nil
}

func (s *PrescriptionSlice) Items() []models.Prescription {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := make([]models.Prescription, len(s.items))
	copy(items, s.items)
	return items
}

func (s *PrescriptionSlice) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *PrescriptionSlice) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}

func (s *PrescriptionSlice) Selected() *models.Prescription {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selected == nil {
		return nil
	}
	selected := *s.selected
	return &selected
}

func (s *PrescriptionSlice) SetSelected(prescription *models.Prescription) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = prescription
}

func (s *PrescriptionSlice) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errMsg = ""
}
