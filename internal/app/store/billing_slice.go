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

type BillingSlice struct {
	mu       sync.Mutex
	client   contracts.BillingClient
	log      *zap.Logger
	items    []models.Billing
	loading  bool
	errMsg   string
	selected *models.Billing
	fetchSeq uint64
}

func NewBillingSlice(client contracts.BillingClient, logger *zap.Logger) *BillingSlice {
	return &BillingSlice{
		client: client,
		log:    logger,
	}
}

func (s *BillingSlice) FetchAll(ctx context.Context) error {
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
		s.log.Debug("BillingSlice.FetchAll stale completion dropped")
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

func (s *BillingSlice) Create(ctx context.Context, request *requests.CreateBillingRequest) (*models.Billing, error) {
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

// UpdateStatus rewrites status and paid amount of one record. PaidAt is
// stamped only on the transition to paid; any other status leaves the
// previous timestamp alone.
func (s *BillingSlice) UpdateStatus(ctx context.Context, billingID string, status models.BillingStatus, paidAmount float64) error {
	err := s.client.UpdateStatus(ctx, billingID, status, paidAmount)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.errMsg = exceptions.ClientMessageOf(err)
		return err
	}
	for i := range s.items {
		if s.items[i].ID == billingID {
			s.items[i].Status = status
			s.items[i].PaidAmount = paidAmount
			if status == models.BillingStatusPaid {
				now := time.Now().UTC()
				s.items[i].PaidAt = &now
			}
			break
		}
	}
	s.errMsg = ""
	return nil
}

func (s *BillingSlice) Items() []models.Billing {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := make([]models.Billing, len(s.items))
	copy(items, s.items)
	return items
}

func (s *BillingSlice) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *BillingSlice) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}

func (s *BillingSlice) Selected() *models.Billing {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selected == nil {
		return nil
	}
	selected := *s.selected
	return &selected
}

func (s *BillingSlice) SetSelected(record *models.Billing) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = record
}

func (s *BillingSlice) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errMsg = ""
}
