package store

import (
	"context"
	"sync"

	"hospital-service/internal/app/contracts"
	"hospital-service/internal/pkg/dto/requests"
	"hospital-service/internal/pkg/exceptions"
	"hospital-service/internal/pkg/models"

	"go.uber.org/zap"
)

// DoctorSlice owns the doctor collection for the client session: the list
// itself, the in-flight flag, the last user-facing error and the currently
// selected record. All state transitions go through the mutex; consumers
// read snapshots.
type DoctorSlice struct {
	mu       sync.Mutex
	client   contracts.DoctorClient
	log      *zap.Logger
	items    []models.Doctor
	loading  bool
	errMsg   string
	selected *models.Doctor
	fetchSeq uint64
}

func NewDoctorSlice(client contracts.DoctorClient, logger *zap.Logger) *DoctorSlice {
	return &DoctorSlice{
		client: client,
		log:    logger,
	}
}

// FetchAll replaces the collection with the client's result. Overlapping
// fetches are sequenced: only the latest issued fetch may write its result
// back, stale completions are dropped without touching state.
func (s *DoctorSlice) FetchAll(ctx context.Context) error {
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
		s.log.Debug("DoctorSlice.FetchAll stale completion dropped")
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

// Create appends the created record on success. On failure the collection
// is left untouched and the client message becomes the slice error.
func (s *DoctorSlice) Create(ctx context.Context, request *requests.CreateDoctorRequest) (*models.Doctor, error) {
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

// Items returns a copy of the collection in fetch order.
func (s *DoctorSlice) Items() []models.Doctor {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := make([]models.Doctor, len(s.items))
	copy(items, s.items)
	return items
}

func (s *DoctorSlice) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *DoctorSlice) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}

func (s *DoctorSlice) Selected() *models.Doctor {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selected == nil {
		return nil
	}
	selected := *s.selected
	return &selected
}

func (s *DoctorSlice) SetSelected(doctor *models.Doctor) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = doctor
}

func (s *DoctorSlice) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errMsg = ""
}
