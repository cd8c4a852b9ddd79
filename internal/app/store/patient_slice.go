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

// PatientSlice mirrors DoctorSlice for the patient collection.
type PatientSlice struct {
	mu       sync.Mutex
	client   contracts.PatientClient
	log      *zap.Logger
	items    []models.Patient
	loading  bool
	errMsg   string
	selected *models.Patient
	fetchSeq uint64
}

func NewPatientSlice(client contracts.PatientClient, logger *zap.Logger) *PatientSlice {
	return &PatientSlice{
		client: client,
		log:    logger,
	}
}

func (s *PatientSlice) FetchAll(ctx context.Context) error {
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
		s.log.Debug("PatientSlice.FetchAll stale completion dropped")
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

func (s *PatientSlice) Create(ctx context.Context, request *requests.CreatePatientRequest) (*models.Patient, error) {
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

func (s *PatientSlice) Items() []models.Patient {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := make([]models.Patient, len(s.items))
	copy(items, s.items)
	return items
}

func (s *PatientSlice) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *PatientSlice) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}

func (s *PatientSlice) Selected() *models.Patient {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selected == nil {
		return nil
	}
	selected := *s.selected
	return &selected
}

func (s *PatientSlice) SetSelected(patient *models.Patient) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = patient
}

func (s *PatientSlice) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errMsg = ""
}
