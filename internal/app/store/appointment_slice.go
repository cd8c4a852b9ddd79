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

type AppointmentSlice struct {
	mu       sync.Mutex
	client   contracts.AppointmentClient
	log      *zap.Logger
	items    []models.Appointment
	loading  bool
	errMsg   string
	selected *models.Appointment
	fetchSeq uint64
}

func NewAppointmentSlice(client contracts.AppointmentClient, logger *zap.Logger) *AppointmentSlice {
	return &AppointmentSlice{
		client: client,
		log:    logger,
	}
}

func (s *AppointmentSlice) FetchAll(ctx context.Context) error {
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
		s.log.Debug("AppointmentSlice.FetchAll stale completion dropped")
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

func (s *AppointmentSlice) Create(ctx context.Context, request *requests.CreateAppointmentRequest) (*models.Appointment, error) {
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

// UpdateStatus flips the status of a single appointment once the client
// acknowledges the change. Records other than the target are untouched.
func (s *AppointmentSlice) UpdateStatus(ctx context.Context, appointmentID string, status models.AppointmentStatus) error {
	err := s.client.UpdateStatus(ctx, appointmentID, status)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.errMsg = exceptions.ClientMessageOf(err)
		return err
	}
	for i := range s.items {
		if s.items[i].ID == appointmentID {
			s.items[i].Status = status
			break
		}
	}
	s.errMsg = ""
	return nil
}

func (s *AppointmentSlice) Items() []models.Appointment {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := make([]models.Appointment, len(s.items))
	copy(items, s.items)
	return items
}

func (s *AppointmentSlice) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *AppointmentSlice) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}

func (s *AppointmentSlice) Selected() *models.Appointment {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selected == nil {
		return nil
	}
	selected := *s.selected
	return &selected
}

func (s *AppointmentSlice) SetSelected(appointment *models.Appointment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = appointment
}

func (s *AppointmentSlice) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errMsg = ""
}
