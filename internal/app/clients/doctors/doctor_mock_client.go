package doctors

import (
	"context"
	"fmt"
	"time"

	"hospital-service/internal/app/clients/mockdata"
	"hospital-service/internal/app/contracts"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/dto/requests"
	"hospital-service/internal/pkg/models"
	"hospital-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type doctorMockClient struct {
	FetchDelay  time.Duration
	CreateDelay time.Duration
	Log         *zap.Logger
}

// NewDoctorMockClient returns a client serving the canned doctor dataset
// after simulated latency. Zero delays make it immediate, which the tests
// rely on.
func NewDoctorMockClient(fetchDelay, createDelay time.Duration, logger *zap.Logger) contracts.DoctorClient {
	return &doctorMockClient{
		FetchDelay:  fetchDelay,
		CreateDelay: createDelay,
		Log:         logger,
	}
}

func (c *doctorMockClient) FindAll(ctx context.Context) ([]models.Doctor, error) {
	if err := utils.WaitWithContext(ctx, c.FetchDelay); err != nil {
		return nil, err
	}

	doctors := mockdata.Doctors()
	c.Log.Debug("doctorMockClient.FindAll succeeded",
		zap.Int(constvars.LoggingCountKey, len(doctors)),
	)
	return doctors, nil
}

func (c *doctorMockClient) Create(ctx context.Context, request *requests.CreateDoctorRequest) (*models.Doctor, error) {
	if err := utils.WaitWithContext(ctx, c.CreateDelay); err != nil {
		return nil, err
	}

	image := request.ImageURL
	if image == "" {
		image = constvars.DefaultDoctorImageURL
	}
	availableDays := make([]string, len(request.Availability))
	for i, a := range request.Availability {
		availableDays[i] = a.DayOfWeek
	}

	doctor := &models.Doctor{
		ID:              utils.GenerateRecordID(),
		Name:            request.Name,
		Specialization:  request.Specialization,
		Experience:      request.Experience,
		Education:       fmt.Sprintf("%s Specialist", request.Specialization),
		Image:           image,
		AvailableDays:   availableDays,
		AvailableTime:   models.TimeRange{Start: request.InTiming, End: request.OutTiming},
		ConsultationFee: constvars.DefaultConsultationFee,
		Rating:          0,
		TotalPatients:   0,
		Status:          models.DoctorStatusActive,
	}

	c.Log.Debug("doctorMockClient.Create succeeded",
		zap.String(constvars.LoggingDoctorIDKey, doctor.ID),
	)
	return doctor, nil
}
