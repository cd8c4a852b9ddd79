package patients

import (
	"context"
	"strings"
	"time"

	"hospital-service/internal/app/clients/mockdata"
	"hospital-service/internal/app/contracts"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/dto/requests"
	"hospital-service/internal/pkg/models"
	"hospital-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type patientMockClient struct {
	FetchDelay  time.Duration
	CreateDelay time.Duration
	Log         *zap.Logger
}

func NewPatientMockClient(fetchDelay, createDelay time.Duration, logger *zap.Logger) contracts.PatientClient {
	return &patientMockClient{
		FetchDelay:  fetchDelay,
		CreateDelay: createDelay,
		Log:         logger,
	}
}

func (c *patientMockClient) FindAll(ctx context.Context) ([]models.Patient, error) {
	if err := utils.WaitWithContext(ctx, c.FetchDelay); err != nil {
		return nil, err
	}

	patients := mockdata.Patients()
	c.Log.Debug("patientMockClient.FindAll succeeded",
		zap.Int(constvars.LoggingCountKey, len(patients)),
	)
	return patients, nil
}

func (c *patientMockClient) Create(ctx context.Context, request *requests.CreatePatientRequest) (*models.Patient, error) {
	if err := utils.WaitWithContext(ctx, c.CreateDelay); err != nil {
		return nil, err
	}

	// The registration form has no emergency contact section, so the record
	// falls back to the patient's own number the way the prototype did.
	patient := &models.Patient{
		ID:         utils.GenerateRecordID(),
		Name:       request.Name,
		Email:      request.Email,
		Phone:      request.MobileNo,
		Age:        request.Age,
		Gender:     strings.ToLower(request.Gender),
		BloodGroup: request.BloodGroup,
		Address:    request.Address,
		EmergencyContact: models.EmergencyContact{
			Name:         "Emergency Contact",
			Phone:        request.MobileNo,
			Relationship: "Emergency",
		},
		MedicalHistory: []string{},
		Allergies:      []string{},
		CreatedAt:      time.Now().UTC(),
	}

	c.Log.Debug("patientMockClient.Create succeeded",
		zap.String(constvars.LoggingPatientIDKey, patient.ID),
	)
	return patient, nil
}
