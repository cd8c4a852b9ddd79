package requests

import "hospital-service/internal/pkg/models"

type DayAvailability struct {
	DayOfWeek string `json:"dayOfWeek" validate:"required"`
}

// CreateDoctorRequest is the add-doctor payload shared with the user
// management service.
type CreateDoctorRequest struct {
	Name           string            `json:"name" validate:"required"`
	Age            int               `json:"age" validate:"gt=0"`
	Specialization string            `json:"specialization" validate:"required"`
	Experience     int               `json:"experience" validate:"gte=0"`
	ContactNo      string            `json:"contactNo" validate:"required"`
	Availability   []DayAvailability `json:"availability" validate:"min=1,dive"`
	InTiming       string            `json:"inTiming" validate:"required,time_of_day"`
	OutTiming      string            `json:"outTiming" validate:"required,time_of_day"`
	Email          string            `json:"email" validate:"required,email"`
	Description    string            `json:"description" validate:"required"`
	ImageURL       string            `json:"imageURL" validate:"omitempty,url"`
}

type CreatePatientRequest struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Age         int    `json:"age" validate:"gt=0"`
	MobileNo    string `json:"mobileNo" validate:"required,mobile_no"`
	AdharNo     string `json:"adharNo" validate:"required,aadhaar_no"`
	Gender      string `json:"gender" validate:"required,oneof=Male Female Other"`
	BloodGroup  string `json:"bloodGroup" validate:"required"`
	PinCode     int    `json:"pinCode" validate:"gt=0"`
	Description string `json:"description" validate:"required"`
	Address     string `json:"address" validate:"required"`
}

type CreateAppointmentRequest struct {
	Date        string `json:"date" validate:"required,iso_date"`
	Time        string `json:"time" validate:"required,time_of_day"`
	Description string `json:"description" validate:"required"`
	DoctorID    string `json:"doctorId" validate:"required"`
	PatientID   string `json:"patientId" validate:"required"`
}

type CreatePrescriptionRequest struct {
	AppointmentID string            `json:"appointmentId" validate:"required"`
	Medicines     []models.Medicine `json:"medicines"`
	Tests         []models.Test     `json:"tests"`
	Notes         string            `json:"notes"`
	PrescribedBy  string            `json:"prescribedBy" validate:"required"`
}

type CreateBillingRequest struct {
	PatientID     string               `json:"patientId" validate:"required"`
	PatientName   string               `json:"patientName" validate:"required"`
	AppointmentID string               `json:"appointmentId"`
	Items         []models.BillingItem `json:"items" validate:"min=1"`
	TotalAmount   float64              `json:"totalAmount" validate:"gte=0"`
	PaidAmount    float64              `json:"paidAmount" validate:"gte=0"`
	Status        models.BillingStatus `json:"status" validate:"required"`
}

type CreateTestRequest struct {
	Name         string  `json:"name" validate:"required"`
	Description  string  `json:"description"`
	Price        float64 `json:"price" validate:"gte=0"`
	Preparation  string  `json:"preparation"`
	PrescribedBy string  `json:"prescribedBy" validate:"required"`
}

type UpdateAppointmentStatusRequest struct {
	Status models.AppointmentStatus `json:"status" validate:"required"`
}

type UpdateBillingStatusRequest struct {
	Status     models.BillingStatus `json:"status" validate:"required"`
	PaidAmount float64              `json:"paidAmount" validate:"gte=0"`
}

type UpdateTestStatusRequest struct {
	Status models.TestStatus `json:"status" validate:"required"`
	Result string            `json:"result"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RegisterUserRequest struct {
	Name     string      `json:"name" validate:"required"`
	Email    string      `json:"email" validate:"required,email"`
	Password string      `json:"password" validate:"required,min=8"`
	Role     models.Role `json:"role" validate:"required,role"`
	Avatar   string      `json:"avatar" validate:"omitempty,url"`
}
