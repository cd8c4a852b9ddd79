package models

import "time"

type DoctorStatus string

const (
	DoctorStatusActive   DoctorStatus = "active"
	DoctorStatusInactive DoctorStatus = "inactive"
)

type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "scheduled"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

func (s AppointmentStatus) Valid() bool {
	switch s {
	case AppointmentStatusScheduled, AppointmentStatusConfirmed, AppointmentStatusCompleted, AppointmentStatusCancelled:
		return true
	}
	return false
}

type TestStatus string

const (
	TestStatusPending   TestStatus = "pending"
	TestStatusCompleted TestStatus = "completed"
	TestStatusCancelled TestStatus = "cancelled"
)

func (s TestStatus) Valid() bool {
	switch s {
	case TestStatusPending, TestStatusCompleted, TestStatusCancelled:
		return true
	}
	return false
}

type BillingStatus string

const (
	BillingStatusPending BillingStatus = "pending"
	BillingStatusPartial BillingStatus = "partial"
	BillingStatusPaid    BillingStatus = "paid"
)

func (s BillingStatus) Valid() bool {
	switch s {
	case BillingStatusPending, BillingStatusPartial, BillingStatusPaid:
		return true
	}
	return false
}

type BillingItemType string

const (
	BillingItemConsultation BillingItemType = "consultation"
	BillingItemMedicine     BillingItemType = "medicine"
	BillingItemTest         BillingItemType = "test"
	BillingItemProcedure    BillingItemType = "procedure"
)

type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
	Avatar string `json:"avatar,omitempty"`
}

type TimeRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type Doctor struct {
	ID              string       `json:"id"`
	Name            string       `json:"name"`
	Specialization  string       `json:"specialization"`
	Experience      int          `json:"experience"`
	Education       string       `json:"education"`
	Image           string       `json:"image"`
	AvailableDays   []string     `json:"availableDays"`
	AvailableTime   TimeRange    `json:"availableTime"`
	ConsultationFee float64      `json:"consultationFee"`
	Rating          float64      `json:"rating"`
	TotalPatients   int          `json:"totalPatients"`
	Status          DoctorStatus `json:"status"`
}

type EmergencyContact struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Relationship string `json:"relationship"`
}

type Patient struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	Email            string           `json:"email"`
	Phone            string           `json:"phone"`
	Age              int              `json:"age"`
	Gender           string           `json:"gender"`
	BloodGroup       string           `json:"bloodGroup"`
	Address          string           `json:"address"`
	EmergencyContact EmergencyContact `json:"emergencyContact"`
	MedicalHistory   []string         `json:"medicalHistory"`
	Allergies        []string         `json:"allergies"`
	CreatedAt        time.Time        `json:"createdAt"`
}

type Medicine struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Dosage       string  `json:"dosage"`
	Frequency    string  `json:"frequency"`
	Duration     string  `json:"duration"`
	Instructions string  `json:"instructions"`
	Price        float64 `json:"price"`
}

type Test struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	Price        float64    `json:"price"`
	Preparation  string     `json:"preparation"`
	Status       TestStatus `json:"status"`
	Result       string     `json:"result,omitempty"`
	PrescribedBy string     `json:"prescribedBy"`
	PrescribedAt time.Time  `json:"prescribedAt"`
	CompletedAt  *time.Time `json:"completedAt,omitempty"`
}

type Prescription struct {
	ID            string     `json:"id"`
	AppointmentID string     `json:"appointmentId"`
	Medicines     []Medicine `json:"medicines"`
	Tests         []Test     `json:"tests"`
	Notes         string     `json:"notes"`
	PrescribedBy  string     `json:"prescribedBy"`
	PrescribedAt  time.Time  `json:"prescribedAt"`
}

// Appointment carries PatientName and DoctorName as creation-time snapshots
// of the referenced records. They are never re-synced when the source entity
// changes; the lists render them as-is.
type Appointment struct {
	ID           string            `json:"id"`
	PatientID    string            `json:"patientId"`
	DoctorID     string            `json:"doctorId"`
	PatientName  string            `json:"patientName"`
	DoctorName   string            `json:"doctorName"`
	Date         string            `json:"date"`
	Time         string            `json:"time"`
	Status       AppointmentStatus `json:"status"`
	Symptoms     string            `json:"symptoms"`
	Diagnosis    string            `json:"diagnosis,omitempty"`
	Prescription *Prescription     `json:"prescription,omitempty"`
	CreatedAt    time.Time         `json:"createdAt"`
}

type BillingItem struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Type       BillingItemType `json:"type"`
	Quantity   int             `json:"quantity"`
	UnitPrice  float64         `json:"unitPrice"`
	TotalPrice float64         `json:"totalPrice"`
}

// Billing's PatientName is a creation-time snapshot, same as on Appointment.
type Billing struct {
	ID            string        `json:"id"`
	PatientID     string        `json:"patientId"`
	PatientName   string        `json:"patientName"`
	AppointmentID string        `json:"appointmentId,omitempty"`
	Items         []BillingItem `json:"items"`
	TotalAmount   float64       `json:"totalAmount"`
	PaidAmount    float64       `json:"paidAmount"`
	Status        BillingStatus `json:"status"`
	CreatedAt     time.Time     `json:"createdAt"`
	PaidAt        *time.Time    `json:"paidAt,omitempty"`
}

type HospitalStats struct {
	TotalDoctors          int     `json:"totalDoctors"`
	TotalPatients         int     `json:"totalPatients"`
	TotalAppointments     int     `json:"totalAppointments"`
	TotalRevenue          float64 `json:"totalRevenue"`
	PendingAppointments   int     `json:"pendingAppointments"`
	CompletedAppointments int     `json:"completedAppointments"`
}
