package constvars

const (
	URLParamAppointmentID  = "appointment_id"
	URLParamBillingID      = "billing_id"
	URLParamPrescriptionID = "prescription_id"
	URLParamTestID         = "test_id"
)
