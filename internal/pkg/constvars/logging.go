package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingMethodKey         = "method"
	LoggingEndpointKey       = "endpoint"
	LoggingRemoteAddrKey     = "remote_addr"
	LoggingUserAgentKey      = "user_agent"
	LoggingQueryKey          = "query"
	LoggingStatusCodeKey     = "status_code"
	LoggingDurationKey       = "duration"
	LoggingSuccessKey        = "success"
	LoggingURLKey            = "url"
	LoggingResourceKey       = "resource"
	LoggingCountKey          = "count"
	LoggingDoctorIDKey       = "doctor_id"
	LoggingPatientIDKey      = "patient_id"
	LoggingAppointmentIDKey  = "appointment_id"
	LoggingPrescriptionIDKey = "prescription_id"
	LoggingTestIDKey         = "test_id"
	LoggingBillingIDKey      = "billing_id"
	LoggingUserEmailKey      = "user_email"
	LoggingRoleKey           = "role"
	LoggingStatusKey         = "status"
)
