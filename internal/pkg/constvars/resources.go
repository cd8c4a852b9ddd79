package constvars

const (
	ResourceDoctor       = "Doctor"
	ResourcePatient      = "Patient"
	ResourceAppointment  = "Appointment"
	ResourcePrescription = "Prescription"
	ResourceTest         = "Test"
	ResourceBilling      = "Billing"
	ResourceUser         = "User"
)

// Hospital core service endpoints.
const (
	EndpointLogin         = "/login"
	EndpointDoctors       = "/doctors"
	EndpointPatients      = "/patients"
	EndpointAppointments  = "/appointments"
	EndpointPrescriptions = "/prescriptions"
	EndpointBilling       = "/billing"
	EndpointTests         = "/tests"
)

// User management service endpoints.
const (
	EndpointUsersRegister = "/register"
	EndpointUsersLogin    = "/auth/login"
)
