package constvars

const (
	FetchDoctorsSuccessMessage       = "Successfully fetched doctors"
	CreateDoctorSuccessMessage       = "Successfully created doctor"
	FetchPatientsSuccessMessage      = "Successfully fetched patients"
	CreatePatientSuccessMessage      = "Successfully created patient"
	FetchAppointmentsSuccessMessage  = "Successfully fetched appointments"
	CreateAppointmentSuccessMessage  = "Successfully created appointment"
	UpdateAppointmentSuccessMessage  = "Successfully updated appointment status"
	FetchPrescriptionsSuccessMessage = "Successfully fetched prescriptions"
	CreatePrescriptionSuccessMessage = "Successfully created prescription"
	UpdateTestSuccessMessage         = "Successfully updated test status"
	FetchTestsSuccessMessage         = "Successfully fetched tests"
	CreateTestSuccessMessage         = "Successfully created test"
	FetchBillingSuccessMessage       = "Successfully fetched billing"
	CreateBillingSuccessMessage      = "Successfully created billing"
	UpdateBillingSuccessMessage      = "Successfully updated billing status"
	LoginSuccessMessage              = "Successfully logged in"
	RegisterSuccessMessage           = "Successfully registered user"
)
