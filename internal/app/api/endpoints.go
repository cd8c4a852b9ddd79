// Package api resolves absolute endpoint URLs for the two backend services
// the application consumes: the hospital core API and the user management
// API.
package api

import (
	"hospital-service/internal/app/config"
	"hospital-service/internal/pkg/constvars"
)

type HospitalEndpoints struct {
	BaseURL       string
	Login         string
	Doctors       string
	Patients      string
	Appointments  string
	Prescriptions string
	Billing       string
	Tests         string
}

type UserEndpoints struct {
	BaseURL  string
	Register string
	Login    string
}

func NewHospitalEndpoints(upstream config.Upstream) HospitalEndpoints {
	base := upstream.HospitalBaseURL
	return HospitalEndpoints{
		BaseURL:       base,
		Login:         base + constvars.EndpointLogin,
		Doctors:       base + constvars.EndpointDoctors,
		Patients:      base + constvars.EndpointPatients,
		Appointments:  base + constvars.EndpointAppointments,
		Prescriptions: base + constvars.EndpointPrescriptions,
		Billing:       base + constvars.EndpointBilling,
		Tests:         base + constvars.EndpointTests,
	}
}

func NewUserEndpoints(upstream config.Upstream) UserEndpoints {
	base := upstream.UserBaseURL
	return UserEndpoints{
		BaseURL:  base,
		Register: base + constvars.EndpointUsersRegister,
		Login:    base + constvars.EndpointUsersLogin,
	}
}
