package layouts

import (
	"hospital-service/internal/pkg/models"
)

// MenuItem is one navigation entry of a layout.
type MenuItem struct {
	Name string `json:"name"`
	Href string `json:"href"`
}

// Layout is the top-level shell a signed-in user gets: its name and the
// navigation menu it renders.
type Layout struct {
	Name  string     `json:"name"`
	Menu  []MenuItem `json:"menu"`
	Ready bool       `json:"ready"`
}

const (
	LayoutNameLoading       = "loading"
	LayoutNameAdmin         = "admin"
	LayoutNameDoctor        = "doctor"
	LayoutNamePatient       = "patient"
	LayoutNameLabTechnician = "lab_technician"
)

func adminLayout() Layout {
	return Layout{
		Name:  LayoutNameAdmin,
		Ready: true,
		Menu: []MenuItem{
			{Name: "Dashboard", Href: "/dashboard"},
			{Name: "Doctors", Href: "/doctors"},
			{Name: "Patients", Href: "/patients"},
			{Name: "Appointments", Href: "/appointments"},
			{Name: "Prescriptions", Href: "/prescriptions"},
			{Name: "Billing", Href: "/billing"},
			{Name: "Tests", Href: "/tests"},
		},
	}
}

func doctorLayout() Layout {
	return Layout{
		Name:  LayoutNameDoctor,
		Ready: true,
		Menu: []MenuItem{
			{Name: "Dashboard", Href: "/dashboard"},
			{Name: "Appointments", Href: "/appointments"},
			{Name: "Patients", Href: "/patients"},
			{Name: "Prescriptions", Href: "/prescriptions"},
			{Name: "Settings", Href: "/settings"},
		},
	}
}

func patientLayout() Layout {
	return Layout{
		Name:  LayoutNamePatient,
		Ready: true,
		Menu: []MenuItem{
			{Name: "Dashboard", Href: "/dashboard"},
			{Name: "Book Appointment", Href: "/book-appointment"},
			{Name: "My Appointments", Href: "/appointments"},
			{Name: "Medical Records", Href: "/medical-records"},
			{Name: "Find Doctors", Href: "/doctors"},
			{Name: "Prescriptions", Href: "/prescriptions"},
			{Name: "Profile", Href: "/profile"},
			{Name: "Settings", Href: "/settings"},
		},
	}
}

func labTechnicianLayout() Layout {
	return Layout{
		Name:  LayoutNameLabTechnician,
		Ready: true,
		Menu: []MenuItem{
			{Name: "Dashboard", Href: "/dashboard"},
			{Name: "Tests", Href: "/tests"},
			{Name: "Patients", Href: "/patients"},
			{Name: "Reports", Href: "/prescriptions"},
			{Name: "Settings", Href: "/settings"},
		},
	}
}

// LayoutFor maps the signed-in user to a layout. A nil user gets the
// loading placeholder; a user with an unrecognized role falls back to
// the admin layout.
func LayoutFor(user *models.User) Layout {
	if user == nil {
		return Layout{Name: LayoutNameLoading}
	}
	switch user.Role {
	case models.RoleAdmin:
		return adminLayout()
	case models.RoleDoctor:
		return doctorLayout()
	case models.RolePatient:
		return patientLayout()
	case models.RoleLabTechnician:
		return labTechnicianLayout()
	default:
		return adminLayout()
	}
}
