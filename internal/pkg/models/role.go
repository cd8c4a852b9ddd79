package models

// Role is the closed set of layouts the application knows how to render.
type Role string

const (
	RoleAdmin         Role = "admin"
	RoleDoctor        Role = "doctor"
	RolePatient       Role = "patient"
	RoleLabTechnician Role = "lab_technician"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleDoctor, RolePatient, RoleLabTechnician:
		return true
	}
	return false
}

func (r Role) String() string {
	return string(r)
}
