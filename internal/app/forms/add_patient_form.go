package forms

import (
	"context"
	"strconv"

	"hospital-service/internal/app/store"
	"hospital-service/internal/pkg/dto/requests"
	"hospital-service/internal/pkg/models"
)

// AddPatientForm is the add-patient modal state.
type AddPatientForm struct {
	Name        string
	Email       string
	Age         int
	MobileNo    string
	AdharNo     string
	Gender      string
	BloodGroup  string
	PinCode     int
	Description string
	Address     string

	Errors map[string]string
}

func (f *AddPatientForm) Validate() bool {
	errs := make(map[string]string)

	if isBlank(f.Name) {
		errs["name"] = "Name is required"
	}
	if isBlank(f.Email) {
		errs["email"] = "Email is required"
	} else if !emailRegex.MatchString(f.Email) {
		errs["email"] = "Please enter a valid email"
	}
	if f.Age <= 0 {
		errs["age"] = "Age must be greater than 0"
	}
	if isBlank(f.MobileNo) {
		errs["mobileNo"] = "Mobile number is required"
	} else if !mobileNoRegex.MatchString(digitsOnly(f.MobileNo)) {
		errs["mobileNo"] = "Please enter a valid 10-digit mobile number"
	}
	if isBlank(f.AdharNo) {
		errs["adharNo"] = "Aadhar number is required"
	} else if !aadhaarNoRegex.MatchString(f.AdharNo) {
		errs["adharNo"] = "Please enter Aadhar in format: XXXX-XXXX-XXXX"
	}
	if f.BloodGroup == "" {
		errs["bloodGroup"] = "Blood group is required"
	}
	if f.PinCode <= 0 {
		errs["pinCode"] = "Pin code must be greater than 0"
	} else if !pinCodeRegex.MatchString(strconv.Itoa(f.PinCode)) {
		errs["pinCode"] = "Pin code must be 6 digits"
	}
	if isBlank(f.Address) {
		errs["address"] = "Address is required"
	}
	if isBlank(f.Description) {
		errs["description"] = "Description is required"
	}

	f.Errors = errs
	return len(errs) == 0
}

func (f *AddPatientForm) Submit(ctx context.Context, slice *store.PatientSlice) (*models.Patient, error) {
	if !f.Validate() {
		return nil, nil
	}

	created, err := slice.Create(ctx, &requests.CreatePatientRequest{
		Name:        f.Name,
		Email:       f.Email,
		Age:         f.Age,
		MobileNo:    f.MobileNo,
		AdharNo:     f.AdharNo,
		Gender:      f.Gender,
		BloodGroup:  f.BloodGroup,
		PinCode:     f.PinCode,
		Description: f.Description,
		Address:     f.Address,
	})
	if err != nil {
		return nil, err
	}

	*f = AddPatientForm{Gender: "Male"}
	return created, nil
}
