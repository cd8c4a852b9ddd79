package utils

import (
	"regexp"
	"time"

	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/models"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("mobile_no", validateMobileNo)
	validate.RegisterValidation("aadhaar_no", validateAadhaarNo)
	validate.RegisterValidation("time_of_day", validateTimeOfDay)
	validate.RegisterValidation("iso_date", validateISODate)
	validate.RegisterValidation("not_past_date", validateNotPastDate)
	validate.RegisterValidation("role", validateRole)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateMobileNo(fl validator.FieldLevel) bool {
	re := regexp.MustCompile(constvars.RegexMobileNo)
	return re.MatchString(fl.Field().String())
}

func validateAadhaarNo(fl validator.FieldLevel) bool {
	re := regexp.MustCompile(constvars.RegexAadhaarNo)
	return re.MatchString(fl.Field().String())
}

func validateTimeOfDay(fl validator.FieldLevel) bool {
	re := regexp.MustCompile(constvars.RegexTimeOfDay)
	return re.MatchString(fl.Field().String())
}

func validateISODate(fl validator.FieldLevel) bool {
	_, err := time.Parse(time.DateOnly, fl.Field().String())
	return err == nil
}

// validateNotPastDate accepts today and later, same as the date picker's
// min attribute in the booking form.
func validateNotPastDate(fl validator.FieldLevel) bool {
	parsed, err := time.Parse(time.DateOnly, fl.Field().String())
	if err != nil {
		return false
	}
	today, _ := time.Parse(time.DateOnly, time.Now().Format(time.DateOnly))
	return !parsed.Before(today)
}

func validateRole(fl validator.FieldLevel) bool {
	return models.Role(fl.Field().String()).Valid()
}
