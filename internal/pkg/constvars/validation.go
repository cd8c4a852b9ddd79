package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":      "is required",
	"email":         "must be a valid email",
	"min":           "must be at least %s characters long",
	"max":           "maximum at %s characters long",
	"eqfield":       "must match %s",
	"numeric":       "must be a number",
	"len":           "must be %s characters long",
	"oneof":         "must be one of [%s]",
	"gt":            "must be greater than %s",
	"gte":           "must be greater than or equal to %s",
	"lt":            "must be less than %s",
	"lte":           "must be less than or equal to %s",
	"url":           "must be a valid URL",
	"uuid":          "must be a valid UUID",
	"mobile_no":     "must be a valid 10-digit mobile number",
	"aadhaar_no":    "must use the format: XXXX-XXXX-XXXX",
	"time_of_day":   "must be a valid HH:MM time",
	"iso_date":      "must be a valid YYYY-MM-DD date",
	"not_past_date": "must not be in the past",
	"role":          "must be one of admin, doctor, patient or lab_technician",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":     true,
	"max":     true,
	"len":     true,
	"eqfield": true,
	"gt":      true,
	"gte":     true,
	"lt":      true,
	"lte":     true,
	"oneof":   true,
}
