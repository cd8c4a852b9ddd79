// Package forms holds the local form-state reducers behind the add/edit
// modals and the booking flow. Each form collects field values, validates
// them into a field→message map, and only dispatches to its slice when the
// map comes back empty. Validation failures never reach the slice layer.
package forms

import (
	"regexp"
	"strings"

	"hospital-service/internal/pkg/constvars"
)

var (
	emailRegex     = regexp.MustCompile(constvars.RegexEmail)
	mobileNoRegex  = regexp.MustCompile(constvars.RegexMobileNo)
	aadhaarNoRegex = regexp.MustCompile(constvars.RegexAadhaarNo)
	pinCodeRegex   = regexp.MustCompile(constvars.RegexPinCode)
)

var nonDigitRegex = regexp.MustCompile(`\D`)

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func digitsOnly(s string) string {
	return nonDigitRegex.ReplaceAllString(s, "")
}
