package constvars

const (
	RegexEmail       = `^[^\s@]+@[^\s@]+\.[^\s@]+$`
	RegexMobileNo    = `^\d{10}$`
	RegexAadhaarNo   = `^\d{4}-\d{4}-\d{4}$`
	RegexPinCode     = `^\d{6}$`
	RegexTimeOfDay   = `^([01]\d|2[0-3]):[0-5]\d$`
	RegexISODateOnly = `^\d{4}-\d{2}-\d{2}$`
)
