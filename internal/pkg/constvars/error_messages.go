package constvars

// Error messages for clients. The fetch/create/update formats take the
// plural resource label shown in the UI ("doctors", "billing", ...).
const (
	ErrClientFailedToFetch  = "Failed to fetch %s"
	ErrClientFailedToCreate = "Failed to create %s"
	ErrClientFailedToUpdate = "Failed to update %s"

	ErrClientInvalidCredentials            = "Invalid credentials"
	ErrClientLoginFailed                   = "Login failed"
	ErrClientEmailAlreadyExists            = "email already used"
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientRecordNotFound                = "the requested record was not found"
	ErrClientInvalidStatus                 = "the requested status is not valid"
)

// Error messages for developers
const (
	ErrDevInvalidInput            = "invalid input"
	ErrDevValidationFailed        = "validation on the request body failed"
	ErrDevCannotParseJSON         = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON       = "cannot convert struct or other data types to JSON"
	ErrDevCannotParseTime         = "cannot parse time into the given format"
	ErrDevCreateHTTPRequest       = "failed to create HTTP request"
	ErrDevSendHTTPRequest         = "failed to send HTTP request"
	ErrDevFetchResource           = "failed to fetch %s from upstream"
	ErrDevCreateResource          = "failed to create %s on upstream"
	ErrDevUpdateResource          = "failed to update %s on upstream"
	ErrDevDecodeResourceResponse  = "failed to decode %s response body"
	ErrDevRecordNotFound          = "%s with the given id does not exist"
	ErrDevInvalidStatusTransition = "%s status transition is not allowed"
	ErrDevInvalidCredentials      = "no user registered with the given credentials"
	ErrDevEmailAlreadyExists      = "email already exists"
	ErrDevFailedToHashPassword    = "failed to hash password with bcrypt"
	ErrDevAuthGenerateToken       = "failed to generate session token"
	ErrDevServerDeadlineExceeded  = "server exceeded the process deadline"
	ErrDevServerProcess           = "error while the server processing the request"
	ErrDevStaleFetchDiscarded     = "stale fetch result discarded"
)
