package constvars

const (
	LoggingRequestIDKey    = "request_id"
	LoggingPatientIDKey    = "patient_id"
	LoggingEmailKey        = "email"
	LoggingStatusCodeKey   = "status_code"
	LoggingEpicEndpointKey = "epic_endpoint"
)

type contextKey string

const CONTEXT_REQUEST_ID_KEY contextKey = "requestID"
