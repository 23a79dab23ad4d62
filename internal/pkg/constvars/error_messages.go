package constvars

// Client-facing messages. Kept deliberately vague for anything that is not
// the caller's fault.
const (
	ErrClientSomethingWrongWithApplication = "Something went wrong with the application, please try again later"
	ErrClientCannotProcessRequest          = "Cannot process request, please check your input"
	ErrClientServerLongRespond             = "Server took too long to respond, please try again later"
	ErrClientPatientNotFound               = "Patient not found"
	ErrClientPatientNoContent              = "No content"
	ErrClientSearchQueryEmpty              = "At least one search field must be provided"
)

// Developer-facing messages, surfaced in logs and non-production responses.
const (
	ErrDevValidationFailed         = "Request validation failed"
	ErrDevInvalidInput             = "Invalid input"
	ErrDevCannotParseJSON          = "Failed to parse JSON request body"
	ErrDevCannotMarshalJSON        = "Failed to marshal JSON"
	ErrDevCreateHTTPRequest        = "Failed to create HTTP request"
	ErrDevSendHTTPRequest          = "Failed to send HTTP request"
	ErrDevReadResponseBody         = "Failed to read response body"
	ErrDevDecodeResponseBody       = "Failed to decode response body"
	ErrDevServerDeadlineExceeded   = "Deadline exceeded while processing request"
	ErrDevReadPrivateKey           = "Failed to read Epic private key file"
	ErrDevParsePrivateKey          = "Failed to parse Epic private key PEM"
	ErrDevSignClientAssertion      = "Failed to sign Epic client assertion"
	ErrDevEpicPatientNotFound      = "Epic returned 404 for Patient resource"
	ErrDevEpicEmptyResponseBody    = "Epic returned 200 with an empty body"
	ErrDevEpicUnexpectedStatus     = "Epic returned an unexpected status: %d"
	ErrDevEpicParseXML             = "Failed to parse Epic XML response body"
	ErrDevEpicMissingLocation      = "Epic create response is missing the Location header"
	ErrDevDBFailedToUpdateDocument = "Database failed to update document"
)

// Validator tag -> human message. Tags listed in TagsWithParams carry a %s
// placeholder for the tag parameter.
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"oneof":    "should be one of [%s]",
	"datetime": "should be in YYYY-MM-DD format",
	"email":    "should be a valid email address",
	"max":      "should be at most %s characters",
}

var TagsWithParams = map[string]bool{
	"oneof": true,
	"max":   true,
}
