package apierror

// Error type URIs following the urn:zeen:error:* pattern.
// These are used as the "type" field in RFC 9457 Problem Details.
const (
	// TypeValidation indicates request validation failed (400)
	TypeValidation = "urn:zeen:error:validation"

	// TypeNotFound indicates the requested resource was not found (404)
	TypeNotFound = "urn:zeen:error:not_found"

	// TypeConflict indicates a resource conflict (409)
	TypeConflict = "urn:zeen:error:conflict"

	// TypeRateLimit indicates too many requests (429)
	TypeRateLimit = "urn:zeen:error:rate_limit"

	// TypeInternal indicates an unexpected server error (500)
	TypeInternal = "urn:zeen:error:internal"

	// TypeBadRequest indicates a malformed or invalid request (400)
	TypeBadRequest = "urn:zeen:error:bad_request"
)

// Titles for each error type - human-readable summaries
const (
	TitleValidation = "Validation Error"
	TitleNotFound   = "Resource Not Found"
	TitleConflict   = "Resource Conflict"
	TitleRateLimit  = "Rate Limit Exceeded"
	TitleInternal   = "Internal Server Error"
	TitleBadRequest = "Bad Request"
)
