package apperror

// Error kinds surfaced in the response envelope.
const (
	KindValidation   = "validation"
	KindNotFound     = "not_found"
	KindUnauthorized = "unauthorized"
	KindForbidden    = "forbidden"
	KindRateLimited  = "rate_limited"
	KindInternal     = "internal"
)
