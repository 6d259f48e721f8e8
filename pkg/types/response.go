package types

// SuccessEnvelope wraps every successful portal API response body.
type SuccessEnvelope struct {
	Data any `json:"data"`
}

// APIError is the client-facing error shape. Code is a stable machine
// string such as VALIDATION_ERROR or RATE_LIMIT_EXCEEDED; Details carries
// field-level validation problems when present.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// ErrorEnvelope wraps every failed portal API response body.
type ErrorEnvelope struct {
	Error APIError `json:"error"`
}
