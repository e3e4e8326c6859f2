package errors

// ErrorInfo is the error body rendered to HTTP clients
type ErrorInfo struct {
	Code    string `json:"code"`              // Business error code, e.g., "SYNC_FAILED"
	Message string `json:"message"`           // Human-readable error message
	Step    string `json:"step,omitempty"`    // Failing sync step, set for sync errors only
	Details any    `json:"details,omitempty"` // Detailed error information (optional)
}

// MetaInfo represents response metadata
type MetaInfo struct {
	RequestID string `json:"request_id"`
}

// SuccessResponse defines the structure for successful responses
type SuccessResponse struct {
	Data any       `json:"data"`
	Meta *MetaInfo `json:"meta"`
}

// ErrorResponse defines the structure for error responses
type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}
