package responses

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Error         string `json:"error"`
	CorrelationID string `json:"correlation_id,omitempty"`
}

// ListResponse wraps an unpaginated list
type ListResponse struct {
	Object string      `json:"object"`
	Data   interface{} `json:"data"`
}

// HealthResponse is returned by the health endpoints
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database,omitempty"`
}
