// Package responses contains HTTP response DTOs and error helpers for the reel-api.
package responses

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error" example:"reel not found, check the link"`
}

// HealthResponse is returned by the liveness and readiness probes.
type HealthResponse struct {
	Status string `json:"status" example:"healthy"`
}
