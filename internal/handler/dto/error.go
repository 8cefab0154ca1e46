package dto

// ErrorResponse represents an API error.
type ErrorResponse struct {
	Error string `json:"error"`
}
