package models

// ErrorResponse is the single error envelope returned by every route.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// MessageResponse is the envelope for confirmations without a payload.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
