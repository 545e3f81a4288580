package dto

import "time"

// ErrorResponse is the JSON envelope returned for every failed request.
type ErrorResponse struct {
	Message      string    `json:"message" example:"Invalid query parameters"`
	ErrorDetails string    `json:"error,omitempty" example:"unknown visualization type \"candlestick\": invalid argument"`
	Timestamp    time.Time `json:"timestamp" example:"2025-03-10T12:00:00Z"`
}

// Error implements error so the envelope can travel through c.Error.
func (e ErrorResponse) Error() string {
	if e.ErrorDetails == "" {
		return e.Message
	}
	return e.Message + ": " + e.ErrorDetails
}

// NewErrorResponse builds an envelope stamped with the current UTC time.
func NewErrorResponse(message string, err error) ErrorResponse {
	resp := ErrorResponse{Message: message, Timestamp: time.Now().UTC()}
	if err != nil {
		resp.ErrorDetails = err.Error()
	}
	return resp
}
