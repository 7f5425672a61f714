package models

// ErrorMessageResponse is the error envelope the backend returns on non-2xx
// responses
type ErrorMessageResponse struct {
	Response MessageError `json:"response"`
}

// MessageError contains the inner details for the error message response
type MessageError struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}
