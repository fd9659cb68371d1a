package models

// Envelope is the uniform wrapper applied to every JSON response.
// Success responses carry data; failures carry a stable error code.
type Envelope struct {
	Status  string         `json:"status"`
	Data    map[string]any `json:"data,omitempty"`
	Error   string         `json:"error,omitempty"`
	Message string         `json:"message,omitempty"`
}

// Success builds a success envelope
func Success(data map[string]any, message string) Envelope {
	return Envelope{
		Status:  "success",
		Data:    data,
		Message: message,
	}
}

// Error builds an error envelope with a stable error code
func Error(code, message string) Envelope {
	return Envelope{
		Status:  "error",
		Error:   code,
		Message: message,
	}
}
