package dto

// MessageResponse is the standard error body: a status code plus {message}.
type MessageResponse struct {
	Message string `json:"message"`
}

// DeleteResponse is returned by successful DELETE operations.
type DeleteResponse struct {
	ID string `json:"id"`
}

// NewMessageResponse creates a message body for error responses.
func NewMessageResponse(message string) MessageResponse {
	return MessageResponse{Message: message}
}
