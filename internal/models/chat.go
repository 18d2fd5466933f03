package models

// ChatRequest is the payload sent to the chat endpoints.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse is the reply from the AI chat.
type ChatResponse struct {
	Reply string `json:"reply"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type HealthResponse struct {
	Message string `json:"message"`
}
