package dto

// ChatRequest is a chatbot message.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse is the chatbot answer.
type ChatResponse struct {
	Reply string `json:"reply"`
}

// HealthResponse reports backend reachability.
type HealthResponse struct {
	Status string `json:"status"`
}
