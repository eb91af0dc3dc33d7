package ai

// ChatMessage is one turn of an assistant conversation.
type ChatMessage struct {
	Role    string `json:"role" validate:"required,oneof=system user assistant"`
	Content string `json:"content" validate:"required"`
}

// ChatRequest carries the conversation so far; the upstream model answers
// the last user turn.
type ChatRequest struct {
	Messages []ChatMessage `json:"messages" validate:"required,min=1,dive"`
}

// ChatResponse wraps the assistant's reply.
type ChatResponse struct {
	Message ChatMessage `json:"message"`
}
