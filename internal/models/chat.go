package models

// Message roles understood by the chat-completion endpoint.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage is a single role-tagged message in a conversation.
// Order within a slice is the model's context and is significant.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// SandboxState is the caller-held page currently rendered in the
// sandbox frame. Resent on every call; the server keeps no session.
type SandboxState struct {
	HTML string `json:"html"`
	CSS  string `json:"css"`
	JS   string `json:"js"`
}

// ChatRequest is the payload sent to POST /api/chat.
type ChatRequest struct {
	Prompt  string       `json:"prompt"`
	History []string     `json:"history"`
	State   SandboxState `json:"state"`
}

// ChatResponse is the successful reply from the relay.
type ChatResponse struct {
	Reply string `json:"reply"`
}

// ErrorResponse is the failure body for every non-2xx relay response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
