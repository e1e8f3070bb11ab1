package services

import (
	"context"
	"encoding/json"
	"log"
	"strings"

	"craftpad-backend/internal/models"
)

// assistantPlaceholder stands in for prior model output when history
// is replayed, so large generated code is never resent.
const assistantPlaceholder = "Request completed"

const (
	placeholderHTML = "<!-- none -->"
	placeholderCSS  = "/* none */"
	placeholderJS   = "// none"
)

type RelayService struct {
	client *OpenAIClient
}

func NewRelayService(client *OpenAIClient) *RelayService {
	return &RelayService{client: client}
}

// BuildMessages constructs the conversation prefix: one system message
// carrying the sandbox instructions and current page state, then each
// history entry replayed as a user turn followed by a placeholder
// assistant turn. The new prompt is the caller's to append.
func (s *RelayService) BuildMessages(history []string, state models.SandboxState) []models.ChatMessage {
	messages := make([]models.ChatMessage, 0, 2*len(history)+1)

	messages = append(messages, models.ChatMessage{
		Role:    models.RoleSystem,
		Content: buildSystemPrompt(state),
	})

	for _, entry := range history {
		messages = append(messages, models.ChatMessage{
			Role:    models.RoleUser,
			Content: entry,
		})
		messages = append(messages, models.ChatMessage{
			Role:    models.RoleAssistant,
			Content: assistantPlaceholder,
		})
	}

	return messages
}

// Chat appends the new prompt to the built prefix and forwards the
// conversation to the completion endpoint.
func (s *RelayService) Chat(ctx context.Context, prompt string, history []string, state models.SandboxState) (string, error) {
	messages := append(s.BuildMessages(history, state), models.ChatMessage{
		Role:    models.RoleUser,
		Content: prompt,
	})

	if dump, err := json.Marshal(messages); err == nil {
		log.Printf("→ OpenAI request (%d messages): %s", len(messages), dump)
	}

	return s.client.CreateChatCompletion(ctx, messages)
}

func buildSystemPrompt(state models.SandboxState) string {
	var b strings.Builder

	// Layer 1 — Role
	b.WriteString("You are an expert front-end developer working inside a live sandbox. ")
	b.WriteString("The user is building a single web page; its HTML, CSS and JavaScript run in an isolated frame and are re-rendered after every change.\n\n")

	// Layer 2 — Output rules
	b.WriteString("When the user asks for a change, respond with the complete updated code for every part you modify, in fenced code blocks labeled html, css or js. ")
	b.WriteString("Code must be self-contained; do not reference files that do not exist in the sandbox.\n\n")

	// Layer 3 — Current page state
	b.WriteString("Current page state:\n")
	b.WriteString("---HTML---\n")
	b.WriteString(orPlaceholder(state.HTML, placeholderHTML))
	b.WriteString("\n---CSS---\n")
	b.WriteString(orPlaceholder(state.CSS, placeholderCSS))
	b.WriteString("\n---JS---\n")
	b.WriteString(orPlaceholder(state.JS, placeholderJS))
	b.WriteString("\n")

	return b.String()
}

func orPlaceholder(value, placeholder string) string {
	if value == "" {
		return placeholder
	}
	return value
}
