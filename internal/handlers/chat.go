package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"craftpad-backend/internal/models"
	"craftpad-backend/internal/services"
)

type chatService interface {
	Chat(ctx context.Context, prompt string, history []string, state models.SandboxState) (string, error)
}

type ChatHandler struct {
	relay chatService
}

func NewChatHandler(relay chatService) *ChatHandler {
	return &ChatHandler{relay: relay}
}

func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if strings.TrimSpace(req.Prompt) == "" {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Prompt is required"})
		return
	}

	reply, err := h.relay.Chat(r.Context(), req.Prompt, req.History, req.State)
	if err != nil {
		handleRelayError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, models.ChatResponse{Reply: reply})
}

// Shared helpers

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func handleRelayError(w http.ResponseWriter, r *http.Request, err error) {
	requestID := r.Header.Get("X-Request-ID")

	var upstream *services.UpstreamError
	if errors.As(err, &upstream) {
		log.Printf("upstream error (request %s): status %d: %s", requestID, upstream.Status, upstream.Body)
		writeJSON(w, http.StatusBadGateway, models.ErrorResponse{
			Error:   "Completion endpoint returned an error",
			Details: upstream.Body,
		})
		return
	}

	log.Printf("relay error (request %s): %v", requestID, err)
	writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{
		Error:   "Failed to get AI response",
		Details: err.Error(),
	})
}
