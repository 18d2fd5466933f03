package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"message-relay/internal/middleware"
	"message-relay/internal/models"
	"message-relay/internal/services"
)

const (
	errMessageRequired = "message is required"
	maxBodyBytes       = 1 << 20
)

type ChatHandler struct {
	replier services.Replier
	log     zerolog.Logger
}

func NewChatHandler(replier services.Replier, log zerolog.Logger) *ChatHandler {
	return &ChatHandler{
		replier: replier,
		log:     log.With().Str("component", "chat").Logger(),
	}
}

// Send answers POST /api/chat and its aliases. Upstream failures are logged
// and turned into the fallback reply; only a bad request body yields a 4xx.
func (h *ChatHandler) Send(w http.ResponseWriter, r *http.Request) {
	var req models.ChatRequest
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: errMessageRequired})
		return
	}

	message := strings.TrimSpace(req.Message)
	if message == "" {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: errMessageRequired})
		return
	}

	reply, err := h.replier.Reply(r.Context(), message)
	if err != nil {
		h.log.Error().
			Err(err).
			Str("request_id", middleware.GetRequestID(r.Context())).
			Str("path", r.URL.Path).
			Msg("failed to generate reply, sending fallback")
		reply = services.FallbackReply
	}

	writeJSON(w, http.StatusOK, models.ChatResponse{Reply: reply})
}
