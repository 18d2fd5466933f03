package services

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"message-relay/internal/config"
)

// FallbackReply is returned to the client whenever the upstream model cannot
// produce an answer.
const FallbackReply = "Sorry, I'm having trouble responding right now. Please try again."

var (
	ErrMissingAPIKey = errors.New("GEMINI_API_KEY environment variable is not set")
	ErrEmptyReply    = errors.New("model returned empty response")
)

// Replier resolves the reply text for a single user message.
type Replier interface {
	Reply(ctx context.Context, message string) (string, error)
}

// EchoReplier answers without calling the model. Used in fake mode.
type EchoReplier struct{}

func (EchoReplier) Reply(_ context.Context, message string) (string, error) {
	return "Echo: " + strings.TrimSpace(message), nil
}

// UnavailableReplier is wired when there is no API key and fake mode is off.
type UnavailableReplier struct{}

func (UnavailableReplier) Reply(context.Context, string) (string, error) {
	return "", ErrMissingAPIKey
}

// NewReplier picks the reply strategy for the loaded configuration. The
// returned close func releases the Gemini client, if one was created.
func NewReplier(cfg *config.Config, log zerolog.Logger) (Replier, func(), error) {
	switch {
	case cfg.AllowFakeGemini:
		log.Warn().Msg("ALLOW_FAKE_GEMINI is set, replies are echoed")
		return EchoReplier{}, func() {}, nil
	case cfg.GeminiAPIKey != "":
		svc, err := NewGeminiService(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel, cfg.GeminiTimeoutSeconds)
		if err != nil {
			return nil, nil, err
		}
		return svc, svc.Close, nil
	default:
		log.Warn().Msg("GEMINI_API_KEY is not set, every chat request will get the fallback reply")
		return UnavailableReplier{}, func() {}, nil
	}
}
