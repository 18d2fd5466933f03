package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// DefaultModels are tried in order after an explicit GEMINI_MODEL override.
var DefaultModels = []string{"gemini-1.5-flash", "gemini-pro"}

const (
	promptPrefix  = "Provide a concise helpful reply to the user message:\n\n"
	maxReplyRunes = 2000
)

// contentGenerator is the slice of *genai.GenerativeModel the service uses.
type contentGenerator interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

type GeminiService struct {
	client   *genai.Client
	models   []string
	timeout  time.Duration
	newModel func(name string) contentGenerator
}

func NewGeminiService(ctx context.Context, apiKey, modelOverride string, timeoutSeconds int) (*GeminiService, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrMissingAPIKey
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiService{
		client:  client,
		models:  modelCandidates(modelOverride),
		timeout: time.Duration(timeoutSeconds) * time.Second,
		newModel: func(name string) contentGenerator {
			return client.GenerativeModel(name)
		},
	}, nil
}

func (s *GeminiService) Close() {
	if s.client != nil {
		s.client.Close()
	}
}

// Reply asks each candidate model in turn and returns the first non-empty
// answer. All attempts share one timeout budget, so a hanging upstream costs
// at most s.timeout however many models are configured. The returned error
// wraps the last model failure.
func (s *GeminiService) Reply(ctx context.Context, message string) (string, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	prompt := promptPrefix + message

	var lastErr error
	for _, name := range s.models {
		reply, err := s.generate(ctx, name, prompt)
		if err == nil {
			return reply, nil
		}
		lastErr = fmt.Errorf("%s: %w", name, err)

		// Budget spent or caller gone; the next model would fail the same way.
		if ctx.Err() != nil {
			break
		}
	}
	if lastErr == nil {
		lastErr = errors.New("no Gemini model configured")
	}
	return "", fmt.Errorf("all model attempts failed: %w", lastErr)
}

func (s *GeminiService) generate(ctx context.Context, name, prompt string) (string, error) {
	resp, err := s.newModel(name).GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("Gemini API error: %w", err)
	}

	text := strings.TrimSpace(extractText(resp))
	if text == "" {
		return "", ErrEmptyReply
	}
	return truncateRunes(text, maxReplyRunes), nil
}

// modelCandidates puts the override first and drops duplicates.
func modelCandidates(override string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, m := range append([]string{strings.TrimSpace(override)}, DefaultModels...) {
		if m == "" || seen[m] {
			continue
		}
		seen[m] = true
		out = append(out, m)
	}
	return out
}

// extractText joins the text parts of the first candidate.
func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	cand := resp.Candidates[0]
	if cand == nil || cand.Content == nil {
		return ""
	}
	var text strings.Builder
	for _, part := range cand.Content.Parts {
		if t, ok := part.(genai.Text); ok {
			text.WriteString(string(t))
		}
	}
	return text.String()
}

func truncateRunes(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return strings.TrimSpace(string(r[:limit]))
}
