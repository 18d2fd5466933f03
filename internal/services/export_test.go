package services

import (
	"context"
	"time"

	"github.com/google/generative-ai-go/genai"
)

// NewGeminiServiceWithGenerator builds a service whose models all answer
// through generate, for tests outside the package.
func NewGeminiServiceWithGenerator(models []string, timeout time.Duration, generate func(ctx context.Context) (*genai.GenerateContentResponse, error)) *GeminiService {
	return &GeminiService{
		models:  models,
		timeout: timeout,
		newModel: func(string) contentGenerator {
			return generatorFunc(generate)
		},
	}
}

type generatorFunc func(ctx context.Context) (*genai.GenerateContentResponse, error)

func (f generatorFunc) GenerateContent(ctx context.Context, _ ...genai.Part) (*genai.GenerateContentResponse, error) {
	return f(ctx)
}
