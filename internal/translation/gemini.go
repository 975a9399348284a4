package translation

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/genai"
)

// GeminiTranslator translates text with a Gemini model
type GeminiTranslator struct {
	model  string
	source string
	target string
	client *genai.Client
}

// NewGeminiTranslator creates a translator backed by the Gemini API
func NewGeminiTranslator(ctx context.Context, config *Config) (*GeminiTranslator, error) {
	if config.GeminiKey == "" {
		return nil, fmt.Errorf("gemini: %w", ErrMissingAPIKey)
	}

	clientConfig := &genai.ClientConfig{
		APIKey:  config.GeminiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if config.Timeout > 0 {
		clientConfig.HTTPClient = &http.Client{Timeout: config.Timeout}
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &GeminiTranslator{
		model:  config.GeminiModel,
		source: config.SourceLang,
		target: config.TargetLang,
		client: client,
	}, nil
}

// Translate translates text from the source to the target language
func (t *GeminiTranslator) Translate(ctx context.Context, text string) (string, error) {
	prompt := "Respond with only the translation, nothing else.\n" + translationPrompt(t.source, t.target, text)

	resp, err := t.client.Models.GenerateContent(ctx, t.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("gemini API error: %w", err)
	}

	translated := strings.TrimSpace(resp.Text())
	if translated == "" {
		return "", ErrEmptyResponse
	}

	return translated, nil
}
