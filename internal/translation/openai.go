package translation

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// OpenAITranslator translates text with an OpenAI chat model
type OpenAITranslator struct {
	apiKey string
	model  string
	source string
	target string
	client *openai.Client
}

// NewOpenAITranslator creates a new translator instance
func NewOpenAITranslator(config *Config) *OpenAITranslator {
	clientConfig := openai.DefaultConfig(config.OpenAIKey)
	if config.OpenAIBaseURL != "" {
		clientConfig.BaseURL = config.OpenAIBaseURL
	}
	if config.Timeout > 0 {
		clientConfig.HTTPClient = &http.Client{Timeout: config.Timeout}
	}

	return &OpenAITranslator{
		apiKey: config.OpenAIKey,
		model:  config.OpenAIModel,
		source: config.SourceLang,
		target: config.TargetLang,
		client: openai.NewClientWithConfig(clientConfig),
	}
}

// Translate translates text from the source to the target language
func (t *OpenAITranslator) Translate(ctx context.Context, text string) (string, error) {
	if t.apiKey == "" {
		return "", fmt.Errorf("openai: %w", ErrMissingAPIKey)
	}

	req := openai.ChatCompletionRequest{
		Model: t.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You are a translation engine. Respond with only the translation, nothing else.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: translationPrompt(t.source, t.target, text),
			},
		},
		Temperature: 0.3,
	}

	resp, err := t.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", ErrEmptyResponse
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func translationPrompt(source, target, text string) string {
	return fmt.Sprintf("Translate the following text from language code '%s' to language code '%s':\n\n%s", source, target, text)
}
