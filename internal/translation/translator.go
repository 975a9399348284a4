package translation

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Backend names accepted by New
const (
	BackendLibreTranslate = "libretranslate"
	BackendOpenAI         = "openai"
	BackendGemini         = "gemini"
)

var (
	// ErrUnknownBackend is returned by New for an unsupported backend name
	ErrUnknownBackend = errors.New("unknown translation backend")
	// ErrMissingAPIKey is returned when a backend needs an API key and none is configured
	ErrMissingAPIKey = errors.New("API key not found")
	// ErrEmptyResponse is returned when a backend answered without any translation
	ErrEmptyResponse = errors.New("no translation returned")
)

// Translator translates a single text. Implementations must be safe for
// concurrent use.
type Translator interface {
	Translate(ctx context.Context, text string) (string, error)
}

// Config holds the configuration for all translation backends
type Config struct {
	Backend    string // "libretranslate", "openai" or "gemini"
	SourceLang string
	TargetLang string
	Timeout    time.Duration // 0 means requests never time out

	// Circuit breaker around the backend
	Breaker          bool
	BreakerThreshold uint32 // consecutive failures before the breaker opens
	BreakerCooldown  time.Duration

	// LibreTranslate settings
	Endpoint   string
	UnwrapJSON bool // return translatedText of a JSON reply instead of the body

	// OpenAI settings
	OpenAIKey     string
	OpenAIModel   string
	OpenAIBaseURL string

	// Gemini settings
	GeminiKey   string
	GeminiModel string
}

// DefaultConfig returns the default configuration: the local
// LibreTranslate endpoint, English to German.
func DefaultConfig() *Config {
	return &Config{
		Backend:          BackendLibreTranslate,
		SourceLang:       "en",
		TargetLang:       "de",
		BreakerThreshold: 5,
		BreakerCooldown:  30 * time.Second,
		Endpoint:         "http://localhost:5000/translate",
		OpenAIModel:      "gpt-4o-mini",
		GeminiModel:      "gemini-2.0-flash",
	}
}

// New creates the translator for the configured backend
func New(ctx context.Context, config *Config) (Translator, error) {
	if config == nil {
		config = DefaultConfig()
	}

	var translator Translator
	switch config.Backend {
	case BackendLibreTranslate, "":
		client := &http.Client{Timeout: config.Timeout}
		libre := NewHTTPTranslator(config.Endpoint, config.SourceLang, config.TargetLang, client)
		libre.SetUnwrapJSON(config.UnwrapJSON)
		translator = libre

	case BackendOpenAI:
		if config.OpenAIKey == "" {
			return nil, fmt.Errorf("openai: %w", ErrMissingAPIKey)
		}
		translator = NewOpenAITranslator(config)

	case BackendGemini:
		gemini, err := NewGeminiTranslator(ctx, config)
		if err != nil {
			return nil, err
		}
		translator = gemini

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownBackend, config.Backend)
	}

	if config.Breaker {
		translator = NewBreakerTranslator(translator, config.Backend, config.BreakerThreshold, config.BreakerCooldown)
	}

	return translator, nil
}
