package cli

import "time"

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile      string
	OutputFormat string
	LogLevel     string
	ListModels   bool

	// Translation flags
	Backend     string
	Endpoint    string
	UnwrapJSON  bool
	SourceLang  string
	TargetLang  string
	Concurrency int
	Timeout     time.Duration
	Breaker     bool

	// Model flags
	OpenAIModel string
	GeminiModel string
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		OutputFormat: "text",
		LogLevel:     "info",
		Backend:      "libretranslate",
		Endpoint:     "http://localhost:5000/translate",
		SourceLang:   "en",
		TargetLang:   "de",
		OpenAIModel:  "gpt-4o-mini",
		GeminiModel:  "gemini-2.0-flash",
	}
}
