package processor

import (
	"github.com/spf13/viper"

	"codeberg.org/snonux/csvtrans/internal/cli"
	"codeberg.org/snonux/csvtrans/internal/translation"
)

// Config holds everything the processor needs besides its translator
type Config struct {
	Translation  *translation.Config
	Concurrency  int
	OutputFormat string
}

// LoadConfig builds the configuration from viper, which already merges
// flags, the config file and CSVTRANS_* environment variables. Keys that
// are not set keep the translation package defaults.
func LoadConfig() *Config {
	tc := translation.DefaultConfig()

	if viper.IsSet("translate.backend") {
		tc.Backend = viper.GetString("translate.backend")
	}
	if viper.IsSet("translate.endpoint") {
		tc.Endpoint = viper.GetString("translate.endpoint")
	}
	if viper.IsSet("translate.unwrap_json") {
		tc.UnwrapJSON = viper.GetBool("translate.unwrap_json")
	}
	if viper.IsSet("translate.source") {
		tc.SourceLang = viper.GetString("translate.source")
	}
	if viper.IsSet("translate.target") {
		tc.TargetLang = viper.GetString("translate.target")
	}
	if viper.IsSet("translate.timeout") {
		tc.Timeout = viper.GetDuration("translate.timeout")
	}
	if viper.IsSet("translate.breaker") {
		tc.Breaker = viper.GetBool("translate.breaker")
	}
	if viper.IsSet("translate.breaker_threshold") {
		tc.BreakerThreshold = viper.GetUint32("translate.breaker_threshold")
	}
	if viper.IsSet("translate.breaker_cooldown") {
		tc.BreakerCooldown = viper.GetDuration("translate.breaker_cooldown")
	}
	if viper.IsSet("openai.model") {
		tc.OpenAIModel = viper.GetString("openai.model")
	}
	if viper.IsSet("openai.base_url") {
		tc.OpenAIBaseURL = viper.GetString("openai.base_url")
	}
	if viper.IsSet("gemini.model") {
		tc.GeminiModel = viper.GetString("gemini.model")
	}
	tc.OpenAIKey = cli.GetOpenAIKey()
	tc.GeminiKey = cli.GetGeminiKey()

	config := &Config{
		Translation:  tc,
		Concurrency:  viper.GetInt("translate.concurrency"),
		OutputFormat: FormatText,
	}
	if format := viper.GetString("output.format"); format != "" {
		config.OutputFormat = format
	}

	return config
}
