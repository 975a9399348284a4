package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/csvtrans/internal"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "csvtrans",
		Short: "Interactive CSV row translator",
		Long: `csvtrans translates the text column of semicolon separated files.

It prompts for a file path, sends every row's text_original to the
translation endpoint concurrently and prints the translated rows.
Enter 'q' at the prompt to quit.

Expected file header:
  document_name;text_original;page_number;comment

Examples:
  csvtrans                          # Translate en->de via http://localhost:5000/translate
  csvtrans --target fr              # Translate to French
  csvtrans --backend openai         # Use an OpenAI chat model instead`,
		Args:    cobra.NoArgs,
		Version: internal.Version,
	}

	// Set up flags
	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.csvtrans.yaml)")

	// Local flags
	cmd.Flags().StringVar(&flags.OutputFormat, "format", flags.OutputFormat, "Output format: text or json")
	cmd.Flags().StringVar(&flags.LogLevel, "log-level", flags.LogLevel, "Log level: debug, info, warn, error")
	cmd.Flags().BoolVar(&flags.ListModels, "list-models", false, "List chat models available for the openai backend and exit")

	// Translation flags
	cmd.Flags().StringVarP(&flags.Backend, "backend", "b", flags.Backend, "Translation backend: libretranslate, openai or gemini")
	cmd.Flags().StringVarP(&flags.Endpoint, "endpoint", "e", flags.Endpoint, "Translation endpoint for the libretranslate backend")
	cmd.Flags().BoolVar(&flags.UnwrapJSON, "unwrap-json", false, "Use the translatedText field of a JSON reply instead of the raw body")
	cmd.Flags().StringVarP(&flags.SourceLang, "source", "s", flags.SourceLang, "Source language code")
	cmd.Flags().StringVarP(&flags.TargetLang, "target", "t", flags.TargetLang, "Target language code")
	cmd.Flags().IntVarP(&flags.Concurrency, "concurrency", "c", flags.Concurrency, "Maximum requests in flight (0 = one per row, unbounded)")
	cmd.Flags().DurationVar(&flags.Timeout, "timeout", flags.Timeout, "Per request timeout (0 = wait forever)")
	cmd.Flags().BoolVar(&flags.Breaker, "breaker", false, "Stop calling the backend after repeated failures")

	// Model flags
	cmd.Flags().StringVar(&flags.OpenAIModel, "openai-model", flags.OpenAIModel, "OpenAI chat model for the openai backend")
	cmd.Flags().StringVar(&flags.GeminiModel, "gemini-model", flags.GeminiModel, "Gemini model for the gemini backend")

	// Bind flags to viper
	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("output.format", cmd.Flags().Lookup("format"))
	viper.BindPFlag("log.level", cmd.Flags().Lookup("log-level"))
	viper.BindPFlag("translate.backend", cmd.Flags().Lookup("backend"))
	viper.BindPFlag("translate.endpoint", cmd.Flags().Lookup("endpoint"))
	viper.BindPFlag("translate.unwrap_json", cmd.Flags().Lookup("unwrap-json"))
	viper.BindPFlag("translate.source", cmd.Flags().Lookup("source"))
	viper.BindPFlag("translate.target", cmd.Flags().Lookup("target"))
	viper.BindPFlag("translate.concurrency", cmd.Flags().Lookup("concurrency"))
	viper.BindPFlag("translate.timeout", cmd.Flags().Lookup("timeout"))
	viper.BindPFlag("translate.breaker", cmd.Flags().Lookup("breaker"))
	viper.BindPFlag("openai.model", cmd.Flags().Lookup("openai-model"))
	viper.BindPFlag("gemini.model", cmd.Flags().Lookup("gemini-model"))
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".csvtrans" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".csvtrans")
	}

	// Environment variables
	viper.SetEnvPrefix("CSVTRANS")
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// GetOpenAIKey retrieves the OpenAI API key from environment or config
func GetOpenAIKey() string {
	// First check environment variable
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key
	}

	// Then check config file
	return viper.GetString("openai.api_key")
}

// GetGeminiKey retrieves the Gemini API key from environment or config
func GetGeminiKey() string {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key
	}

	return viper.GetString("gemini.api_key")
}
