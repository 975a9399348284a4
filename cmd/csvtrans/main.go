package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/csvtrans/internal/cli"
	"codeberg.org/snonux/csvtrans/internal/models"
	"codeberg.org/snonux/csvtrans/internal/processor"
	"codeberg.org/snonux/csvtrans/internal/translation"
)

func main() {
	// Create flags instance
	flags := cli.NewFlags()

	// Set up command initialization
	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	// Execute command
	if err := newRootCommand(flags).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand(flags *cli.Flags) *cobra.Command {
	rootCmd := cli.CreateRootCommand(flags)
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, flags)
	}
	return rootCmd
}

func runCommand(cmd *cobra.Command, flags *cli.Flags) error {
	ctx := context.Background()
	logger := cli.NewLogger(viper.GetString("log.level"), cmd.ErrOrStderr())

	// Handle --list-models flag
	if flags.ListModels {
		lister := models.NewLister(cli.GetOpenAIKey(), viper.GetString("openai.base_url"))
		return lister.ListAvailableModels(ctx, cmd.OutOrStdout())
	}

	config := processor.LoadConfig()
	if err := processor.ValidateFormat(config.OutputFormat); err != nil {
		return err
	}

	translator, err := translation.New(ctx, config.Translation)
	if err != nil {
		return fmt.Errorf("failed to create translator: %w", err)
	}

	logger.Debug("translator ready",
		"backend", config.Translation.Backend,
		"source", config.Translation.SourceLang,
		"target", config.Translation.TargetLang,
		"concurrency", config.Concurrency)

	proc := processor.NewProcessor(config, translator, logger)
	proc.SetIO(cmd.InOrStdin(), cmd.OutOrStdout())
	return proc.Run(ctx)
}
