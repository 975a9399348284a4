package processor

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"codeberg.org/snonux/csvtrans/internal"
	"codeberg.org/snonux/csvtrans/internal/batch"
	"codeberg.org/snonux/csvtrans/internal/translation"
)

// QuitCommand ends the prompt loop, compared case-insensitively
const QuitCommand = "q"

// Prompt asks for the next file
const Prompt = "Please enter the path of the CSV file to translate ('q' to quit):"

// Processor runs the interactive prompt loop
type Processor struct {
	config     *Config
	translator translation.Translator
	logger     *slog.Logger

	in             io.Reader
	out            io.Writer
	countdownDelay time.Duration
}

// NewProcessor creates a processor reading from stdin and printing to stdout
func NewProcessor(config *Config, translator translation.Translator, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		config:         config,
		translator:     translator,
		logger:         logger,
		in:             os.Stdin,
		out:            os.Stdout,
		countdownDelay: 300 * time.Millisecond,
	}
}

// SetIO replaces the prompt input and the result output
func (p *Processor) SetIO(in io.Reader, out io.Writer) {
	p.in = in
	p.out = out
}

// Run prompts for file paths until the quit command is entered or the
// input ends. Problems with a single file are reported and the loop
// continues; only a failure to read the input itself is returned.
func (p *Processor) Run(ctx context.Context) error {
	// A Reader rather than a Scanner, so no line is too long to read
	reader := bufio.NewReader(p.in)

	for {
		fmt.Fprintln(p.out, Prompt)
		fmt.Fprint(p.out, "> ")

		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("failed to read input: %w", err)
		}
		if err != nil && line == "" {
			// End of input
			fmt.Fprintln(p.out)
			return nil
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}

		if strings.EqualFold(input, QuitCommand) {
			p.countdown()
			return nil
		}

		records, err := p.ProcessFile(ctx, input)
		if err != nil {
			fmt.Fprintf(p.out, "Error reading CSV file: %v. Please try again.\n", err)
			continue
		}

		if err := Render(p.out, records, p.config.OutputFormat); err != nil {
			fmt.Fprintf(p.out, "Error printing translated data: %v\n", err)
		}
	}
}

// ProcessFile reads the records of path and translates them. The returned
// error is only ever a read error; translation failures leave the
// affected records untranslated.
func (p *Processor) ProcessFile(ctx context.Context, path string) ([]batch.Record, error) {
	logger := p.logger.With("batch", internal.GenerateBatchID(path))

	records, err := batch.ReadFile(path)
	if err != nil {
		logger.Warn("failed to read file", "file", path, "error", err)
		return nil, err
	}

	logger.Info("translating file", "file", path, "records", len(records))
	start := time.Now()

	dispatcher := translation.NewDispatcher(p.translator, p.config.Concurrency, logger)
	translated := dispatcher.Dispatch(ctx, records)

	logger.Info("file translated",
		"records", len(translated),
		"translated", translation.CountTranslated(translated),
		"duration", time.Since(start))

	return translated, nil
}

func (p *Processor) countdown() {
	fmt.Fprintln(p.out, "Exiting in")
	for i := 3; i >= 0; i-- {
		fmt.Fprintf(p.out, "%d..\n", i)
		time.Sleep(p.countdownDelay)
	}
	fmt.Fprintln(p.out, "Good bye")
}
