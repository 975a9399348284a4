package processor

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"codeberg.org/snonux/csvtrans/internal/testutil"
	"codeberg.org/snonux/csvtrans/internal/translation"
)

func newTestProcessor(t *testing.T, translator translation.Translator, input string) (*Processor, *bytes.Buffer) {
	t.Helper()

	config := &Config{Translation: translation.DefaultConfig(), OutputFormat: FormatText}
	p := NewProcessor(config, translator, slog.New(slog.NewTextHandler(io.Discard, nil)))
	p.countdownDelay = 0

	var out bytes.Buffer
	p.SetIO(strings.NewReader(input), &out)

	return p, &out
}

func TestNewProcessor(t *testing.T) {
	mock := &testutil.MockTranslator{}
	config := &Config{Translation: translation.DefaultConfig()}
	p := NewProcessor(config, mock, nil)

	if p == nil {
		t.Fatal("NewProcessor returned nil")
	}
	if p.config != config {
		t.Error("Processor config not set correctly")
	}
	if p.translator == nil {
		t.Error("Translator not initialized")
	}
	if p.logger == nil {
		t.Error("Logger not initialized")
	}
	if p.countdownDelay != 300*time.Millisecond {
		t.Errorf("Expected 300ms countdown delay, got %v", p.countdownDelay)
	}
}

func TestRun_QuitCommand(t *testing.T) {
	for _, input := range []string{"q\n", "Q\n", "  q  \n"} {
		mock := &testutil.MockTranslator{}
		p, out := newTestProcessor(t, mock, input+"never-read.csv\n")

		if err := p.Run(context.Background()); err != nil {
			t.Fatalf("Run() error = %v", err)
		}

		output := out.String()
		for _, line := range []string{Prompt, "Exiting in", "3..", "2..", "1..", "0..", "Good bye"} {
			if !strings.Contains(output, line) {
				t.Errorf("input %q: output missing %q:\n%s", input, line, output)
			}
		}
		if strings.Count(output, Prompt) != 1 {
			t.Errorf("input %q: expected a single prompt, got:\n%s", input, output)
		}
		if len(mock.Calls()) != 0 {
			t.Errorf("input %q: expected no translations, got %v", input, mock.Calls())
		}
	}
}

func TestRun_MissingFileReprompts(t *testing.T) {
	mock := &testutil.MockTranslator{}
	p, out := newTestProcessor(t, mock, "/nonexistent/rows.csv\nq\n")

	if err := p.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	output := out.String()
	if !strings.Contains(output, "Error reading CSV file") {
		t.Errorf("Expected diagnostic, got:\n%s", output)
	}
	if strings.Count(output, Prompt) != 2 {
		t.Errorf("Expected two prompts, got:\n%s", output)
	}
	if !strings.Contains(output, "Good bye") {
		t.Errorf("Expected loop to continue until quit, got:\n%s", output)
	}
}

func TestRun_TranslatesFile(t *testing.T) {
	path := testutil.CreateTestCSV(t,
		"Doc1;Hello world;1;",
		"Doc1;Broken;2;retry later",
		"Doc2;Good night;7;")

	mock := &testutil.MockTranslator{
		Translations: map[string]string{"Hello world": "Hallo Welt", "Good night": "Gute Nacht"},
		Errors:       map[string]error{"Broken": errors.New("timeout")},
	}
	p, out := newTestProcessor(t, mock, "\n"+path+"\nq\n")

	if err := p.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	output := out.String()
	expected := []string{
		"Translated data (3 records):",
		"[1] Doc1, page 1",
		"text_german:   Hallo Welt",
		"[2] Doc1, page 2",
		"text_german:   (none)",
		"comment:       retry later",
		"text_german:   Gute Nacht",
		"Translated 2/3 records",
	}
	for _, want := range expected {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q:\n%s", want, output)
		}
	}
	// The blank line re-prompts without processing anything
	if strings.Count(output, Prompt) != 3 {
		t.Errorf("Expected three prompts, got:\n%s", output)
	}
}

func TestRun_EndOfInput(t *testing.T) {
	mock := &testutil.MockTranslator{}
	p, out := newTestProcessor(t, mock, "")

	if err := p.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if strings.Contains(out.String(), "Good bye") {
		t.Error("Expected no countdown when input ends")
	}
}

func TestRun_LongLineReprompts(t *testing.T) {
	mock := &testutil.MockTranslator{}
	longPath := "/nonexistent/" + strings.Repeat("a", 100*1024) + ".csv"
	p, out := newTestProcessor(t, mock, longPath+"\nq\n")

	if err := p.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	output := out.String()
	if !strings.Contains(output, "Error reading CSV file") {
		t.Error("Expected diagnostic for the long path")
	}
	if strings.Count(output, Prompt) != 2 {
		t.Errorf("Expected two prompts, got %d", strings.Count(output, Prompt))
	}
	if !strings.Contains(output, "Good bye") {
		t.Error("Expected loop to continue until quit")
	}
}

func TestRun_QuitWithoutTrailingNewline(t *testing.T) {
	mock := &testutil.MockTranslator{}
	p, out := newTestProcessor(t, mock, "q")

	if err := p.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !strings.Contains(out.String(), "Good bye") {
		t.Errorf("Expected countdown, got:\n%s", out.String())
	}
}

func TestProcessFile(t *testing.T) {
	server := testutil.NewTranslationServer(t,
		map[string]string{"Hello world": "Hallo Welt"},
		[]string{"Fails"},
		nil)
	path := testutil.CreateTestCSV(t, "Doc1;Hello world;1;", "Doc2;Fails;2;")

	translator := translation.NewHTTPTranslator(server.Endpoint(), "en", "de", server.Client())
	p, _ := newTestProcessor(t, translator, "")

	records, err := p.ProcessFile(context.Background(), path)
	if err != nil {
		t.Fatalf("ProcessFile() error = %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(records))
	}
	if records[0].DocumentName != "Doc1" || records[0].Translation() != "Hallo Welt" {
		t.Errorf("Unexpected first record: %+v", records[0])
	}
	if records[1].DocumentName != "Doc2" || records[1].IsTranslated() {
		t.Errorf("Unexpected second record: %+v", records[1])
	}
}

func TestProcessFile_MalformedRow(t *testing.T) {
	path := testutil.CreateTestCSV(t, "Doc1;Hello world;1;", "Doc2;Bad;page;")

	mock := &testutil.MockTranslator{}
	p, _ := newTestProcessor(t, mock, "")

	records, err := p.ProcessFile(context.Background(), path)
	if err == nil {
		t.Fatalf("Expected error, got %+v", records)
	}
	if len(mock.Calls()) != 0 {
		t.Errorf("Expected no translations for a rejected file, got %v", mock.Calls())
	}
}
