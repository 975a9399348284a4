package processor

import (
	"encoding/json"
	"fmt"
	"io"

	"codeberg.org/snonux/csvtrans/internal/batch"
	"codeberg.org/snonux/csvtrans/internal/translation"
)

// Output formats
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ValidateFormat checks that format is a supported output format
func ValidateFormat(format string) error {
	switch format {
	case FormatText, FormatJSON:
		return nil
	default:
		return fmt.Errorf("unknown output format %q (use %s or %s)", format, FormatText, FormatJSON)
	}
}

// Render writes records to w in the given format
func Render(w io.Writer, records []batch.Record, format string) error {
	switch format {
	case FormatText:
		return renderText(w, records)
	case FormatJSON:
		return renderJSON(w, records)
	default:
		return ValidateFormat(format)
	}
}

func renderText(w io.Writer, records []batch.Record) error {
	fmt.Fprintf(w, "Translated data (%d records):\n", len(records))

	for i, record := range records {
		fmt.Fprintf(w, "[%d] %s, page %d\n", i+1, record.DocumentName, record.PageNumber)
		fmt.Fprintf(w, "    text_original: %s\n", record.SourceText)
		if record.IsTranslated() {
			fmt.Fprintf(w, "    text_german:   %s\n", record.Translation())
		} else {
			fmt.Fprintf(w, "    text_german:   (none)\n")
		}
		if record.Comment != "" {
			fmt.Fprintf(w, "    comment:       %s\n", record.Comment)
		}
	}

	_, err := fmt.Fprintf(w, "Translated %d/%d records\n", translation.CountTranslated(records), len(records))
	return err
}

func renderJSON(w io.Writer, records []batch.Record) error {
	if records == nil {
		records = []batch.Record{}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode records: %w", err)
	}

	_, err = fmt.Fprintln(w, string(data))
	return err
}
