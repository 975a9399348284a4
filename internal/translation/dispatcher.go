package translation

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"codeberg.org/snonux/csvtrans/internal/batch"
)

// Dispatcher translates a batch of records concurrently, one request per
// record, and merges the results back by position.
type Dispatcher struct {
	translator  Translator
	concurrency int
	logger      *slog.Logger
}

// NewDispatcher creates a dispatcher. A concurrency of 0 or less launches
// every request at once; a positive value caps the number of requests in
// flight.
func NewDispatcher(translator Translator, concurrency int, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{
		translator:  translator,
		concurrency: concurrency,
		logger:      logger,
	}
}

// Dispatch returns a copy of records with TranslatedText set on every
// record whose translation succeeded. Failures leave the field nil and
// never affect other records. The input slice is not modified.
func (d *Dispatcher) Dispatch(ctx context.Context, records []batch.Record) []batch.Record {
	// Each task owns exactly one slot, indexed by its record's position
	results := make([]*string, len(records))

	var g errgroup.Group
	if d.concurrency > 0 {
		g.SetLimit(d.concurrency)
	}

	for i, record := range records {
		g.Go(func() error {
			translated, err := d.translator.Translate(ctx, record.SourceText)
			if err != nil {
				d.logger.Debug("translation failed",
					"index", i,
					"document", record.DocumentName,
					"page", record.PageNumber,
					"error", err)
				return nil
			}
			results[i] = &translated
			return nil
		})
	}
	g.Wait()

	translated := make([]batch.Record, len(records))
	copy(translated, records)
	for i, result := range results {
		if result != nil {
			translated[i].TranslatedText = result
		}
	}

	return translated
}

// CountTranslated returns how many records carry a translation
func CountTranslated(records []batch.Record) int {
	count := 0
	for _, record := range records {
		if record.IsTranslated() {
			count++
		}
	}
	return count
}
