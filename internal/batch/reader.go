package batch

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Column names expected in the header row
const (
	ColumnDocumentName = "document_name"
	ColumnSourceText   = "text_original"
	ColumnPageNumber   = "page_number"
	ColumnComment      = "comment"
)

// Delimiter separates the fields of a row
const Delimiter = ';'

// ErrMissingColumn is returned when the header lacks a required column
var ErrMissingColumn = errors.New("missing required column")

// columns maps the known column names to their position in a row.
// An optional column that is not present has index -1.
type columns struct {
	documentName int
	sourceText   int
	pageNumber   int
	comment      int
}

// ReadFile reads records from a semicolon separated file with a header row.
// The whole read fails if any row does not match the header.
func ReadFile(filename string) ([]Record, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return Read(file)
}

// Read parses records from r. See ReadFile.
func Read(r io.Reader) ([]Record, error) {
	reader := csv.NewReader(r)
	reader.Comma = Delimiter
	// Every row must have as many fields as the header
	reader.FieldsPerRecord = 0
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("missing header row")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	cols, err := parseHeader(header)
	if err != nil {
		return nil, err
	}

	var records []Record
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row: %w", err)
		}

		line, _ := reader.FieldPos(0)
		record, err := cols.record(row)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		records = append(records, record)
	}

	return records, nil
}

func parseHeader(header []string) (columns, error) {
	cols := columns{documentName: -1, sourceText: -1, pageNumber: -1, comment: -1}

	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		switch strings.TrimSpace(name) {
		case ColumnDocumentName:
			cols.documentName = i
		case ColumnSourceText:
			cols.sourceText = i
		case ColumnPageNumber:
			cols.pageNumber = i
		case ColumnComment:
			cols.comment = i
		}
	}

	required := []struct {
		name  string
		index int
	}{
		{ColumnDocumentName, cols.documentName},
		{ColumnSourceText, cols.sourceText},
		{ColumnPageNumber, cols.pageNumber},
	}
	for _, col := range required {
		if col.index < 0 {
			return cols, fmt.Errorf("%w: %s", ErrMissingColumn, col.name)
		}
	}

	return cols, nil
}

func (c columns) record(row []string) (Record, error) {
	page, err := strconv.ParseUint(strings.TrimSpace(row[c.pageNumber]), 10, 0)
	if err != nil {
		return Record{}, fmt.Errorf("invalid %s %q: %w", ColumnPageNumber, row[c.pageNumber], err)
	}

	record := Record{
		DocumentName: row[c.documentName],
		SourceText:   row[c.sourceText],
		PageNumber:   uint(page),
	}
	if c.comment >= 0 {
		record.Comment = row[c.comment]
	}

	return record, nil
}
