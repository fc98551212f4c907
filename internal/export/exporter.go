package export

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"codeberg.org/snonux/wordexport/internal/wordlist"
)

// Format selects the on-disk representation of an export
type Format string

const (
	FormatCSV    Format = "csv"
	FormatJSON   Format = "json"
	FormatSQLite Format = "sqlite"
)

// ErrUnknownFormat is returned for a format name that has no writer
var ErrUnknownFormat = errors.New("unknown export format")

// HeaderField is the single CSV header column
const HeaderField = "word"

// ParseFormat maps a user-supplied name (any case) to a Format
func ParseFormat(name string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(name))) {
	case FormatCSV:
		return FormatCSV, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatSQLite:
		return FormatSQLite, nil
	}
	return "", fmt.Errorf("%w: %q (want csv, json or sqlite)", ErrUnknownFormat, name)
}

// ExporterOptions configures an export
type ExporterOptions struct {
	OutputPath     string // Destination file, created or overwritten
	Format         Format // Output format
	IncludeHeaders bool   // Write the "word" header row (CSV only)
}

// DefaultExporterOptions returns the options of a plain run
func DefaultExporterOptions() *ExporterOptions {
	return &ExporterOptions{
		OutputPath:     "words.csv",
		Format:         FormatCSV,
		IncludeHeaders: true,
	}
}

// Exporter filters, deduplicates, sorts and writes word lists
type Exporter struct {
	options *ExporterOptions
	words   []string
}

// NewExporter creates a new exporter
func NewExporter(options *ExporterOptions) *Exporter {
	if options == nil {
		options = DefaultExporterOptions()
	}
	if options.Format == "" {
		options.Format = FormatCSV
	}
	return &Exporter{
		options: options,
	}
}

// Export writes the normalized form of words to the configured path and
// returns the number of words written (header excluded)
func (e *Exporter) Export(words []string) (int, error) {
	collection := wordlist.NewCollection(words...)
	return e.ExportCollection(collection)
}

// ExportCollection writes an already built collection
func (e *Exporter) ExportCollection(collection *wordlist.Collection) (int, error) {
	sorted := collection.Words()

	var err error
	switch e.options.Format {
	case FormatCSV:
		err = e.writeCSV(sorted)
	case FormatJSON:
		err = e.writeJSON(sorted)
	case FormatSQLite:
		err = writeSQLite(e.options.OutputPath, sorted)
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownFormat, e.options.Format)
	}
	if err != nil {
		return 0, err
	}

	e.words = sorted
	return len(sorted), nil
}

// Words returns the sorted list written by the last successful export
func (e *Exporter) Words() []string {
	return e.words
}

// OutputPath returns the destination file
func (e *Exporter) OutputPath() string {
	return e.options.OutputPath
}

// writeCSV writes the header and one word per row, CRLF terminated
func (e *Exporter) writeCSV(words []string) (err error) {
	file, err := os.Create(e.options.OutputPath)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close CSV file: %w", cerr)
		}
	}()

	writer := csv.NewWriter(file)
	writer.UseCRLF = true

	if e.options.IncludeHeaders {
		if err := writer.Write([]string{HeaderField}); err != nil {
			return fmt.Errorf("failed to write headers: %w", err)
		}
	}

	for _, word := range words {
		if err := writer.Write([]string{word}); err != nil {
			return fmt.Errorf("failed to write word: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV file: %w", err)
	}

	return nil
}

// wordListDocument is the layout the game frontend loads
type wordListDocument struct {
	ValidWords  []string `json:"validWords"`
	TargetWords []string `json:"targetWords"`
}

// writeJSON writes the list as both the guess and the answer vocabulary
func (e *Exporter) writeJSON(words []string) error {
	doc := wordListDocument{
		ValidWords:  words,
		TargetWords: words,
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode word list: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(e.options.OutputPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write JSON file: %w", err)
	}

	return nil
}

// Export writes words as CSV to path and returns the number of rows written
func Export(words []string, path string) (int, error) {
	exporter := NewExporter(&ExporterOptions{
		OutputPath:     path,
		Format:         FormatCSV,
		IncludeHeaders: true,
	})
	return exporter.Export(words)
}
