package processor

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"
	"time"

	"codeberg.org/snonux/wordexport/internal/archive"
	"codeberg.org/snonux/wordexport/internal/cli"
	"codeberg.org/snonux/wordexport/internal/export"
	"codeberg.org/snonux/wordexport/internal/source"
	"codeberg.org/snonux/wordexport/internal/wordlist"
)

// previewSize is how many words the report shows from each end of the list
const previewSize = 10

// wordExporter is the part of export.Exporter a run drives
type wordExporter interface {
	ExportCollection(collection *wordlist.Collection) (int, error)
	OutputPath() string
	Words() []string
}

// Processor handles the main export logic
type Processor struct {
	flags       *cli.Flags
	out         io.Writer
	newExporter func(options *export.ExporterOptions) wordExporter
}

// NewProcessor creates a new processor writing its report to stdout
func NewProcessor(flags *cli.Flags) *Processor {
	return &Processor{
		flags: flags,
		out:   os.Stdout,
		newExporter: func(options *export.ExporterOptions) wordExporter {
			return export.NewExporter(options)
		},
	}
}

// SetOutput redirects the report, mostly for tests
func (p *Processor) SetOutput(w io.Writer) {
	p.out = w
}

// Run performs the action selected by the flags
func (p *Processor) Run() error {
	switch {
	case p.flags.Check != "":
		return p.CheckWord(p.flags.Check)
	case p.flags.Random != 0:
		return p.PrintRandom(p.flags.Random)
	default:
		return p.Export()
	}
}

// LoadCollection returns the input file's words when one is configured,
// otherwise the built-in collection
func (p *Processor) LoadCollection() (*wordlist.Collection, error) {
	if p.flags.InputFile == "" {
		return wordlist.Default(), nil
	}

	words, err := source.ReadWordFile(p.flags.InputFile)
	if err != nil {
		return nil, err
	}
	return wordlist.NewCollection(words...), nil
}

// Export writes the collection to the output file and prints the summary.
// With archiving on, a failed write puts the previous export back.
func (p *Processor) Export() error {
	format, err := export.ParseFormat(p.flags.Format)
	if err != nil {
		return err
	}

	collection, err := p.LoadCollection()
	if err != nil {
		return err
	}

	var archivePath string
	if p.flags.Archive {
		archivePath, err = archive.ArchiveExport(p.flags.OutputPath)
		if err != nil {
			return err
		}
	}

	exporter := p.newExporter(&export.ExporterOptions{
		OutputPath:     p.flags.OutputPath,
		Format:         format,
		IncludeHeaders: true,
	})

	count, err := exporter.ExportCollection(collection)
	if err != nil {
		if archivePath != "" {
			if rerr := archive.RestoreExport(archivePath, p.flags.OutputPath); rerr != nil {
				return fmt.Errorf("%w (previous export left at %s: %v)", err, archivePath, rerr)
			}
		}
		return err
	}

	if archivePath != "" {
		fmt.Fprintf(p.out, "Previous export archived to: %s\n", archivePath)
	}

	words := exporter.Words()
	fmt.Fprintf(p.out, "Exported %d unique common %d-letter words to %s\n",
		count, wordlist.WordLength, exporter.OutputPath())
	fmt.Fprintf(p.out, "First %d: %s\n", previewSize, strings.Join(firstWords(words, previewSize), ", "))
	fmt.Fprintf(p.out, "Last %d: %s\n", previewSize, strings.Join(lastWords(words, previewSize), ", "))

	return nil
}

// firstWords returns up to n words from the start of words
func firstWords(words []string, n int) []string {
	if n > len(words) {
		n = len(words)
	}
	return words[:n]
}

// lastWords returns up to n words from the end of words
func lastWords(words []string, n int) []string {
	if n > len(words) {
		n = len(words)
	}
	return words[len(words)-n:]
}

// CheckWord validates a guess and reports the outcome. An invalid guess is
// returned as an error so the process exits non-zero.
func (p *Processor) CheckWord(word string) error {
	collection, err := p.LoadCollection()
	if err != nil {
		return err
	}

	result := collection.Validate(word)
	if !result.Valid {
		return fmt.Errorf("invalid word '%s': %s", word, result.Error)
	}

	fmt.Fprintf(p.out, "'%s' is in the word list\n", result.Word)
	return nil
}

// PrintRandom prints count random words, one per line
func (p *Processor) PrintRandom(count int) error {
	collection, err := p.LoadCollection()
	if err != nil {
		return err
	}

	seed := p.flags.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	words, err := collection.Random(count, rand.New(rand.NewSource(seed)))
	if err != nil {
		return err
	}

	for _, word := range words {
		fmt.Fprintln(p.out, word)
	}
	return nil
}
