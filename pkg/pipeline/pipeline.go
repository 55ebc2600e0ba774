// Package pipeline drives a complete connections run.
//
// A run builds one [sheet.Sheet] from the fixed configuration, renders the
// index document from it, then renders one document per puzzle folder. Every
// page of the run shares the sheet, so the index page is the answer key of
// every puzzle page.
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    PuzzlesDir: "puzzles",
//	    OutputDir:  "out",
//	    Formats:    []string{"pdf"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, doc := range result.Documents {
//	    fmt.Println(doc.Name, doc.Files)
//	}
//
// The run is single-threaded. The context is checked between documents, so
// a cancelled run stops at a document boundary with the documents written so
// far left on disk.
package pipeline

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/connections/pkg/core/render"
	"github.com/matzehuels/connections/pkg/core/sheet"
	connio "github.com/matzehuels/connections/pkg/io"
	"github.com/matzehuels/connections/pkg/render/sink"
)

// Default locations.
const (
	DefaultPuzzlesDir = "puzzles"
	DefaultOutputDir  = "."
)

// Options configures a run.
type Options struct {
	PuzzlesDir string   // root holding one subfolder per puzzle
	OutputDir  string   // where documents and the manifest are written
	Formats    []string // output formats, see sink.ValidFormats

	// Config is the page configuration. The zero value selects
	// sheet.DefaultConfig.
	Config sheet.Config

	// SkipManifest disables writing connections.toml.
	SkipManifest bool

	// Runtime options
	Logger *log.Logger
	Load   render.Loader // nil loads images from disk

	validated bool
}

// ValidateAndSetDefaults fills unset options and validates the rest.
// It is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.PuzzlesDir == "" {
		o.PuzzlesDir = DefaultPuzzlesDir
	}
	if o.OutputDir == "" {
		o.OutputDir = DefaultOutputDir
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{sink.FormatPDF}
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.Config == (sheet.Config{}) {
		o.Config = sheet.DefaultConfig()
	}
	if err := o.Config.Validate(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateFormat checks that a format is supported.
func ValidateFormat(format string) error {
	return sink.ValidateFormat(format)
}

// ValidateFormats checks every format in formats.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// Result describes a finished run.
type Result struct {
	// Sheet is the layout shared by every page of the run.
	Sheet *sheet.Sheet

	// RunID identifies the run in logs.
	RunID string

	// Documents lists the written documents in render order, index first.
	Documents []connio.Document

	// Manifest is the path of the written manifest, empty if skipped.
	Manifest string

	Stats Stats
}

// Stats contains run statistics.
type Stats struct {
	Documents int // documents rendered, index included
	Files     int // files written, one per document and format
	Filled    int // pairs filled with images over all puzzle pages
	Duration  time.Duration
}

// Document returns the document named name, if it was rendered.
func (r *Result) Document(name string) (connio.Document, bool) {
	for _, d := range r.Documents {
		if d.Name == name {
			return d, true
		}
	}
	return connio.Document{}, false
}
