package pipeline

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/connections/pkg/core/render"
	"github.com/matzehuels/connections/pkg/core/sheet"
	"github.com/matzehuels/connections/pkg/errors"
	connio "github.com/matzehuels/connections/pkg/io"
	"github.com/matzehuels/connections/pkg/observability"
	"github.com/matzehuels/connections/pkg/source/local/puzzles"
	"github.com/matzehuels/connections/pkg/surface"
)

// Runner executes runs.
//
// The Runner holds no run state; one Runner may execute several runs one
// after another.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. If logger is nil, log.Default() is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute renders the index document and one document per puzzle folder.
func (r *Runner) Execute(ctx context.Context, opts Options) (result *Result, err error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	start := time.Now()
	runID := uuid.NewString()
	logger := r.logger(opts).With("run", runID)

	sh, err := sheet.New(opts.Config)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}

	hooks := observability.Pipeline()
	hooks.OnRunStart(ctx, sh.Config().Seed, sh.NumPairs())
	result = &Result{Sheet: sh, RunID: runID}
	defer func() {
		result.Stats.Duration = time.Since(start)
		hooks.OnRunComplete(ctx, result.Stats.Documents, result.Stats.Duration, err)
	}()

	logger.Info("Starting run", "seed", sh.Config().Seed, "pairs", sh.NumPairs(), "formats", opts.Formats)
	logLayout(logger, sh)

	d := &documents{opts: opts, sheet: sh, logger: logger, result: result}

	list, err := puzzles.List(opts.PuzzlesDir)
	if err != nil {
		return result, fmt.Errorf("puzzles: %w", err)
	}
	if err := checkNames(list); err != nil {
		return result, fmt.Errorf("puzzles: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return result, fmt.Errorf("cancelled before index: %w", err)
	}
	if err := d.index(ctx); err != nil {
		return result, fmt.Errorf("index: %w", err)
	}

	for _, p := range list {
		if err := ctx.Err(); err != nil {
			return result, fmt.Errorf("cancelled before %s: %w", p.Name, err)
		}
		if err := d.puzzle(ctx, p); err != nil {
			return result, fmt.Errorf("puzzle %s: %w", p.Name, err)
		}
	}

	if !opts.SkipManifest {
		path, err := writeManifest(opts.OutputDir, sh, result.Documents)
		if err != nil {
			return result, fmt.Errorf("manifest: %w", err)
		}
		result.Manifest = path
		logger.Debug("Wrote manifest", "path", path)
	}

	logger.Info("Finished run",
		"documents", result.Stats.Documents,
		"files", result.Stats.Files,
		"filled", result.Stats.Filled,
		"duration", time.Since(start).Round(time.Millisecond))
	return result, nil
}

func (r *Runner) logger(opts Options) *log.Logger {
	if opts.Logger != nil {
		return opts.Logger
	}
	if r.Logger != nil {
		return r.Logger
	}
	return log.Default()
}

// checkNames rejects puzzles whose documents cannot be written or would
// replace the index document.
func checkNames(list []puzzles.Puzzle) error {
	for _, p := range list {
		if p.Name == sheet.IndexTitle {
			return errors.New(errors.ErrCodeInvalidConfig, "puzzle folder %s has the name of the index document", p.Dir)
		}
		if err := errors.ValidateDocumentName(p.Name); err != nil {
			return err
		}
	}
	return nil
}

// logLayout reports the pairing and the anchors of every pair.
func logLayout(logger *log.Logger, sh *sheet.Sheet) {
	for i, l := range sh.Links() {
		logger.Debug("Pair", "n", i, "a", l.A.Index, "b", l.B.Index, "from", l.From, "to", l.To)
	}
}

func writeManifest(dir string, sh *sheet.Sheet, docs []connio.Document) (string, error) {
	m := connio.NewManifest(sh)
	m.Documents = docs
	path := filepath.Join(dir, connio.ManifestName)
	if err := connio.ExportManifest(m, path); err != nil {
		return "", err
	}
	return path, nil
}

// memoLoader wraps load so every path is decoded once per document.
func memoLoader(load render.Loader) render.Loader {
	if load == nil {
		load = surface.LoadImage
	}
	seen := make(map[string]*surface.Image)
	return func(path string) (*surface.Image, error) {
		if img, ok := seen[path]; ok {
			return img, nil
		}
		img, err := load(path)
		if err != nil {
			return nil, err
		}
		seen[path] = img
		return img, nil
	}
}
