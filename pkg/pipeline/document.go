package pipeline

import (
	"context"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/connections/pkg/core/render"
	"github.com/matzehuels/connections/pkg/core/sheet"
	connio "github.com/matzehuels/connections/pkg/io"
	"github.com/matzehuels/connections/pkg/observability"
	"github.com/matzehuels/connections/pkg/render/sink"
	"github.com/matzehuels/connections/pkg/source/local/puzzles"
	"github.com/matzehuels/connections/pkg/surface"
)

// documents renders and writes the documents of one run.
type documents struct {
	opts   Options
	sheet  *sheet.Sheet
	logger *log.Logger
	result *Result
}

// drawFunc draws one page and reports the number of filled pairs.
type drawFunc func(s surface.Surface) (int, error)

func (d *documents) index(ctx context.Context) error {
	return d.write(ctx, sheet.IndexTitle, connio.KindIndex, 0, func(s surface.Surface) (int, error) {
		return 0, render.Index(s, d.sheet)
	})
}

func (d *documents) puzzle(ctx context.Context, p puzzles.Puzzle) error {
	d.logger.Info("Loading puzzle", "name", p.Name)

	images, err := puzzles.ImagePairs(p.Dir)
	if err != nil {
		return err
	}
	if n, want := len(images), d.sheet.NumPairs(); n != want {
		d.logger.Debug("Image pairs do not match sheet pairs", "puzzle", p.Name, "images", n, "pairs", want)
	}

	load := memoLoader(d.opts.Load)
	return d.write(ctx, p.Name, connio.KindPuzzle, len(images), func(s surface.Surface) (int, error) {
		return render.Puzzle(s, d.sheet, p.Name, images, load)
	})
}

// write draws the document once per format and writes each result.
func (d *documents) write(ctx context.Context, name, kind string, imagePairs int, draw drawFunc) (err error) {
	hooks := observability.Pipeline()
	hooks.OnPageStart(ctx, name)
	start := time.Now()
	filled := 0
	defer func() {
		hooks.OnPageComplete(ctx, name, filled, time.Since(start), err)
	}()

	doc := connio.Document{Name: name, Kind: kind, ImagePairs: imagePairs}
	cfg := d.sheet.Config()
	for _, format := range d.opts.Formats {
		page, err := sink.NewPage(format, cfg.PageWidth, cfg.PageHeight)
		if err != nil {
			return err
		}
		if filled, err = draw(page); err != nil {
			return err
		}
		data, err := page.Finish()
		if err != nil {
			return err
		}
		path, err := sink.WriteDocument(d.opts.OutputDir, name, format, data)
		if err != nil {
			return err
		}
		doc.Files = append(doc.Files, filepath.Base(path))
		d.result.Stats.Files++
		d.logger.Debug("Wrote document", "path", path, "bytes", len(data))
	}
	doc.Filled = filled

	d.result.Documents = append(d.result.Documents, doc)
	d.result.Stats.Documents++
	d.result.Stats.Filled += filled
	return nil
}
