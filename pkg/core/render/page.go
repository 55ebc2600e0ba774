// Package render draws the pages of a connections run.
//
// Both page kinds are drawn from the same [sheet.Sheet]. The index page shows
// the pairing as dots joined by lines; a puzzle page places the images of
// each pair into the pair's two boxes. Because the sheet is shared, the
// index page is the answer key of every puzzle page.
//
// Renderers draw onto a [surface.Surface] and leave finalization to the
// caller.
package render

import (
	"fmt"

	"github.com/matzehuels/connections/pkg/core/fit"
	"github.com/matzehuels/connections/pkg/core/grid"
	"github.com/matzehuels/connections/pkg/core/pairing"
	"github.com/matzehuels/connections/pkg/core/sheet"
	"github.com/matzehuels/connections/pkg/source/local/puzzles"
	"github.com/matzehuels/connections/pkg/surface"
)

// Loader loads the image at path.
type Loader func(path string) (*surface.Image, error)

// title writes the document title at the top-left text anchor.
func title(s surface.Surface, sh *sheet.Sheet, name string) {
	cfg := sh.Config()
	s.SelectFont(cfg.FontFamily, cfg.FontSize)
	s.ShowText(cfg.Margin/2, cfg.Margin/2, sh.Title(name))
}

// Index draws the index page: the title with the seed, one dot per box at
// its anchor and a line joining the two dots of every pair.
func Index(s surface.Surface, sh *sheet.Sheet) error {
	title(s, sh, sheet.IndexTitle)

	r := sh.Config().DotRadius
	for i, l := range sh.Links() {
		if err := dot(s, l.From, r); err != nil {
			return fmt.Errorf("pair %d: %w", i, err)
		}
		if err := dot(s, l.To, r); err != nil {
			return fmt.Errorf("pair %d: %w", i, err)
		}
		s.MoveTo(l.From.X, l.From.Y)
		s.LineTo(l.To.X, l.To.Y)
		s.Stroke()
	}
	return s.Err()
}

// dot fills a circle of radius r centred on at.
func dot(s surface.Surface, at grid.Point, r float64) error {
	return surface.Scoped(s, func() error {
		s.Translate(at.X, at.Y)
		s.FillCircle(0, 0, r)
		return s.Err()
	})
}

// Puzzle draws the page of puzzle name: the title and, for every pair that
// has an image pair at the same position, both images fitted into their
// boxes. Pairs beyond len(images) stay empty and surplus images are
// ignored. It returns the number of pairs filled.
func Puzzle(s surface.Surface, sh *sheet.Sheet, name string, images []puzzles.ImagePair, load Loader) (int, error) {
	if load == nil {
		load = surface.LoadImage
	}
	title(s, sh, name)

	pairs := sh.Pairs()
	n := pairing.Zip(pairs, len(images))
	for i, p := range pairs[:n] {
		if err := place(s, sh.Geometry(), p.A, images[i].First, load); err != nil {
			return i, fmt.Errorf("pair %d: %w", i, err)
		}
		if err := place(s, sh.Geometry(), p.B, images[i].Second, load); err != nil {
			return i, fmt.Errorf("pair %d: %w", i, err)
		}
	}
	return n, s.Err()
}

// place draws the image at path into the interior of cell c.
func place(s surface.Surface, g grid.Geometry, c grid.Cell, path string, load Loader) error {
	img, err := load(path)
	if err != nil {
		return err
	}
	pl, err := fit.Place(g, c, img.Width(), img.Height())
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return surface.Scoped(s, func() error {
		s.Translate(pl.Origin.X, pl.Origin.Y)
		s.Scale(pl.Scale, pl.Scale)
		s.DrawImage(img)
		return nil
	})
}
