// Package sheet builds the shared layout every page of a run is drawn from.
//
// A [Sheet] is computed once per run from a [Config]: the canonical grid
// cells, their seeded permutation and the pairs split from it. The index
// page and every puzzle page read the same Sheet, which is what makes the
// dot diagram on the index page the answer key for every puzzle page.
// A Sheet is immutable; its accessors return copies.
package sheet

import (
	"fmt"
	"slices"

	"github.com/matzehuels/connections/pkg/core/grid"
	"github.com/matzehuels/connections/pkg/core/pairing"
	"github.com/matzehuels/connections/pkg/core/perm"
)

// IndexTitle names the index document and prefixes its title line.
const IndexTitle = "connections"

// Config holds the fixed constants of a run.
type Config struct {
	grid.Geometry

	Cells      int     // number of grid cells; a positive multiple of 4
	Seed       uint64  // permutation seed
	DotRadius  float64 // radius of the connector dots on the index page
	FontFamily string  // title font
	FontSize   float64 // title font size in points
}

// DefaultConfig returns the constants of a standard A4 sheet.
func DefaultConfig() Config {
	return Config{
		Geometry: grid.Geometry{
			PageWidth:  595,
			PageHeight: 842,
			Margin:     60,
			BoxMargin:  10,
		},
		Cells:      16,
		Seed:       11,
		DotRadius:  5,
		FontFamily: "Consolas",
		FontSize:   10,
	}
}

// Link is a pair together with the connector anchors of both of its boxes.
type Link struct {
	pairing.Pair
	From grid.Point
	To   grid.Point
}

// Sheet is the immutable layout of one run.
type Sheet struct {
	cfg   Config
	cells []grid.Cell
	perm  []grid.Cell
	pairs []pairing.Pair
}

// New lays out cfg: it builds the grid, shuffles it with cfg.Seed and
// splits the permutation into pairs.
func New(cfg Config) (*Sheet, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cells, err := cfg.Geometry.Cells(cfg.Cells)
	if err != nil {
		return nil, err
	}
	shuffled := perm.Shuffle(cells, cfg.Seed)
	pairs, err := pairing.Split(shuffled)
	if err != nil {
		return nil, err
	}
	return &Sheet{cfg: cfg, cells: cells, perm: shuffled, pairs: pairs}, nil
}

// Config returns the constants the sheet was built from.
func (s *Sheet) Config() Config { return s.cfg }

// Geometry returns the page geometry of the sheet.
func (s *Sheet) Geometry() grid.Geometry { return s.cfg.Geometry }

// Cells returns the grid cells in canonical order.
func (s *Sheet) Cells() []grid.Cell { return slices.Clone(s.cells) }

// Permutation returns the shuffled cells.
func (s *Sheet) Permutation() []grid.Cell { return slices.Clone(s.perm) }

// Pairs returns the pairs in permutation order.
func (s *Sheet) Pairs() []pairing.Pair { return slices.Clone(s.pairs) }

// NumPairs returns len(s.Pairs()) without copying.
func (s *Sheet) NumPairs() int { return len(s.pairs) }

// Links returns every pair with the anchors of its two boxes.
func (s *Sheet) Links() []Link {
	g := s.cfg.Geometry
	links := make([]Link, len(s.pairs))
	for i, p := range s.pairs {
		links[i] = Link{Pair: p, From: g.Anchor(p.A), To: g.Anchor(p.B)}
	}
	return links
}

// Title returns the title line of a document: "<name>: seed=<seed>".
func (s *Sheet) Title(name string) string {
	return fmt.Sprintf("%s: seed=%d", name, s.cfg.Seed)
}
