package grid

import (
	"fmt"

	"github.com/matzehuels/connections/pkg/errors"
)

// Columns is the fixed number of grid columns. Cell counts must be a multiple of it.
const Columns = 4

// Point is a page-space coordinate with the origin at the top-left corner
// and y growing downwards.
type Point struct {
	X float64 `toml:"x" json:"x"`
	Y float64 `toml:"y" json:"y"`
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Cell is one grid box. Index is its position in canonical (pre-shuffle)
// order and determines its row and column.
type Cell struct {
	TopLeft Point `toml:"top_left" json:"top_left"`
	Index   int   `toml:"index" json:"index"`
}

// Col returns the cell's column.
func (c Cell) Col() int { return c.Index % Columns }

// Row returns the cell's row.
func (c Cell) Row() int { return c.Index / Columns }

// Geometry holds the page constants a sheet is laid out with.
type Geometry struct {
	PageWidth  float64 // page width in points
	PageHeight float64 // page height in points
	Margin     float64 // outer margin around the grid
	BoxMargin  float64 // inner margin between a box edge and its content
}

// BoxWidth returns the width of a single box.
func (g Geometry) BoxWidth() float64 {
	return (g.PageWidth - 2*g.Margin) / Columns
}

// BoxHeight returns the height of a single box.
func (g Geometry) BoxHeight() float64 {
	return (g.PageHeight - 2*g.Margin) / Columns
}

// InnerSize returns the drawable size of a box after removing the box
// margin on every side.
func (g Geometry) InnerSize() (w, h float64) {
	return g.BoxWidth() - 2*g.BoxMargin, g.BoxHeight() - 2*g.BoxMargin
}

// Validate checks that the geometry leaves a positive interior in every box.
func (g Geometry) Validate() error {
	if g.PageWidth <= 0 || g.PageHeight <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "page size %gx%g must be positive", g.PageWidth, g.PageHeight)
	}
	if g.Margin < 0 || g.BoxMargin < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "margins must not be negative")
	}
	if w, h := g.InnerSize(); w <= 0 || h <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "box interior %gx%g is empty", w, h)
	}
	return nil
}

// Cells returns the n cells of the grid in canonical order.
// n must be a positive multiple of [Columns].
func (g Geometry) Cells(n int) ([]Cell, error) {
	if n <= 0 || n%Columns != 0 {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "cell count %d is not a positive multiple of %d", n, Columns)
	}
	bw, bh := g.BoxWidth(), g.BoxHeight()
	cells := make([]Cell, n)
	for i := range cells {
		col, row := float64(i%Columns), float64(i/Columns)
		cells[i] = Cell{
			TopLeft: Point{X: g.Margin + col*bw, Y: g.Margin + row*bh},
			Index:   i,
		}
	}
	return cells, nil
}
