package surface

import (
	"bytes"
	"image/png"
	"math"
	"sync"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/matzehuels/connections/pkg/errors"
)

// DefaultRasterScale renders pages at twice their point size.
const DefaultRasterScale = 2.0

// RasterCanvas draws a page into an RGBA image with fogleman/gg and encodes
// it as PNG. Text is set in Go Mono at the selected size; the family is
// ignored since no system fonts are loaded.
type RasterCanvas struct {
	state
	dc *gg.Context
}

// NewRasterCanvas creates a white width×height page rendered at scale
// pixels per point.
func NewRasterCanvas(width, height, scale float64) *RasterCanvas {
	if scale <= 0 {
		scale = DefaultRasterScale
	}
	dc := gg.NewContext(int(math.Ceil(width*scale)), int(math.Ceil(height*scale)))
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	dc.Scale(scale, scale)
	dc.SetRGB(0, 0, 0)
	dc.SetLineWidth(1)
	return &RasterCanvas{state: newState(width, height), dc: dc}
}

// monoFont is parsed once and shared by every raster page.
var monoFont = sync.OnceValues(func() (*truetype.Font, error) {
	return truetype.Parse(gomono.TTF)
})

func (c *RasterCanvas) SelectFont(family string, size float64) {
	if !c.usable() {
		return
	}
	f, err := monoFont()
	if err != nil {
		c.setErr(errors.Wrap(errors.ErrCodeRender, err, "load font"))
		return
	}
	c.dc.SetFontFace(truetype.NewFace(f, &truetype.Options{Size: size}))
}

func (c *RasterCanvas) ShowText(x, y float64, text string) {
	if c.usable() {
		c.dc.DrawString(text, x, y)
	}
}

func (c *RasterCanvas) MoveTo(x, y float64) {
	if c.usable() {
		c.dc.MoveTo(x, y)
	}
}

func (c *RasterCanvas) LineTo(x, y float64) {
	if c.usable() {
		c.dc.LineTo(x, y)
	}
}

func (c *RasterCanvas) Stroke() {
	if c.usable() {
		c.dc.Stroke()
	}
}

func (c *RasterCanvas) FillCircle(x, y, r float64) {
	if c.usable() {
		c.dc.DrawCircle(x, y, r)
		c.dc.Fill()
	}
}

func (c *RasterCanvas) Save() {
	if c.save() {
		c.dc.Push()
	}
}

func (c *RasterCanvas) Restore() {
	if c.restore() {
		c.dc.Pop()
	}
}

func (c *RasterCanvas) Translate(dx, dy float64) {
	if c.translate(dx, dy) {
		c.dc.Translate(dx, dy)
	}
}

func (c *RasterCanvas) Scale(sx, sy float64) {
	if c.scale(sx, sy) {
		c.dc.Scale(sx, sy)
	}
}

func (c *RasterCanvas) DrawImage(img *Image) {
	if c.usable() {
		c.dc.DrawImage(img.Decoded, 0, 0)
	}
}

// Finish returns the page encoded as PNG.
func (c *RasterCanvas) Finish() ([]byte, error) {
	if err := c.finish(); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, c.dc.Image()); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRender, err, "encode png")
	}
	c.dc = nil
	return buf.Bytes(), nil
}

var _ Surface = (*RasterCanvas)(nil)
