package surface

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"html"
	"strings"
)

// SVGCanvas draws a page as SVG. Every element is emitted in page
// coordinates; transformed images carry an explicit matrix.
type SVGCanvas struct {
	state

	fontFamily string
	fontSize   float64

	path []string
	body bytes.Buffer
}

// NewSVGCanvas creates an empty width×height page.
func NewSVGCanvas(width, height float64) *SVGCanvas {
	return &SVGCanvas{state: newState(width, height), fontFamily: "monospace", fontSize: 10}
}

func (c *SVGCanvas) SelectFont(family string, size float64) {
	if !c.usable() {
		return
	}
	c.fontFamily, c.fontSize = family, size
}

func (c *SVGCanvas) ShowText(x, y float64, text string) {
	if !c.usable() {
		return
	}
	px, py := c.ctm.Apply(x, y)
	fmt.Fprintf(&c.body, `  <text x="%.2f" y="%.2f" font-family="%s, monospace" font-size="%.2f">%s</text>`+"\n",
		px, py, html.EscapeString(c.fontFamily), c.fontSize*c.ctm.LinearScale(), html.EscapeString(text))
}

func (c *SVGCanvas) MoveTo(x, y float64) {
	if !c.usable() {
		return
	}
	px, py := c.ctm.Apply(x, y)
	c.path = append(c.path, fmt.Sprintf("M %.2f %.2f", px, py))
}

func (c *SVGCanvas) LineTo(x, y float64) {
	if !c.usable() {
		return
	}
	px, py := c.ctm.Apply(x, y)
	c.path = append(c.path, fmt.Sprintf("L %.2f %.2f", px, py))
}

func (c *SVGCanvas) Stroke() {
	if !c.usable() || len(c.path) == 0 {
		return
	}
	fmt.Fprintf(&c.body, `  <path d="%s" fill="none" stroke="black" stroke-width="%.2f"/>`+"\n",
		strings.Join(c.path, " "), c.ctm.LinearScale())
	c.path = c.path[:0]
}

func (c *SVGCanvas) FillCircle(x, y, r float64) {
	if !c.usable() {
		return
	}
	px, py := c.ctm.Apply(x, y)
	fmt.Fprintf(&c.body, `  <circle cx="%.2f" cy="%.2f" r="%.2f" fill="black"/>`+"\n",
		px, py, r*c.ctm.LinearScale())
}

func (c *SVGCanvas) Save()                    { c.save() }
func (c *SVGCanvas) Restore()                 { c.restore() }
func (c *SVGCanvas) Translate(dx, dy float64) { c.translate(dx, dy) }
func (c *SVGCanvas) Scale(sx, sy float64)     { c.scale(sx, sy) }

func (c *SVGCanvas) DrawImage(img *Image) {
	if !c.usable() {
		return
	}
	m := c.ctm
	fmt.Fprintf(&c.body,
		`  <image width="%d" height="%d" preserveAspectRatio="none" transform="matrix(%g %g %g %g %g %g)" xlink:href="data:%s;base64,%s"/>`+"\n",
		img.Width(), img.Height(), m[0], m[1], m[2], m[3], m[4], m[5],
		img.MIMEType(), base64.StdEncoding.EncodeToString(img.Data))
}

// Finish returns the complete SVG document.
func (c *SVGCanvas) Finish() ([]byte, error) {
	if err := c.finish(); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		c.width, c.height, c.width, c.height)
	fmt.Fprintf(&buf, `  <rect width="%.1f" height="%.1f" fill="white"/>`+"\n", c.width, c.height)
	buf.Write(c.body.Bytes())
	buf.WriteString("</svg>\n")
	c.body.Reset()
	return buf.Bytes(), nil
}

var _ Surface = (*SVGCanvas)(nil)
