package surface

import (
	"bytes"
	"fmt"
)

// Op is one recorded drawing operation. Points are stored in page
// coordinates, after the transformation that was current at the call.
type Op struct {
	Kind   string    // "font", "text", "move", "line", "stroke", "circle", "image"
	Args   []float64 // page-space coordinates; for "circle" the last value is the radius
	Text   string    // text, font family or image path
	Matrix Matrix    // transformation at the time of the call
	Depth  int       // number of open Save scopes
}

func (op Op) String() string {
	return fmt.Sprintf("%s %q %v depth=%d", op.Kind, op.Text, op.Args, op.Depth)
}

// Recorder is a surface that records operations instead of drawing them.
// Finish returns one line per operation.
type Recorder struct {
	state
	Ops []Op
}

// NewRecorder creates an empty recording page.
func NewRecorder(width, height float64) *Recorder {
	return &Recorder{state: newState(width, height)}
}

func (r *Recorder) record(kind, text string, args ...float64) {
	r.Ops = append(r.Ops, Op{Kind: kind, Args: args, Text: text, Matrix: r.ctm, Depth: len(r.stack)})
}

func (r *Recorder) SelectFont(family string, size float64) {
	if r.usable() {
		r.record("font", family, size)
	}
}

func (r *Recorder) ShowText(x, y float64, text string) {
	if r.usable() {
		px, py := r.ctm.Apply(x, y)
		r.record("text", text, px, py)
	}
}

func (r *Recorder) MoveTo(x, y float64) {
	if r.usable() {
		px, py := r.ctm.Apply(x, y)
		r.record("move", "", px, py)
	}
}

func (r *Recorder) LineTo(x, y float64) {
	if r.usable() {
		px, py := r.ctm.Apply(x, y)
		r.record("line", "", px, py)
	}
}

func (r *Recorder) Stroke() {
	if r.usable() {
		r.record("stroke", "")
	}
}

func (r *Recorder) FillCircle(x, y, radius float64) {
	if r.usable() {
		px, py := r.ctm.Apply(x, y)
		r.record("circle", "", px, py, radius*r.ctm.LinearScale())
	}
}

func (r *Recorder) Save()                    { r.save() }
func (r *Recorder) Restore()                 { r.restore() }
func (r *Recorder) Translate(dx, dy float64) { r.translate(dx, dy) }
func (r *Recorder) Scale(sx, sy float64)     { r.scale(sx, sy) }

func (r *Recorder) DrawImage(img *Image) {
	if r.usable() {
		w, h := float64(img.Width()), float64(img.Height())
		x0, y0 := r.ctm.Apply(0, 0)
		x1, y1 := r.ctm.Apply(w, h)
		r.record("image", img.Path, x0, y0, x1, y1)
	}
}

// Finish returns the operation log.
func (r *Recorder) Finish() ([]byte, error) {
	if err := r.finish(); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	for _, op := range r.Ops {
		buf.WriteString(op.String())
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}

// Count returns the number of recorded operations of the given kind.
func (r *Recorder) Count(kind string) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

var _ Surface = (*Recorder)(nil)
