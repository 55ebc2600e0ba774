package surface

import (
	"github.com/matzehuels/connections/pkg/errors"
)

// Surface is one drawable page.
type Surface interface {
	// SelectFont sets the font used by ShowText.
	SelectFont(family string, size float64)
	// ShowText draws text with its baseline starting at (x, y).
	ShowText(x, y float64, text string)

	MoveTo(x, y float64)
	LineTo(x, y float64)
	// Stroke draws the current path and clears it.
	Stroke()
	// FillCircle fills a circle centred at (x, y).
	FillCircle(x, y, r float64)

	// Save pushes the transformation state; Restore pops it.
	Save()
	Restore()
	Translate(dx, dy float64)
	Scale(sx, sy float64)

	// DrawImage places img with its top-left corner at the current origin,
	// one unit per pixel.
	DrawImage(img *Image)

	// Finish commits the page and returns the encoded document.
	// No drawing is possible afterwards.
	Finish() ([]byte, error)

	// Err returns the first drawing error, if any.
	Err() error
}

// ErrPageFinalized is recorded when a finished page is drawn on.
var ErrPageFinalized = errors.New(errors.ErrCodeRender, "page already finalized")

// Scoped runs fn between s.Save and s.Restore. The restore happens even
// when fn fails or panics.
func Scoped(s Surface, fn func() error) error {
	s.Save()
	defer s.Restore()
	return fn()
}

// state is the bookkeeping shared by all surfaces: the current
// transformation matrix, its save stack and the sticky error.
type state struct {
	width, height float64

	ctm      Matrix
	stack    []Matrix
	finished bool
	err      error
}

func newState(width, height float64) state {
	return state{width: width, height: height, ctm: Identity}
}

func (st *state) setErr(err error) {
	if st.err == nil {
		st.err = err
	}
}

// usable reports whether drawing may proceed.
func (st *state) usable() bool {
	if st.finished {
		st.setErr(ErrPageFinalized)
		return false
	}
	return st.err == nil
}

func (st *state) save() bool {
	if !st.usable() {
		return false
	}
	st.stack = append(st.stack, st.ctm)
	return true
}

func (st *state) restore() bool {
	if !st.usable() {
		return false
	}
	if len(st.stack) == 0 {
		st.setErr(errors.New(errors.ErrCodeRender, "restore without matching save"))
		return false
	}
	st.ctm = st.stack[len(st.stack)-1]
	st.stack = st.stack[:len(st.stack)-1]
	return true
}

func (st *state) translate(dx, dy float64) bool {
	if !st.usable() {
		return false
	}
	st.ctm = st.ctm.Translate(dx, dy)
	return true
}

func (st *state) scale(sx, sy float64) bool {
	if !st.usable() {
		return false
	}
	st.ctm = st.ctm.Scale(sx, sy)
	return true
}

// finish marks the page as committed. It fails if drawing went wrong or
// transform scopes are still open.
func (st *state) finish() error {
	if st.finished {
		return ErrPageFinalized
	}
	if st.err != nil {
		return st.err
	}
	if n := len(st.stack); n != 0 {
		return errors.New(errors.ErrCodeRender, "%d transform scopes still open", n)
	}
	st.finished = true
	return nil
}

// Err returns the first drawing error, if any.
func (st *state) Err() error { return st.err }
