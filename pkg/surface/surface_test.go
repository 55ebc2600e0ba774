package surface

import (
	"bytes"
	stderrors "errors"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/connections/pkg/errors"
)

func writePNG(t *testing.T, dir, name string, w, h int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := range w {
		img.Set(x, h/2, color.RGBA{200, 0, 0, 255})
	}
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestMatrix(t *testing.T) {
	m := Identity.Translate(10, 20).Scale(0.5, 0.5)
	x, y := m.Apply(100, 40)
	if x != 60 || y != 40 {
		t.Errorf("Apply() = %v, %v, want 60, 40", x, y)
	}
	if got := m.LinearScale(); math.Abs(got-0.5) > 1e-12 {
		t.Errorf("LinearScale() = %v, want 0.5", got)
	}
}

func TestScopedRestoresOnError(t *testing.T) {
	r := NewRecorder(100, 100)
	boom := stderrors.New("boom")

	err := Scoped(r, func() error {
		r.Translate(10, 10)
		r.Scale(2, 2)
		return boom
	})
	if err != boom {
		t.Fatalf("Scoped() = %v, want boom", err)
	}

	r.MoveTo(1, 1)
	last := r.Ops[len(r.Ops)-1]
	if last.Depth != 0 || last.Matrix != Identity {
		t.Errorf("transform leaked after failed scope: %v, matrix %v", last, last.Matrix)
	}
	if got := last.Args; got[0] != 1 || got[1] != 1 {
		t.Errorf("MoveTo after scope recorded at %v, want [1 1]", got)
	}
}

func TestRestoreWithoutSave(t *testing.T) {
	r := NewRecorder(100, 100)
	r.Restore()
	if !errors.Is(r.Err(), errors.ErrCodeRender) {
		t.Errorf("Err() = %v, want RENDER_FAILED", r.Err())
	}
	if _, err := r.Finish(); err == nil {
		t.Error("Finish() succeeded after a drawing error")
	}
}

func TestFinishWithOpenScope(t *testing.T) {
	r := NewRecorder(100, 100)
	r.Save()
	if _, err := r.Finish(); !errors.Is(err, errors.ErrCodeRender) {
		t.Errorf("Finish() = %v, want RENDER_FAILED", err)
	}
}

func TestDrawingAfterFinish(t *testing.T) {
	surfaces := map[string]Surface{
		"recorder": NewRecorder(100, 100),
		"svg":      NewSVGCanvas(100, 100),
		"raster":   NewRasterCanvas(100, 100, 1),
	}
	for name, s := range surfaces {
		t.Run(name, func(t *testing.T) {
			if _, err := s.Finish(); err != nil {
				t.Fatalf("Finish() error: %v", err)
			}
			s.FillCircle(10, 10, 5)
			if s.Err() != ErrPageFinalized {
				t.Errorf("Err() = %v, want ErrPageFinalized", s.Err())
			}
			if _, err := s.Finish(); err != ErrPageFinalized {
				t.Errorf("second Finish() = %v, want ErrPageFinalized", err)
			}
		})
	}
}

func TestLoadImage(t *testing.T) {
	dir := t.TempDir()
	path := writePNG(t, dir, "a_fst.png", 40, 30)

	img, err := LoadImage(path)
	if err != nil {
		t.Fatalf("LoadImage() error: %v", err)
	}
	if img.Width() != 40 || img.Height() != 30 {
		t.Errorf("size = %dx%d, want 40x30", img.Width(), img.Height())
	}
	if img.MIMEType() != "image/png" {
		t.Errorf("MIMEType() = %q", img.MIMEType())
	}
}

func TestLoadImageErrors(t *testing.T) {
	dir := t.TempDir()
	garbage := filepath.Join(dir, "bad_fst.png")
	if err := os.WriteFile(garbage, []byte("not an image"), 0o644); err != nil {
		t.Fatal(err)
	}

	for _, path := range []string{filepath.Join(dir, "missing_snd.png"), garbage} {
		if _, err := LoadImage(path); !errors.Is(err, errors.ErrCodeImageLoad) {
			t.Errorf("LoadImage(%s) = %v, want IMAGE_LOAD", filepath.Base(path), err)
		}
	}
}

func TestSVGCanvas(t *testing.T) {
	dir := t.TempDir()
	img, err := LoadImage(writePNG(t, dir, "a_fst.png", 20, 10))
	if err != nil {
		t.Fatal(err)
	}

	c := NewSVGCanvas(595, 842)
	c.SelectFont("Consolas", 10)
	c.ShowText(30, 30, "a <b> & c")
	c.MoveTo(10, 10)
	c.LineTo(20, 20)
	c.Stroke()
	c.FillCircle(50, 60, 5)
	_ = Scoped(c, func() error {
		c.Translate(100, 200)
		c.Scale(0.5, 0.5)
		c.DrawImage(img)
		return nil
	})

	out, err := c.Finish()
	if err != nil {
		t.Fatalf("Finish() error: %v", err)
	}
	svg := string(out)
	for _, want := range []string{
		`viewBox="0 0 595.0 842.0"`,
		`font-family="Consolas, monospace"`,
		`a &lt;b&gt; &amp; c`,
		`d="M 10.00 10.00 L 20.00 20.00"`,
		`<circle cx="50.00" cy="60.00" r="5.00"`,
		`transform="matrix(0.5 0 0 0.5 100 200)"`,
		`xlink:href="data:image/png;base64,`,
	} {
		if !strings.Contains(svg, want) {
			t.Errorf("SVG missing %q", want)
		}
	}
}

func TestRasterCanvas(t *testing.T) {
	c := NewRasterCanvas(100, 50, 2)
	c.FillCircle(50, 25, 5)
	out, err := c.Finish()
	if err != nil {
		t.Fatalf("Finish() error: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 200 || b.Dy() != 100 {
		t.Errorf("bounds = %v, want 200x100", b)
	}
	// The dot centre is black, a corner stays white.
	if r, _, _, _ := img.At(100, 50).RGBA(); r > 0x1000 {
		t.Errorf("dot centre not filled: r=%#x", r)
	}
	if r, _, _, _ := img.At(1, 1).RGBA(); r < 0xf000 {
		t.Errorf("background not white: r=%#x", r)
	}
}

// inkHeight returns the number of pixel rows holding any dark pixel.
func inkHeight(t *testing.T, data []byte) int {
	t.Helper()
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode output: %v", err)
	}
	rows := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if r, _, _, _ := img.At(x, y).RGBA(); r < 0x8000 {
				rows++
				break
			}
		}
	}
	return rows
}

func TestRasterCanvasFontSize(t *testing.T) {
	render := func(size float64) []byte {
		c := NewRasterCanvas(200, 100, 1)
		c.SelectFont("Consolas", size)
		c.ShowText(10, 80, "HIJ")
		out, err := c.Finish()
		if err != nil {
			t.Fatalf("Finish() error: %v", err)
		}
		return out
	}

	small, large := inkHeight(t, render(10)), inkHeight(t, render(40))
	if small == 0 {
		t.Fatal("no text drawn at size 10")
	}
	if large < 3*small {
		t.Errorf("text at size 40 spans %d rows, size 10 spans %d; want about 4x", large, small)
	}
}
