package render

import (
	"fmt"
	"image"
	"math"
	"strings"
	"testing"

	"github.com/matzehuels/connections/pkg/core/sheet"
	"github.com/matzehuels/connections/pkg/errors"
	"github.com/matzehuels/connections/pkg/source/local/puzzles"
	"github.com/matzehuels/connections/pkg/surface"
)

func newSheet(t *testing.T) *sheet.Sheet {
	t.Helper()
	sh, err := sheet.New(sheet.DefaultConfig())
	if err != nil {
		t.Fatalf("sheet.New() error: %v", err)
	}
	return sh
}

// fakeLoader serves blank images of size w×h for every path.
func fakeLoader(w, h int) Loader {
	return func(path string) (*surface.Image, error) {
		return &surface.Image{Path: path, Format: "png", Decoded: image.NewRGBA(image.Rect(0, 0, w, h))}, nil
	}
}

func imagePairs(n int) []puzzles.ImagePair {
	out := make([]puzzles.ImagePair, n)
	for i := range out {
		out[i] = puzzles.ImagePair{First: fmt.Sprintf("p%d_fst.png", i), Second: fmt.Sprintf("p%d_snd.png", i)}
	}
	return out
}

func TestIndex(t *testing.T) {
	sh := newSheet(t)
	rec := surface.NewRecorder(595, 842)

	if err := Index(rec, sh); err != nil {
		t.Fatalf("Index() error: %v", err)
	}

	if got := rec.Ops[1]; got.Kind != "text" || got.Text != "connections: seed=11" || got.Args[0] != 30 || got.Args[1] != 30 {
		t.Errorf("title op = %v", got)
	}
	if got := rec.Count("circle"); got != 16 {
		t.Errorf("circles = %d, want 16", got)
	}
	if got := rec.Count("stroke"); got != 8 {
		t.Errorf("strokes = %d, want 8", got)
	}

	// Every circle sits on an anchor, and every line joins the anchors of a link.
	links := sh.Links()
	var circles, lines [][]float64
	for _, op := range rec.Ops {
		switch op.Kind {
		case "circle":
			circles = append(circles, op.Args)
			if op.Depth != 1 {
				t.Errorf("circle drawn outside its own scope: depth %d", op.Depth)
			}
		case "move", "line":
			lines = append(lines, op.Args)
		}
	}
	for i, l := range links {
		from, to := circles[2*i], circles[2*i+1]
		if from[0] != l.From.X || from[1] != l.From.Y || to[0] != l.To.X || to[1] != l.To.Y {
			t.Errorf("link %d: dots at %v %v, want %v %v", i, from, to, l.From, l.To)
		}
		if from[2] != 5 {
			t.Errorf("link %d: radius %v, want 5", i, from[2])
		}
		if lines[2*i][0] != l.From.X || lines[2*i+1][1] != l.To.Y {
			t.Errorf("link %d: line %v -> %v", i, lines[2*i], lines[2*i+1])
		}
	}

	if _, err := rec.Finish(); err != nil {
		t.Errorf("Finish() error: %v", err)
	}
}

func TestIndexOnFinishedPage(t *testing.T) {
	sh := newSheet(t)
	rec := surface.NewRecorder(595, 842)
	if _, err := rec.Finish(); err != nil {
		t.Fatal(err)
	}

	err := Index(rec, sh)
	if !errors.Is(err, errors.ErrCodeRender) {
		t.Fatalf("Index() error = %v, want RENDER_FAILED", err)
	}
	if !strings.HasPrefix(err.Error(), "pair 0: ") {
		t.Errorf("Index() did not stop at the first dot: %v", err)
	}
	if got := rec.Count("circle"); got != 0 {
		t.Errorf("circles = %d on a finished page, want 0", got)
	}
}

func TestPuzzlePlacesImages(t *testing.T) {
	sh := newSheet(t)
	rec := surface.NewRecorder(595, 842)

	n, err := Puzzle(rec, sh, "animals", imagePairs(8), fakeLoader(200, 100))
	if err != nil {
		t.Fatalf("Puzzle() error: %v", err)
	}
	if n != 8 {
		t.Errorf("Puzzle() filled %d pairs, want 8", n)
	}
	if got := rec.Ops[1].Text; got != "animals: seed=11" {
		t.Errorf("title = %q", got)
	}

	g := sh.Geometry()
	innerW, innerH := g.InnerSize()
	scale := math.Min(innerW/200, innerH/100)
	pairs := sh.Pairs()

	var images []surface.Op
	for _, op := range rec.Ops {
		if op.Kind == "image" {
			images = append(images, op)
		}
	}
	if len(images) != 16 {
		t.Fatalf("images = %d, want 16", len(images))
	}
	for i, p := range pairs {
		for j, c := range []struct {
			op   surface.Op
			want string
		}{{images[2*i], fmt.Sprintf("p%d_fst.png", i)}, {images[2*i+1], fmt.Sprintf("p%d_snd.png", i)}} {
			cell := p.A
			if j == 1 {
				cell = p.B
			}
			in := g.Interior(cell)
			if c.op.Text != c.want {
				t.Errorf("pair %d image %d = %s, want %s", i, j, c.op.Text, c.want)
			}
			if math.Abs(c.op.Args[0]-in.X) > 1e-9 || math.Abs(c.op.Args[1]-in.Y) > 1e-9 {
				t.Errorf("pair %d image %d at %v, want %v", i, j, c.op.Args[:2], in)
			}
			if w := c.op.Args[2] - c.op.Args[0]; math.Abs(w-200*scale) > 1e-9 {
				t.Errorf("pair %d image %d width %v, want %v", i, j, w, 200*scale)
			}
			if c.op.Depth != 1 {
				t.Errorf("image drawn at depth %d, want 1", c.op.Depth)
			}
		}
	}
}

func TestPuzzleTruncates(t *testing.T) {
	tests := []struct {
		name   string
		images int
		want   int
	}{
		{"fewer images than pairs", 4, 4},
		{"no images", 0, 0},
		{"more images than pairs", 11, 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := surface.NewRecorder(595, 842)
			n, err := Puzzle(rec, newSheet(t), "p", imagePairs(tt.images), fakeLoader(10, 10))
			if err != nil {
				t.Fatalf("Puzzle() error: %v", err)
			}
			if n != tt.want {
				t.Errorf("filled %d pairs, want %d", n, tt.want)
			}
			if got := rec.Count("image"); got != 2*tt.want {
				t.Errorf("images = %d, want %d", got, 2*tt.want)
			}
		})
	}
}

func TestPuzzleImageErrors(t *testing.T) {
	t.Run("load failure", func(t *testing.T) {
		rec := surface.NewRecorder(595, 842)
		load := func(path string) (*surface.Image, error) {
			if strings.HasPrefix(path, "p2_snd") {
				return nil, errors.New(errors.ErrCodeImageLoad, "read %s", path)
			}
			return fakeLoader(10, 10)(path)
		}
		n, err := Puzzle(rec, newSheet(t), "p", imagePairs(4), load)
		if !errors.Is(err, errors.ErrCodeImageLoad) {
			t.Fatalf("Puzzle() error = %v, want IMAGE_LOAD", err)
		}
		if n != 2 {
			t.Errorf("filled %d pairs before failing, want 2", n)
		}
		if _, err := rec.Finish(); err != nil {
			t.Errorf("transform state leaked: %v", err)
		}
	})

	t.Run("degenerate image", func(t *testing.T) {
		rec := surface.NewRecorder(595, 842)
		_, err := Puzzle(rec, newSheet(t), "p", imagePairs(1), fakeLoader(0, 10))
		if !errors.Is(err, errors.ErrCodeDegenerateGeometry) {
			t.Fatalf("Puzzle() error = %v, want DEGENERATE_GEOMETRY", err)
		}
		if rec.Count("image") != 0 {
			t.Error("degenerate image was drawn")
		}
	})
}
