package legend

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/connections/pkg/core/grid"
	"github.com/matzehuels/connections/pkg/errors"
	connio "github.com/matzehuels/connections/pkg/io"
	"github.com/matzehuels/connections/pkg/render/sink"
)

// Options configures legend rendering.
type Options struct {
	// Detailed adds the column, row and connector anchor to every box label.
	Detailed bool
}

// ToDOT converts the pairing recorded in m to Graphviz DOT.
// Boxes appear in sheet order, one rank per grid row.
func ToDOT(m *connio.Manifest, opts Options) string {
	anchors := make(map[int]grid.Point, 2*len(m.Pairs))
	for _, p := range m.Pairs {
		anchors[p.A] = p.From
		anchors[p.B] = p.To
	}

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	fmt.Fprintf(&buf, "  label=%q;\n", fmt.Sprintf("seed=%d", m.Seed))
	buf.WriteString("\n")

	rows := m.Page.Cells / grid.Columns
	for r := 0; r < rows; r++ {
		ids := make([]string, 0, grid.Columns)
		for c := 0; c < grid.Columns; c++ {
			i := r*grid.Columns + c
			fmt.Fprintf(&buf, "  %q [label=%q];\n", nodeID(i), fmtLabel(i, anchors[i], opts.Detailed))
			ids = append(ids, strconv.Quote(nodeID(i)))
		}
		fmt.Fprintf(&buf, "  { rank=same; %s; }\n", strings.Join(ids, "; "))
		// Keep columns in order within the row and rows stacked.
		fmt.Fprintf(&buf, "  %s [style=invis];\n", strings.Join(ids, " -> "))
		if r > 0 {
			fmt.Fprintf(&buf, "  %q -> %q [style=invis];\n", nodeID((r-1)*grid.Columns), nodeID(r*grid.Columns))
		}
	}

	buf.WriteString("\n")
	for _, p := range m.Pairs {
		fmt.Fprintf(&buf, "  %q -> %q [dir=none, constraint=false, color=red, penwidth=2];\n", nodeID(p.A), nodeID(p.B))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeID(i int) string { return fmt.Sprintf("box%d", i) }

func fmtLabel(i int, anchor grid.Point, detailed bool) string {
	label := strconv.Itoa(i)
	if !detailed {
		return label
	}
	return fmt.Sprintf("%s\ncol %d, row %d\nanchor %s", label, i%grid.Columns, i/grid.Columns, anchor)
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces the Graphviz root element with one whose size
// matches its viewBox.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	root := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(root))
}

// Render renders a DOT graph in format, which must be svg or pdf.
//
// PDF requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func Render(dot, format string) ([]byte, error) {
	switch format {
	case sink.FormatSVG:
		return RenderSVG(dot)
	case sink.FormatPDF:
		svg, err := RenderSVG(dot)
		if err != nil {
			return nil, err
		}
		return sink.ToPDF(svg)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "invalid legend format: %q (must be one of: svg, pdf)", format)
	}
}
