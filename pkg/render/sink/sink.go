package sink

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/connections/pkg/errors"
	"github.com/matzehuels/connections/pkg/surface"
)

// Output formats.
const (
	FormatPDF = "pdf"
	FormatSVG = "svg"
	FormatPNG = "png"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatPDF: true,
	FormatSVG: true,
	FormatPNG: true,
}

// ValidateFormat checks that a format is supported.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: pdf, svg, png)", format)
	}
	return nil
}

// ParseFormats splits a comma-separated format list, defaulting to pdf.
func ParseFormats(s string) ([]string, error) {
	if strings.TrimSpace(s) == "" {
		return []string{FormatPDF}, nil
	}
	var formats []string
	seen := make(map[string]bool)
	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		if err := ValidateFormat(f); err != nil {
			return nil, err
		}
		if !seen[f] {
			seen[f] = true
			formats = append(formats, f)
		}
	}
	return formats, nil
}

// NewPage returns a blank page whose Finish produces a document in format.
func NewPage(format string, width, height float64) (surface.Surface, error) {
	switch format {
	case FormatSVG:
		return surface.NewSVGCanvas(width, height), nil
	case FormatPDF:
		return &pdfPage{SVGCanvas: surface.NewSVGCanvas(width, height)}, nil
	case FormatPNG:
		return surface.NewRasterCanvas(width, height, surface.DefaultRasterScale), nil
	default:
		return nil, ValidateFormat(format)
	}
}

// pdfPage draws like an SVG page and converts the result on Finish.
type pdfPage struct {
	*surface.SVGCanvas
}

func (p *pdfPage) Finish() ([]byte, error) {
	svg, err := p.SVGCanvas.Finish()
	if err != nil {
		return nil, err
	}
	return ToPDF(svg)
}

// DocumentPath returns the file a document is written to.
func DocumentPath(dir, name, format string) string {
	return filepath.Join(dir, fmt.Sprintf("%s.%s", name, format))
}

// WriteDocument writes data to dir/name.format, creating dir if needed.
func WriteDocument(dir, name, format string, data []byte) (string, error) {
	if err := errors.ValidateDocumentName(name); err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errors.Wrap(errors.ErrCodeOutput, err, "create %s", dir)
	}
	path := DocumentPath(dir, name, format)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", errors.Wrap(errors.ErrCodeOutput, err, "write %s", path)
	}
	return path, nil
}
