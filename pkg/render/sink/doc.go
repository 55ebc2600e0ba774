// Package sink turns drawn pages into output documents.
//
// # Overview
//
// A sink pairs an output format with the [surface.Surface] that produces it:
//
//   - svg: [surface.SVGCanvas], written as-is
//   - pdf: the same SVG page, converted with rsvg-convert (see [ToPDF])
//   - png: [surface.RasterCanvas], drawn with fogleman/gg at 2x scale
//
// Basic usage:
//
//	page, err := sink.NewPage(sink.FormatPDF, 595, 842)
//	// ... draw on page ...
//	data, err := page.Finish()
//	err = sink.WriteDocument(dir, "animals", sink.FormatPDF, data)
//
// PDF output requires librsvg to be installed:
//   - macOS: brew install librsvg
//   - Linux: apt install librsvg2-bin
package sink
