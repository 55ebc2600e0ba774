// Package legend renders the pairing of a run as a Graphviz diagram.
//
// The diagram is an answer key that can be read without the index page: one
// box per grid cell, laid out in the rows of the sheet, with an undirected
// edge joining the two boxes of every pair.
//
// # Usage
//
//	dot := legend.ToDOT(manifest, legend.Options{Detailed: true})
//	svg, err := legend.RenderSVG(dot)
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering. PDF conversion requires librsvg (rsvg-convert).
package legend
