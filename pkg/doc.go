// Package pkg provides the libraries behind the connections puzzle generator.
//
// # Overview
//
// A connections sheet is a grid of boxes on a printed page. The boxes are
// shuffled with a fixed seed and split into pairs. The index page joins the
// two boxes of every pair with a line; each puzzle page puts the two images
// of an image pair into the two boxes of a pair, so the index page is the
// answer key.
//
// The pkg directory is organized into these areas:
//
//  1. [core] - Layout and drawing (grid, permutation, pairing, fitting, pages)
//  2. [surface] - Drawing surfaces (SVG, raster, recorder)
//  3. [render] - Document output (formats, files) and the pairing legend
//  4. [source] - Puzzle folders on disk
//  5. [pipeline] - Orchestration of a complete run
//  6. [io] - Run manifests
//
// # Architecture
//
// The typical data flow of a run:
//
//	sheet.DefaultConfig
//	         ↓
//	    [core/sheet] package (cells, seeded permutation, pairs, anchors)
//	         ↓
//	    [core/render] package (index page, puzzle pages)
//	         ↓
//	    [render/sink] package (PDF/SVG/PNG documents)
//	         ↓
//	    connections.pdf, <puzzle>.pdf, connections.toml
//
// # Quick Start
//
//	runner := pipeline.NewRunner(nil)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    PuzzlesDir: "puzzles",
//	    OutputDir:  "out",
//	})
package pkg
