// Package surface provides the page-oriented drawing surfaces pages are
// rendered onto.
//
// # Overview
//
// A [Surface] is a single page with a cairo-like primitive set: text, path
// construction and stroking, filled circles, a current transformation
// matrix with save/restore, and raster image placement. Coordinates are in
// points with the origin at the top-left corner and y growing downwards.
//
// Three implementations are provided:
//
//   - [SVGCanvas]: vector output; the basis of SVG and PDF documents
//   - [RasterCanvas]: PNG output drawn with fogleman/gg
//   - [Recorder]: an operation log used to inspect what a renderer drew
//
// # Errors
//
// Drawing methods do not return errors. The first failure (a Restore without
// matching Save, drawing after [Surface.Finish]) is kept and reported by
// [Surface.Err] and by Finish, in the style of a sticky writer error.
//
// # Transform scopes
//
// [Scoped] saves the transformation state, runs a function and restores the
// state on every exit path, so a failing image load cannot leave a stale
// translate or scale active for later drawing:
//
//	err := surface.Scoped(s, func() error {
//	    s.Translate(x, y)
//	    s.Scale(k, k)
//	    s.DrawImage(img)
//	    return nil
//	})
//
// # Images
//
// [LoadImage] reads an image file, closes it, and decodes it with
// disintegration/imaging. Missing or undecodable files fail with an
// IMAGE_LOAD error.
package surface
