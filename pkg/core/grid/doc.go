// Package grid computes the box geometry of a connections sheet.
//
// # Overview
//
// A sheet is a fixed grid of [Columns] columns laid over a page inside an
// outer margin. Every cell is a box of equal size; cell i sits in column
// i % 4 and row i / 4. The same [Geometry] drives the index page and every
// puzzle page, so the box positions are identical on all of them.
//
//	g := grid.Geometry{PageWidth: 595, PageHeight: 842, Margin: 60, BoxMargin: 10}
//	cells, err := g.Cells(16)
//
// # Anchors
//
// [Geometry.Anchor] returns the connector-dot position of a box: horizontally
// centred, half a box margin above the bottom edge. The index page draws one
// dot per box at that point and joins paired dots with a line.
//
// [Geometry.BottomCenter] is the bottom-edge centre of a box. It is never
// drawn; it documents the plain dot formula the anchor is derived from.
package grid
