package grid

// Anchor returns the connector-dot position of c: the horizontal centre of
// the box, half a box margin above its bottom edge.
func (g Geometry) Anchor(c Cell) Point {
	return Point{
		X: c.TopLeft.X + g.BoxWidth()/2,
		Y: c.TopLeft.Y + g.BoxHeight() - 0.5*g.BoxMargin,
	}
}

// BottomCenter returns the centre of the bottom edge of c.
func (g Geometry) BottomCenter(c Cell) Point {
	return Point{
		X: c.TopLeft.X + g.BoxWidth()/2,
		Y: c.TopLeft.Y + g.BoxHeight(),
	}
}

// Interior returns the top-left corner of the drawable area of c.
func (g Geometry) Interior(c Cell) Point {
	return Point{X: c.TopLeft.X + g.BoxMargin, Y: c.TopLeft.Y + g.BoxMargin}
}
