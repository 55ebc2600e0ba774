package surface

import "math"

// Matrix is an affine transformation [a b c d e f] mapping (x, y) to
// (a*x + c*y + e, b*x + d*y + f).
type Matrix [6]float64

// Identity is the identity transformation.
var Identity = Matrix{1, 0, 0, 1, 0, 0}

// Apply maps the point (x, y).
func (m Matrix) Apply(x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// Translate returns m preceded by a translation: user-space points are
// shifted by (dx, dy) before m applies.
func (m Matrix) Translate(dx, dy float64) Matrix {
	return Matrix{m[0], m[1], m[2], m[3],
		m[0]*dx + m[2]*dy + m[4],
		m[1]*dx + m[3]*dy + m[5]}
}

// Scale returns m preceded by scaling the user-space axes.
func (m Matrix) Scale(sx, sy float64) Matrix {
	return Matrix{m[0] * sx, m[1] * sx, m[2] * sy, m[3] * sy, m[4], m[5]}
}

// LinearScale returns the factor by which m scales lengths. It is exact for
// uniform scaling and the geometric mean otherwise.
func (m Matrix) LinearScale() float64 {
	return math.Sqrt(math.Abs(m[0]*m[3] - m[1]*m[2]))
}
