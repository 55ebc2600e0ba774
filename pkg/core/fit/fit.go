// Package fit scales images into the interior of a grid box.
package fit

import (
	"github.com/matzehuels/connections/pkg/core/grid"
	"github.com/matzehuels/connections/pkg/errors"
)

// Placement is where and how large an image is drawn: its top-left corner
// goes to Origin and both axes are multiplied by Scale.
type Placement struct {
	Origin grid.Point
	Scale  float64
}

// Scale returns the largest uniform factor that fits an imageW×imageH image
// inside innerW×innerH. The scaled image touches at least one interior edge.
func Scale(imageW, imageH, innerW, innerH float64) (float64, error) {
	if imageW <= 0 || imageH <= 0 {
		return 0, errors.New(errors.ErrCodeDegenerateGeometry, "image size %gx%g has no area", imageW, imageH)
	}
	if innerW <= 0 || innerH <= 0 {
		return 0, errors.New(errors.ErrCodeDegenerateGeometry, "box interior %gx%g has no area", innerW, innerH)
	}
	return min(innerW/imageW, innerH/imageH), nil
}

// Place fits an image of the given pixel size into cell c of g.
func Place(g grid.Geometry, c grid.Cell, imageW, imageH int) (Placement, error) {
	innerW, innerH := g.InnerSize()
	s, err := Scale(float64(imageW), float64(imageH), innerW, innerH)
	if err != nil {
		return Placement{}, err
	}
	return Placement{Origin: g.Interior(c), Scale: s}, nil
}
