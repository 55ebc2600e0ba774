package sheet

import (
	"github.com/matzehuels/connections/pkg/core/grid"
	"github.com/matzehuels/connections/pkg/errors"
)

// Validate checks that c describes a drawable sheet.
func (c Config) Validate() error {
	if err := c.Geometry.Validate(); err != nil {
		return err
	}
	if c.Cells <= 0 || c.Cells%grid.Columns != 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "cell count %d is not a positive multiple of %d", c.Cells, grid.Columns)
	}
	if c.DotRadius <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "dot radius %g must be positive", c.DotRadius)
	}
	if c.FontSize <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "font size %g must be positive", c.FontSize)
	}
	return nil
}
