package game

import (
	"fmt"

	"github.com/pixil98/go-errors"
)

// LocationMapping places one location on the overlay: a tile (x, y) lands on
// Origin + (x*ScaleX, y*ScaleY).
type LocationMapping struct {
	Origin Pixel   `json:"origin" yaml:"origin"`
	ScaleX float64 `json:"scale_x" yaml:"scale_x"`
	ScaleY float64 `json:"scale_y" yaml:"scale_y"`
}

// Project maps tile into overlay space.
func (m LocationMapping) Project(tile Tile) Pixel {
	return Pixel{
		X: m.Origin.X + float64(tile.X)*m.ScaleX,
		Y: m.Origin.Y + float64(tile.Y)*m.ScaleY,
	}
}

// Validate satisfies storage.ValidatingSpec.
func (m *LocationMapping) Validate() error {
	el := errors.NewErrorList()

	if m.ScaleX <= 0 {
		el.Add(fmt.Errorf("scale_x must be positive"))
	}
	if m.ScaleY <= 0 {
		el.Add(fmt.Errorf("scale_y must be positive"))
	}

	return el.Err()
}
