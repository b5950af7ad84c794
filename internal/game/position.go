package game

import "fmt"

// Tile is an integer tile coordinate inside a location.
type Tile struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// Pixel is a position in overlay (map) space.
type Pixel struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Add returns the component-wise sum of p and o.
func (p Pixel) Add(o Pixel) Pixel {
	return Pixel{X: p.X + o.X, Y: p.Y + o.Y}
}

// Cell returns the integer pixel p falls in. Fractions are truncated.
func (p Pixel) Cell() [2]int {
	return [2]int{int(p.X), int(p.Y)}
}

func (p Pixel) String() string {
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}

// WorldPosition is where an entity stands in the world.
type WorldPosition struct {
	LocationId string `json:"location"`
	Tile       Tile   `json:"tile"`
}
