package layout

import (
	"cmp"
	"math"
	"slices"

	"github.com/pixil98/go-questmap/internal/game"
)

const (
	DefaultBaseRadius = 20.0
	DefaultRadiusStep = 15.0

	spreadAngle    = 60.0
	membersPerRing = 6
)

// Positioned is one resolved entity going into layout.
type Positioned struct {
	Id         string
	Pixel      game.Pixel
	Outdoors   bool
	Associated bool
}

// Placement is one entity coming out of layout.
type Placement struct {
	Id    string     `json:"id"`
	Pixel game.Pixel `json:"pixel"`
	Layer int        `json:"layer"`
	// Stack is the entity's index among those sharing its original pixel.
	Stack int `json:"stack"`
}

// Spreader fans out entities that land on the same pixel.
type Spreader struct {
	BaseRadius float64
	RadiusStep float64
}

// NewSpreader returns a Spreader with the default radii.
func NewSpreader() Spreader {
	return Spreader{BaseRadius: DefaultBaseRadius, RadiusStep: DefaultRadiusStep}
}

// Offset returns the displacement for the i-th entity on a shared pixel. The
// first entity (i == 0) stays put; later ones go round a circle in 60 degree
// steps, and the circle grows every six entities.
func (s Spreader) Offset(i int) game.Pixel {
	if i <= 0 {
		return game.Pixel{}
	}
	angle := math.Mod(float64(i)*spreadAngle, 360) * math.Pi / 180
	radius := s.BaseRadius + float64(i/membersPerRing)*s.RadiusStep
	return game.Pixel{X: math.Cos(angle) * radius, Y: math.Sin(angle) * radius}
}

// Layout assigns layers and final pixels. The result is ordered by ascending
// layer, ties broken by id, and stack indices follow that order.
func (s Spreader) Layout(in []Positioned) []Placement {
	out := make([]Placement, len(in))
	for i, p := range in {
		out[i] = Placement{
			Id:    p.Id,
			Pixel: p.Pixel,
			Layer: Layer(p.Outdoors, p.Associated),
		}
	}

	slices.SortStableFunc(out, func(a, b Placement) int {
		if c := cmp.Compare(a.Layer, b.Layer); c != 0 {
			return c
		}
		return cmp.Compare(a.Id, b.Id)
	})

	stacks := make(map[[2]int]int, len(out))
	for i := range out {
		cell := out[i].Pixel.Cell()
		n := stacks[cell]
		stacks[cell] = n + 1

		out[i].Stack = n
		out[i].Pixel = out[i].Pixel.Add(s.Offset(n))
	}

	return out
}
