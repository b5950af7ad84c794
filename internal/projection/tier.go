package projection

import (
	"errors"
	"fmt"

	"github.com/pixil98/go-questmap/internal/game"
)

var (
	// ErrUnavailable means the tier cannot serve requests at all.
	ErrUnavailable = errors.New("projection tier unavailable")
	// ErrNoMapping means the tier works but knows nothing about the location.
	ErrNoMapping = errors.New("no mapping for location")
)

// Tier is one projection strategy in the resolver's fallback chain.
type Tier interface {
	Name() string
	Project(loc game.Location, tile game.Tile) (game.Pixel, error)
}

// project runs one tier, turning a panic inside it into an error so a
// misbehaving backend never takes the resolver down.
func project(t Tier, loc game.Location, tile game.Tile) (px game.Pixel, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("tier %s panicked: %v", t.Name(), r)
		}
	}()
	return t.Project(loc, tile)
}
