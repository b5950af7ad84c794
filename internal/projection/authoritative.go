package projection

import (
	"github.com/pixil98/go-questmap/internal/game"
)

// MapAPI is the host's own projection, when the host build provides one.
type MapAPI interface {
	PositionData(loc game.Location, tile game.Tile) (game.Pixel, bool)
}

// Authoritative is the first tier: it defers to the host's MapAPI.
type Authoritative struct {
	api MapAPI
}

// NewAuthoritative wraps api. A nil api yields a tier that is always unavailable.
func NewAuthoritative(api MapAPI) *Authoritative {
	return &Authoritative{api: api}
}

func (a *Authoritative) Name() string { return "authoritative" }

func (a *Authoritative) Project(loc game.Location, tile game.Tile) (game.Pixel, error) {
	if a.api == nil {
		return game.Pixel{}, ErrUnavailable
	}
	px, ok := a.api.PositionData(loc, tile)
	if !ok {
		return game.Pixel{}, ErrNoMapping
	}
	return px, nil
}
