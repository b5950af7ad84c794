package projection

import (
	"log/slog"

	"github.com/pixil98/go-questmap/internal/game"
)

// Resolver maps world positions to overlay pixels by trying its tiers in
// order. The first tier to succeed wins.
type Resolver struct {
	tiers []Tier
}

// NewResolver creates a resolver over tiers, tried in the given order.
func NewResolver(tiers ...Tier) *Resolver {
	return &Resolver{tiers: tiers}
}

// Resolve returns the overlay pixel for tile in loc. A false result means no
// tier could place it; callers should skip the entity for this frame.
func (r *Resolver) Resolve(loc game.Location, tile game.Tile) (game.Pixel, bool) {
	if loc == nil {
		return game.Pixel{}, false
	}

	for _, t := range r.tiers {
		px, err := project(t, loc, tile)
		if err == nil {
			return px, true
		}
		slog.Debug("projection tier fell through", "tier", t.Name(), "location", loc.Id(), "error", err)
	}

	return game.Pixel{}, false
}
