package world

import (
	"fmt"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-questmap/internal/game"
	"github.com/pixil98/go-questmap/internal/storage"
)

// DefaultWaypointTicks is how long an actor lingers at a waypoint that does
// not say otherwise.
const DefaultWaypointTicks = 120

// Waypoint is one stop on an actor's route.
type Waypoint struct {
	Location storage.SmartIdentifier[*LocationSpec] `json:"location" yaml:"location"`
	Tile     game.Tile                              `json:"tile" yaml:"tile"`
	Ticks    int                                    `json:"ticks,omitempty" yaml:"ticks,omitempty"`
}

func (w Waypoint) linger() int {
	if w.Ticks > 0 {
		return w.Ticks
	}
	return DefaultWaypointTicks
}

func validateRoute(route []Waypoint) error {
	el := errors.NewErrorList()

	if len(route) == 0 {
		el.Add(fmt.Errorf("route needs at least one waypoint"))
	}
	for i, w := range route {
		if err := w.Location.Validate(); err != nil {
			el.Add(fmt.Errorf("waypoint %d: %w", i, err))
		}
		if w.Ticks < 0 {
			el.Add(fmt.Errorf("waypoint %d: ticks must not be negative", i))
		}
	}

	return el.Err()
}

func resolveRoute(route []Waypoint, dict *Dictionary) error {
	el := errors.NewErrorList()
	for i := range route {
		el.Add(route[i].Location.Resolve(dict.Locations))
	}
	return el.Err()
}

// walker cycles through a route, one waypoint at a time.
type walker struct {
	route []Waypoint
	idx   int
	left  int
}

func newWalker(route []Waypoint) walker {
	return walker{route: route, left: route[0].linger()}
}

func (w *walker) current() Waypoint {
	return w.route[w.idx]
}

// step advances one tick and reports whether the walker moved on.
func (w *walker) step() bool {
	if len(w.route) < 2 {
		return false
	}
	w.left--
	if w.left > 0 {
		return false
	}
	w.idx = (w.idx + 1) % len(w.route)
	w.left = w.current().linger()
	return true
}
