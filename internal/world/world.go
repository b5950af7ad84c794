package world

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"sync"

	"github.com/pixil98/go-questmap/internal/game"
	"github.com/pixil98/go-questmap/internal/projection"
)

var ErrNoLegacyMap = errors.New("no location has a legacy map")

// World simulates the host game: NPCs walk their routes, sessions move and
// tasks complete as ticks pass. Reads and ticks must come from the same
// goroutine that drives the tracker; the lock only guards the indexes.
type World struct {
	mu sync.RWMutex

	locations  map[string]*Location
	top        []*Location
	characters []*Character
	sessions   []*Session
	byId       map[string]*Session

	tick uint64
}

// NewWorld builds the live world from a resolved dictionary.
func NewWorld(dict *Dictionary) (*World, error) {
	w := &World{
		locations: map[string]*Location{},
		byId:      map[string]*Session{},
	}

	locSpecs := dict.Locations.GetAll()
	ids := slices.Sorted(maps.Keys(locSpecs))
	for _, id := range ids {
		w.locations[id.String()] = &Location{id: id.String(), spec: locSpecs[id]}
	}
	for _, id := range ids {
		loc := w.locations[id.String()]
		key := loc.spec.Parent.Key()
		if key == "" {
			w.top = append(w.top, loc)
			continue
		}
		parent, ok := w.locations[key]
		if !ok {
			return nil, fmt.Errorf("location %s: parent %q not found", id, key)
		}
		loc.parent = parent
		parent.subs = append(parent.subs, loc)
	}
	if err := w.checkParents(); err != nil {
		return nil, err
	}

	charSpecs := dict.Characters.GetAll()
	for _, id := range slices.Sorted(maps.Keys(charSpecs)) {
		spec := charSpecs[id]
		c := &Character{spec: spec, walk: newWalker(spec.Route)}
		if err := w.place(c.walk.current(), func(loc *Location, tile game.Tile) {
			c.loc, c.tile = loc, tile
			loc.addCharacter(c)
		}); err != nil {
			return nil, fmt.Errorf("character %s: %w", id, err)
		}
		w.characters = append(w.characters, c)
	}

	sessSpecs := dict.Sessions.GetAll()
	for _, id := range slices.Sorted(maps.Keys(sessSpecs)) {
		spec := sessSpecs[id]
		s := &Session{
			id:    id.String(),
			spec:  spec,
			walk:  newWalker(spec.Route),
			tasks: slices.Clone(spec.Tasks),
		}
		if err := w.place(s.walk.current(), func(loc *Location, tile game.Tile) {
			s.loc, s.tile = loc, tile
		}); err != nil {
			return nil, fmt.Errorf("session %s: %w", id, err)
		}
		w.sessions = append(w.sessions, s)
		w.byId[s.id] = s
	}

	slog.Info("world loaded",
		"locations", len(w.locations),
		"characters", len(w.characters),
		"sessions", len(w.sessions),
	)

	return w, nil
}

// checkParents rejects parent cycles, which would leave locations unreachable.
func (w *World) checkParents() error {
	for id, loc := range w.locations {
		steps := 0
		for p := loc.parent; p != nil; p = p.parent {
			steps++
			if steps > len(w.locations) {
				return fmt.Errorf("location %s: parent cycle", id)
			}
		}
	}
	return nil
}

func (w *World) place(wp Waypoint, set func(*Location, game.Tile)) error {
	loc, ok := w.location(wp.Location.Key())
	if !ok {
		return fmt.Errorf("location %q not found", wp.Location.Key())
	}
	set(loc, wp.Tile)
	return nil
}

// Locations returns the top-level locations. Interiors are reached through
// SubLocations.
func (w *World) Locations() []game.Location {
	w.mu.RLock()
	defer w.mu.RUnlock()

	out := make([]game.Location, len(w.top))
	for i, l := range w.top {
		out[i] = l
	}
	return out
}

// location looks up id. Callers hold the lock.
func (w *World) location(id string) (*Location, bool) {
	l, ok := w.locations[id]
	return l, ok
}

// TaskLog returns a copy of the session's task log.
func (w *World) TaskLog(actorId string) ([]game.Task, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	s, ok := w.byId[actorId]
	if !ok {
		return nil, false
	}
	return s.taskLog()
}

// Sessions returns every online session in id order.
func (w *World) Sessions() []game.SessionInfo {
	w.mu.RLock()
	defer w.mu.RUnlock()

	out := make([]game.SessionInfo, len(w.sessions))
	for i, s := range w.sessions {
		out[i] = s.info()
	}
	return out
}

// PositionData serves the host map's own placement of a location.
func (w *World) PositionData(loc game.Location, tile game.Tile) (game.Pixel, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	l, ok := w.location(loc.Id())
	if !ok || l.spec.Map == nil {
		return game.Pixel{}, false
	}
	return l.spec.Map.Project(tile), true
}

// LegacyHandle returns the older projection entry point. It fails when no
// location carries a legacy map.
func (w *World) LegacyHandle() (projection.ProjectFunc, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	legacy := map[string]game.LocationMapping{}
	for id, l := range w.locations {
		if l.spec.Legacy != nil {
			legacy[id] = *l.spec.Legacy
		}
	}
	if len(legacy) == 0 {
		return nil, ErrNoLegacyMap
	}

	return func(locationId string, tile game.Tile) (game.Pixel, error) {
		m, ok := legacy[locationId]
		if !ok {
			return game.Pixel{}, fmt.Errorf("location %q: %w", locationId, projection.ErrNoMapping)
		}
		return m.Project(tile), nil
	}, nil
}

// Tick advances every actor along its route and completes due tasks.
func (w *World) Tick(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.tick++

	for _, c := range w.characters {
		if !c.walk.step() {
			continue
		}
		err := w.place(c.walk.current(), func(loc *Location, tile game.Tile) {
			if loc != c.loc {
				c.loc.removeCharacter(c)
				loc.addCharacter(c)
			}
			c.loc, c.tile = loc, tile
		})
		if err != nil {
			return fmt.Errorf("moving %s: %w", c.Name(), err)
		}
	}

	for _, s := range w.sessions {
		if s.walk.step() {
			err := w.place(s.walk.current(), func(loc *Location, tile game.Tile) {
				s.loc, s.tile = loc, tile
			})
			if err != nil {
				return fmt.Errorf("moving session %s: %w", s.id, err)
			}
		}
		if n := s.completeDue(w.tick); n > 0 {
			slog.InfoContext(ctx, "tasks completed", "session", s.id, "count", n)
		}
	}

	return nil
}

// Ticks returns how many ticks the world has run.
func (w *World) Ticks() uint64 {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return w.tick
}
