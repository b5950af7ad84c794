package registry

import (
	"log/slog"
	"slices"

	"github.com/google/uuid"
	"github.com/pixil98/go-questmap/internal/game"
)

// Positioner projects world positions onto the overlay.
type Positioner interface {
	Resolve(loc game.Location, tile game.Tile) (game.Pixel, bool)
}

// Delta describes what one Refresh changed.
type Delta struct {
	Inserted  []string
	Moved     []string
	Refreshed []string
	Removed   []string
	// Resolved counts the position resolutions the refresh performed.
	Resolved int
}

// Changed reports whether the set of tracked entities changed.
func (d Delta) Changed() bool {
	return len(d.Inserted) > 0 || len(d.Removed) > 0
}

// Registry is the set of tracked entities of one session, keyed by name.
type Registry struct {
	policy     *Policy
	positioner Positioner
	entities   map[string]*Entity
	// ids holds the keys of entities in sorted order.
	ids []string
}

// New creates an empty registry. A nil policy uses DefaultPolicy.
func New(policy *Policy, positioner Positioner) *Registry {
	if policy == nil {
		policy = DefaultPolicy()
	}
	return &Registry{
		policy:     policy,
		positioner: positioner,
		entities:   map[string]*Entity{},
	}
}

// Policy returns the registry's tracking policy.
func (r *Registry) Policy() *Policy {
	return r.policy
}

type sighting struct {
	char game.Character
	loc  game.Location
}

// Refresh rescans snap and brings the registry in line with it. Only inserted
// and moved entities get their position resolved.
func (r *Registry) Refresh(snap game.Snapshot) Delta {
	var d Delta
	if snap == nil {
		return d
	}

	found, order := r.discover(snap)

	for id := range r.entities {
		if _, ok := found[id]; !ok {
			delete(r.entities, id)
			d.Removed = append(d.Removed, id)
		}
	}
	if len(d.Removed) > 0 {
		r.ids = slices.DeleteFunc(r.ids, func(id string) bool {
			_, ok := r.entities[id]
			return !ok
		})
	}

	for _, id := range order {
		s := found[id]
		pos := game.WorldPosition{LocationId: s.loc.Id(), Tile: s.char.Tile()}

		e, ok := r.entities[id]
		if !ok {
			e = &Entity{
				Id:         id,
				InstanceId: uuid.New().String(),
				Character:  s.char,
				Asset:      s.char.Asset(),
			}
			e.moveTo(s.loc, pos)
			r.entities[id] = e
			r.insertId(id)
			r.resolve(e)
			d.Inserted = append(d.Inserted, id)
			d.Resolved++
			continue
		}

		e.Character = s.char
		e.Asset = s.char.Asset()
		d.Refreshed = append(d.Refreshed, id)
		if e.moveTo(s.loc, pos) {
			r.resolve(e)
			d.Moved = append(d.Moved, id)
			d.Resolved++
		}
	}

	slog.Debug("registry refreshed",
		"tracked", len(r.entities),
		"inserted", len(d.Inserted),
		"moved", len(d.Moved),
		"removed", len(d.Removed),
	)

	return d
}

// discover walks every location and nested sub-location. The first sighting
// of a name wins.
func (r *Registry) discover(snap game.Snapshot) (map[string]sighting, []string) {
	found := map[string]sighting{}
	var order []string
	visited := map[string]bool{}

	var walk func(loc game.Location)
	walk = func(loc game.Location) {
		if loc == nil || visited[loc.Id()] {
			return
		}
		visited[loc.Id()] = true

		for _, c := range loc.Characters() {
			if !r.policy.Eligible(c) {
				continue
			}
			if _, seen := found[c.Name()]; seen {
				continue
			}
			at := c.Location()
			if at == nil {
				at = loc
			}
			found[c.Name()] = sighting{char: c, loc: at}
			order = append(order, c.Name())
		}

		for _, sub := range loc.SubLocations() {
			walk(sub)
		}
	}

	for _, loc := range snap.Locations() {
		walk(loc)
	}

	return found, order
}

func (r *Registry) resolve(e *Entity) {
	if r.positioner == nil {
		return
	}
	e.pixel, e.resolved = r.positioner.Resolve(e.location, e.Position.Tile)
}

// Get returns the entity tracked under id.
func (r *Registry) Get(id string) (*Entity, bool) {
	e, ok := r.entities[id]
	return e, ok
}

// Len returns the number of tracked entities.
func (r *Registry) Len() int {
	return len(r.entities)
}

func (r *Registry) insertId(id string) {
	i, found := slices.BinarySearch(r.ids, id)
	if !found {
		r.ids = slices.Insert(r.ids, i, id)
	}
}

// Ids returns the tracked ids in sorted order.
func (r *Registry) Ids() []string {
	return slices.Clone(r.ids)
}

// ForEach calls fn for every entity in id order.
func (r *Registry) ForEach(fn func(*Entity)) {
	for _, id := range r.ids {
		fn(r.entities[id])
	}
}

// Invalidate drops every cached pixel and re-resolves all entities.
func (r *Registry) Invalidate() int {
	n := 0
	for _, e := range r.entities {
		e.pixel, e.resolved = game.Pixel{}, false
		if e.placed {
			r.resolve(e)
			n++
		}
	}
	return n
}
