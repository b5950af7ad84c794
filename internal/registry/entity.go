package registry

import (
	"github.com/pixil98/go-questmap/internal/game"
	"github.com/pixil98/go-questmap/internal/layout"
)

// Entity is one tracked character. The registry owns it; the association
// engine writes its State and Associations.
type Entity struct {
	Id string
	// InstanceId changes every time the entity is inserted, so a renderer can
	// tell a re-inserted entity from one that was tracked all along.
	InstanceId string

	Character game.Character
	Asset     any

	Position game.WorldPosition
	Outdoors bool

	State        game.AssociationState
	Associations []game.TaskSummary
	Layer        int

	location game.Location
	placed   bool
	pixel    game.Pixel
	resolved bool
}

// Location returns the location the entity was last seen in.
func (e *Entity) Location() game.Location {
	return e.location
}

// Pixel returns the cached overlay position. ok is false when the current
// position could not be projected.
func (e *Entity) Pixel() (px game.Pixel, ok bool) {
	return e.pixel, e.resolved
}

// Associate attaches s to the entity and upgrades its state.
func (e *Entity) Associate(s game.TaskSummary) {
	e.Associations = append(e.Associations, s)
	e.State = e.State.Upgrade(s.Completed)
	e.refreshLayer()
}

// ResetAssociations returns the entity to Idle with no associations.
func (e *Entity) ResetAssociations() {
	e.State = game.Idle
	e.Associations = nil
	e.refreshLayer()
}

// Restore sets state and associations verbatim.
func (e *Entity) Restore(state game.AssociationState, summaries []game.TaskSummary) {
	e.State = state
	e.Associations = summaries
	e.refreshLayer()
}

// moveTo records the entity's position and reports whether it changed. A
// change drops the cached pixel.
func (e *Entity) moveTo(loc game.Location, pos game.WorldPosition) bool {
	changed := !e.placed || e.Position != pos

	e.location = loc
	e.Position = pos
	e.Outdoors = loc.IsOutdoors()
	e.placed = true
	if changed {
		e.pixel, e.resolved = game.Pixel{}, false
	}

	e.refreshLayer()
	return changed
}

func (e *Entity) refreshLayer() {
	e.Layer = layout.Layer(e.Outdoors, e.State != game.Idle)
}
