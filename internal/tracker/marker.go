package tracker

import (
	"github.com/pixil98/go-questmap/internal/game"
	"github.com/pixil98/go-questmap/internal/layout"
	"github.com/pixil98/go-questmap/internal/registry"
)

// DefaultMarkerDrawDelay is how many marker refreshes a marker stays hidden
// after its session changes location.
const DefaultMarkerDrawDelay = 15

// Marker is the overlay marker of one viewing session. Markers never carry an
// association state.
type Marker struct {
	SessionId string
	Name      string
	Position  game.WorldPosition
	Local     bool
	// DrawDelay counts down after a location change; the marker is hidden
	// while it is positive.
	DrawDelay int

	placed   bool
	pixel    game.Pixel
	resolved bool
}

// update moves the marker to info's position, resolving only when the
// position changed.
func (m *Marker) update(info game.SessionInfo, pos registry.Positioner, delay int) {
	m.Name = info.Name
	m.Local = info.Local

	// A session between locations keeps its last placement.
	if info.Location == nil {
		return
	}

	next := game.WorldPosition{LocationId: info.Location.Id(), Tile: info.Tile}
	switch {
	case m.placed && next.LocationId != m.Position.LocationId:
		m.DrawDelay = delay
	case m.DrawDelay > 0:
		m.DrawDelay--
	}

	if !m.placed || next != m.Position {
		m.Position = next
		m.placed = true
		m.pixel, m.resolved = pos.Resolve(info.Location, info.Tile)
	}
}

// Pixel returns the cached overlay position.
func (m *Marker) Pixel() (game.Pixel, bool) {
	return m.pixel, m.resolved
}

// Visible reports whether the marker should be drawn.
func (m *Marker) Visible() bool {
	return m.resolved && m.DrawDelay <= 0
}

func (m *Marker) view() MarkerView {
	return MarkerView{
		SessionId: m.SessionId,
		Name:      m.Name,
		Pixel:     m.pixel,
		Layer:     layout.LayerSessionMarker,
		Local:     m.Local,
	}
}
