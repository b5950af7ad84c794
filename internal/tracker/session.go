package tracker

import (
	"maps"
	"slices"

	"github.com/pixil98/go-questmap/internal/association"
	"github.com/pixil98/go-questmap/internal/display"
	"github.com/pixil98/go-questmap/internal/game"
	"github.com/pixil98/go-questmap/internal/layout"
	"github.com/pixil98/go-questmap/internal/projection"
	"github.com/pixil98/go-questmap/internal/registry"
)

// Session is the tracking partition of one local viewing session. Nothing in
// a Session is shared with another.
type Session struct {
	Id   string
	Name string

	resolver  *projection.Resolver
	registry  *registry.Registry
	engine    *association.Engine
	spreader  layout.Spreader
	formatter *display.SummaryFormatter
	markers   map[string]*Marker
}

func newSession(info game.SessionInfo, m *Manager) *Session {
	resolver := m.newResolver()
	return &Session{
		Id:        info.Id,
		Name:      info.Name,
		resolver:  resolver,
		registry:  registry.New(registry.NewPolicy(m.exclusions, m.excludeKinds), resolver),
		engine:    association.New(),
		spreader:  m.spreader,
		formatter: m.formatter,
		markers:   map[string]*Marker{},
	}
}

// Registry returns the session's entity registry.
func (s *Session) Registry() *registry.Registry {
	return s.registry
}

// Engine returns the session's association engine.
func (s *Session) Engine() *association.Engine {
	return s.engine
}

// Marker returns the marker of sessionId.
func (s *Session) Marker(sessionId string) (*Marker, bool) {
	mk, ok := s.markers[sessionId]
	return mk, ok
}

// RefreshPositions rescans the world. Newly inserted entities force the next
// association pass to recompute, since the cached pass never saw them.
func (s *Session) RefreshPositions(snap game.Snapshot) registry.Delta {
	d := s.registry.Refresh(snap)
	if len(d.Inserted) > 0 {
		s.engine.Invalidate()
	}
	return d
}

// RefreshAssociations applies the session's task log. A session without a
// task log keeps its current associations.
func (s *Session) RefreshAssociations(tasks game.TaskSource) bool {
	if tasks == nil {
		return false
	}
	entries, ok := tasks.TaskLog(s.Id)
	if !ok {
		return false
	}
	return s.engine.Update(s.registry, entries)
}

// RefreshMarkers syncs markers with the online sessions. Markers of sessions
// that went offline are dropped.
func (s *Session) RefreshMarkers(infos []game.SessionInfo, delay int) {
	online := make(map[string]bool, len(infos))
	for _, info := range infos {
		online[info.Id] = true

		mk, ok := s.markers[info.Id]
		if !ok {
			mk = &Marker{SessionId: info.Id}
			s.markers[info.Id] = mk
		}
		mk.update(info, s.resolver, delay)
	}

	for id := range s.markers {
		if !online[id] {
			delete(s.markers, id)
		}
	}
}

// InvalidatePositions drops every cached pixel. Entities resolve again right
// away; markers on their next refresh.
func (s *Session) InvalidatePositions() int {
	n := s.registry.Invalidate()
	for _, mk := range s.markers {
		if mk.placed {
			mk.placed = false
			n++
		}
	}
	return n
}

// Frame lays out the session's current state.
func (s *Session) Frame(tick uint64) *Frame {
	f := &Frame{
		SessionId: s.Id,
		Tick:      tick,
	}

	var positioned []layout.Positioned
	var unresolved []string
	s.registry.ForEach(func(e *registry.Entity) {
		px, ok := e.Pixel()
		if !ok {
			unresolved = append(unresolved, e.Id)
			return
		}
		positioned = append(positioned, layout.Positioned{
			Id:         e.Id,
			Pixel:      px,
			Outdoors:   e.Outdoors,
			Associated: e.State != game.Idle,
		})
	})

	for _, p := range s.spreader.Layout(positioned) {
		e, _ := s.registry.Get(p.Id)
		v := s.view(e)
		px := p.Pixel
		v.Pixel = &px
		v.Layer = p.Layer
		v.Stack = p.Stack
		f.Entities = append(f.Entities, v)
	}
	for _, id := range unresolved {
		e, _ := s.registry.Get(id)
		f.Entities = append(f.Entities, s.view(e))
	}

	for _, id := range slices.Sorted(maps.Keys(s.markers)) {
		mk := s.markers[id]
		if mk.Visible() {
			f.Markers = append(f.Markers, mk.view())
		}
	}

	return f
}

func (s *Session) view(e *registry.Entity) EntityView {
	v := EntityView{
		Id:         e.Id,
		InstanceId: e.InstanceId,
		Location:   e.Position.LocationId,
		State:      e.State,
		Layer:      e.Layer,
		Summaries:  slices.Clone(e.Associations),
	}
	if s.formatter != nil {
		v.Text = s.formatter.FormatAll(e.Associations)
	}
	return v
}
