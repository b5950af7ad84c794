package tracker

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/pixil98/go-questmap/internal/display"
	"github.com/pixil98/go-questmap/internal/game"
	"github.com/pixil98/go-questmap/internal/layout"
	"github.com/pixil98/go-questmap/internal/projection"
	"github.com/pixil98/go-questmap/internal/registry"
)

const (
	DefaultPositionEvery    = 15
	DefaultAssociationEvery = 30

	commandBuffer = 64
)

// World is everything the manager reads from the host.
type World interface {
	game.Snapshot
	game.TaskSource
	game.SessionSource
}

// Manager owns every local session's partition and refreshes them from the
// driver's tick. Partitions live in an arena indexed by session id.
type Manager struct {
	world     World
	publisher Publisher

	newResolver  func() *projection.Resolver
	formatter    *display.SummaryFormatter
	spreader     layout.Spreader
	exclusions   []string
	excludeKinds []game.CharacterKind

	positionEvery    uint64
	associationEvery uint64
	markerDelay      int

	sessions []*Session
	index    map[string]int
	tick     uint64

	commands chan Command
}

func NewManager(world World, publisher Publisher, opts ...ManagerOpt) *Manager {
	m := &Manager{
		world:            world,
		publisher:        publisher,
		newResolver:      func() *projection.Resolver { return projection.NewResolver() },
		spreader:         layout.NewSpreader(),
		exclusions:       slices.Clone(registry.DefaultExclusions),
		excludeKinds:     slices.Clone(registry.DefaultExcludedKinds),
		positionEvery:    DefaultPositionEvery,
		associationEvery: DefaultAssociationEvery,
		markerDelay:      DefaultMarkerDrawDelay,
		index:            map[string]int{},
		commands:         make(chan Command, commandBuffer),
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Tick runs whichever refresh passes are due and publishes the resulting
// frames. Positions refresh before associations so newly discovered entities
// are associated in the same tick.
func (m *Manager) Tick(ctx context.Context) error {
	tick := m.tick
	m.tick++

	m.drainCommands(ctx)

	positions := tick%m.positionEvery == 0
	associations := tick%m.associationEvery == 0
	if !positions && !associations {
		return nil
	}

	var infos []game.SessionInfo
	if associations {
		infos = m.world.Sessions()
		m.syncSessions(ctx, infos)
	}

	for _, s := range m.sessions {
		if positions {
			d := s.RefreshPositions(m.world)
			if d.Changed() {
				slog.DebugContext(ctx, "tracked entities changed", "session", s.Id, "inserted", len(d.Inserted), "removed", len(d.Removed))
			}
		}
		if associations {
			s.RefreshMarkers(infos, m.markerDelay)
			s.RefreshAssociations(m.world)
		}

		if m.publisher == nil {
			continue
		}
		if err := m.publisher.PublishFrame(ctx, s.Frame(tick)); err != nil {
			slog.WarnContext(ctx, "publishing frame", "session", s.Id, "error", err)
		}
	}

	return nil
}

// syncSessions creates partitions for new local sessions and drops those of
// sessions that are gone.
func (m *Manager) syncSessions(ctx context.Context, infos []game.SessionInfo) {
	local := map[string]bool{}
	for _, info := range infos {
		if !info.Local || info.Id == "" {
			continue
		}
		local[info.Id] = true
		if _, ok := m.index[info.Id]; ok {
			continue
		}
		if err := m.AddSession(info); err != nil {
			slog.WarnContext(ctx, "adding session", "session", info.Id, "error", err)
			continue
		}
		slog.InfoContext(ctx, "session tracking started", "session", info.Id, "name", info.Name)
	}

	for _, s := range slices.Clone(m.sessions) {
		if local[s.Id] {
			continue
		}
		if err := m.RemoveSession(s.Id); err != nil {
			slog.WarnContext(ctx, "removing session", "session", s.Id, "error", err)
			continue
		}
		slog.InfoContext(ctx, "session tracking stopped", "session", s.Id)
	}
}

// AddSession creates the partition for info.
func (m *Manager) AddSession(info game.SessionInfo) error {
	if _, ok := m.index[info.Id]; ok {
		return fmt.Errorf("%s: %w", info.Id, game.ErrSessionExists)
	}
	m.index[info.Id] = len(m.sessions)
	m.sessions = append(m.sessions, newSession(info, m))
	return nil
}

// RemoveSession drops the partition of id. The last partition takes the
// freed slot.
func (m *Manager) RemoveSession(id string) error {
	i, ok := m.index[id]
	if !ok {
		return fmt.Errorf("%s: %w", id, game.ErrSessionNotFound)
	}

	last := len(m.sessions) - 1
	if i != last {
		m.sessions[i] = m.sessions[last]
		m.index[m.sessions[i].Id] = i
	}
	m.sessions[last] = nil
	m.sessions = m.sessions[:last]
	delete(m.index, id)

	return nil
}

// Session returns the partition of id.
func (m *Manager) Session(id string) (*Session, bool) {
	i, ok := m.index[id]
	if !ok {
		return nil, false
	}
	return m.sessions[i], true
}

// SessionCount returns the number of partitions.
func (m *Manager) SessionCount() int {
	return len(m.sessions)
}

// Enqueue hands a control command to the tick goroutine. It never blocks; a
// full queue drops the command.
func (m *Manager) Enqueue(c Command) bool {
	select {
	case m.commands <- c:
		return true
	default:
		return false
	}
}

func (m *Manager) drainCommands(ctx context.Context) {
	for {
		select {
		case c := <-m.commands:
			m.apply(ctx, c)
		default:
			return
		}
	}
}

func (m *Manager) apply(ctx context.Context, c Command) {
	switch c.Op {
	case OpExclude:
		if !slices.Contains(m.exclusions, c.Name) {
			m.exclusions = append(m.exclusions, c.Name)
		}
		for _, s := range m.sessions {
			s.registry.Policy().Exclude(c.Name)
		}
	case OpInclude:
		m.exclusions = slices.DeleteFunc(m.exclusions, func(n string) bool { return n == c.Name })
		for _, s := range m.sessions {
			s.registry.Policy().Include(c.Name)
		}
	case OpInvalidate:
		for _, s := range m.sessions {
			s.InvalidatePositions()
		}
	default:
		slog.WarnContext(ctx, "unknown command", "op", c.Op)
		return
	}
	slog.InfoContext(ctx, "command applied", "op", c.Op, "name", c.Name)
}
