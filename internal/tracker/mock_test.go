package tracker

import (
	"context"

	"github.com/pixil98/go-questmap/internal/game"
	"github.com/pixil98/go-questmap/internal/projection"
)

// mockLocation implements game.Location for testing
type mockLocation struct {
	id       string
	outdoors bool
	chars    []game.Character
}

func (l *mockLocation) Id() string                    { return l.id }
func (l *mockLocation) IsOutdoors() bool              { return l.outdoors }
func (l *mockLocation) Parent() game.Location         { return nil }
func (l *mockLocation) Characters() []game.Character  { return l.chars }
func (l *mockLocation) SubLocations() []game.Location { return nil }

// mockCharacter implements game.Character for testing
type mockCharacter struct {
	name string
	loc  game.Location
	tile game.Tile
}

func (c *mockCharacter) Name() string             { return c.name }
func (c *mockCharacter) Visible() bool            { return true }
func (c *mockCharacter) Category() game.Category  { return game.CategorySocial }
func (c *mockCharacter) Kind() game.CharacterKind { return game.KindPerson }
func (c *mockCharacter) Location() game.Location  { return c.loc }
func (c *mockCharacter) Tile() game.Tile          { return c.tile }
func (c *mockCharacter) Asset() any               { return nil }

// mockWorld implements World for testing
type mockWorld struct {
	locs     []game.Location
	logs     map[string][]game.Task
	sessions []game.SessionInfo

	taskCalls    int
	sessionCalls int
}

func (w *mockWorld) Locations() []game.Location { return w.locs }

func (w *mockWorld) TaskLog(actorId string) ([]game.Task, bool) {
	w.taskCalls++
	tasks, ok := w.logs[actorId]
	return tasks, ok
}

func (w *mockWorld) Sessions() []game.SessionInfo {
	w.sessionCalls++
	return w.sessions
}

// place puts a new villager into loc.
func (w *mockWorld) place(name string, loc *mockLocation, x, y int) *mockCharacter {
	c := &mockCharacter{name: name, loc: loc, tile: game.Tile{X: x, Y: y}}
	loc.chars = append(loc.chars, c)
	return c
}

// mockPublisher implements Publisher for testing
type mockPublisher struct {
	frames []*Frame
	err    error
}

func (p *mockPublisher) PublishFrame(_ context.Context, f *Frame) error {
	p.frames = append(p.frames, f)
	return p.err
}

func (p *mockPublisher) last(sessionId string) *Frame {
	for i := len(p.frames) - 1; i >= 0; i-- {
		if p.frames[i].SessionId == sessionId {
			return p.frames[i]
		}
	}
	return nil
}

func newTestTown() (*mockWorld, *mockLocation, *mockLocation) {
	town := &mockLocation{id: "Town", outdoors: true}
	shop := &mockLocation{id: "SeedShop"}
	w := &mockWorld{
		locs: []game.Location{town, shop},
		logs: map[string][]game.Task{},
	}
	return w, town, shop
}

func testResolverFactory() *projection.Resolver {
	return projection.NewResolver(projection.NewTable(map[string]game.LocationMapping{
		"Town": {Origin: game.Pixel{X: 480, Y: 270}, ScaleX: 1.5, ScaleY: 1.5},
	}, nil))
}

func newTestManager(w *mockWorld, pub *mockPublisher, opts ...ManagerOpt) *Manager {
	opts = append([]ManagerOpt{WithResolverFactory(testResolverFactory)}, opts...)
	return NewManager(w, pub, opts...)
}

func tickN(m *Manager, n int) {
	for range n {
		_ = m.Tick(context.Background())
	}
}
