package association

import (
	"github.com/pixil98/go-questmap/internal/game"
	"github.com/pixil98/go-questmap/internal/registry"
)

// mockLocation implements game.Location for testing
type mockLocation struct {
	id    string
	chars []game.Character
}

func (l *mockLocation) Id() string                    { return l.id }
func (l *mockLocation) IsOutdoors() bool              { return true }
func (l *mockLocation) Parent() game.Location         { return nil }
func (l *mockLocation) Characters() []game.Character  { return l.chars }
func (l *mockLocation) SubLocations() []game.Location { return nil }

// mockCharacter implements game.Character for testing
type mockCharacter struct {
	name string
	loc  game.Location
}

func (c *mockCharacter) Name() string             { return c.name }
func (c *mockCharacter) Visible() bool            { return true }
func (c *mockCharacter) Category() game.Category  { return game.CategorySocial }
func (c *mockCharacter) Kind() game.CharacterKind { return game.KindPerson }
func (c *mockCharacter) Location() game.Location  { return c.loc }
func (c *mockCharacter) Tile() game.Tile          { return game.Tile{} }
func (c *mockCharacter) Asset() any               { return nil }

// mockSnapshot implements game.Snapshot for testing
type mockSnapshot struct {
	locs []game.Location
}

func (s *mockSnapshot) Locations() []game.Location { return s.locs }

// newTestRegistry returns a registry tracking the named villagers, all
// standing outdoors in one location.
func newTestRegistry(names ...string) (*registry.Registry, *mockLocation) {
	town := &mockLocation{id: "Town"}
	for _, n := range names {
		town.chars = append(town.chars, &mockCharacter{name: n, loc: town})
	}
	reg := registry.New(registry.NewPolicy(nil, nil), nil)
	reg.Refresh(&mockSnapshot{locs: []game.Location{town}})
	return reg, town
}

func stateOf(reg *registry.Registry, id string) game.AssociationState {
	e, ok := reg.Get(id)
	if !ok {
		return -1
	}
	return e.State
}

func summaryIds(reg *registry.Registry, id string) []string {
	e, ok := reg.Get(id)
	if !ok {
		return nil
	}
	ids := make([]string, len(e.Associations))
	for i, s := range e.Associations {
		ids[i] = s.TaskId
	}
	return ids
}
