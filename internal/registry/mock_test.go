package registry

import (
	"github.com/pixil98/go-questmap/internal/game"
)

// mockLocation implements game.Location for testing
type mockLocation struct {
	id       string
	outdoors bool
	parent   game.Location
	chars    []game.Character
	subs     []game.Location
}

func (l *mockLocation) Id() string                    { return l.id }
func (l *mockLocation) IsOutdoors() bool              { return l.outdoors }
func (l *mockLocation) Parent() game.Location         { return l.parent }
func (l *mockLocation) Characters() []game.Character  { return l.chars }
func (l *mockLocation) SubLocations() []game.Location { return l.subs }

// mockCharacter implements game.Character for testing
type mockCharacter struct {
	name     string
	hidden   bool
	category game.Category
	kind     game.CharacterKind
	loc      game.Location
	tile     game.Tile
	asset    any
}

func (c *mockCharacter) Name() string             { return c.name }
func (c *mockCharacter) Visible() bool            { return !c.hidden }
func (c *mockCharacter) Category() game.Category  { return c.category }
func (c *mockCharacter) Kind() game.CharacterKind { return c.kind }
func (c *mockCharacter) Location() game.Location  { return c.loc }
func (c *mockCharacter) Tile() game.Tile          { return c.tile }
func (c *mockCharacter) Asset() any               { return c.asset }

func villager(name string, loc *mockLocation, x, y int) *mockCharacter {
	c := &mockCharacter{
		name:     name,
		category: game.CategorySocial,
		kind:     game.KindPerson,
		loc:      loc,
		tile:     game.Tile{X: x, Y: y},
		asset:    name + "-sprite",
	}
	loc.chars = append(loc.chars, c)
	return c
}

// mockSnapshot implements game.Snapshot for testing
type mockSnapshot struct {
	locs []game.Location
}

func (s *mockSnapshot) Locations() []game.Location { return s.locs }

// mockPositioner implements Positioner for testing. Pixels are the tile
// offset by a per-location base; unknown locations do not resolve.
type mockPositioner struct {
	bases map[string]game.Pixel
	calls int
}

func (p *mockPositioner) Resolve(loc game.Location, tile game.Tile) (game.Pixel, bool) {
	p.calls++
	base, ok := p.bases[loc.Id()]
	if !ok {
		return game.Pixel{}, false
	}
	return base.Add(game.Pixel{X: float64(tile.X), Y: float64(tile.Y)}), true
}
