package projection

import (
	"errors"

	"github.com/pixil98/go-questmap/internal/game"
)

var errMockBackend = errors.New("mock backend failure")

// mockLocation implements game.Location for testing
type mockLocation struct {
	id       string
	outdoors bool
	parent   game.Location
}

func (l *mockLocation) Id() string                    { return l.id }
func (l *mockLocation) IsOutdoors() bool              { return l.outdoors }
func (l *mockLocation) Parent() game.Location         { return l.parent }
func (l *mockLocation) Characters() []game.Character  { return nil }
func (l *mockLocation) SubLocations() []game.Location { return nil }

// mockMapAPI implements MapAPI for testing
type mockMapAPI struct {
	pixels map[string]game.Pixel
	calls  int
}

func (m *mockMapAPI) PositionData(loc game.Location, tile game.Tile) (game.Pixel, bool) {
	m.calls++
	px, ok := m.pixels[loc.Id()]
	if !ok {
		return game.Pixel{}, false
	}
	return px.Add(game.Pixel{X: float64(tile.X), Y: float64(tile.Y)}), true
}

// panicTier always panics
type panicTier struct{}

func (panicTier) Name() string { return "panic" }
func (panicTier) Project(game.Location, game.Tile) (game.Pixel, error) {
	panic("boom")
}
