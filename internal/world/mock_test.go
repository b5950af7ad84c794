package world

import (
	"testing"

	"github.com/pixil98/go-questmap/internal/game"
	"github.com/pixil98/go-questmap/internal/storage"
)

// mockStore implements storage.Storer for testing
type mockStore[T storage.ValidatingSpec] struct {
	records map[string]T
}

func (m *mockStore[T]) Get(id string) T {
	return m.records[id]
}

func (m *mockStore[T]) GetAll() map[storage.Identifier]T {
	result := make(map[storage.Identifier]T, len(m.records))
	for k, v := range m.records {
		result[storage.Identifier(k)] = v
	}
	return result
}

func at(loc string, x, y, ticks int) Waypoint {
	return Waypoint{
		Location: storage.NewSmartIdentifier[*LocationSpec](loc),
		Tile:     game.Tile{X: x, Y: y},
		Ticks:    ticks,
	}
}

func newTestDictionary() *Dictionary {
	return &Dictionary{
		Locations: &mockStore[*LocationSpec]{records: map[string]*LocationSpec{
			"Town": {Name: "Pelican Town", Outdoors: true, Map: &game.LocationMapping{
				Origin: game.Pixel{X: 480, Y: 270}, ScaleX: 1.5, ScaleY: 1.5,
			}},
			"Farm": {Outdoors: true, Legacy: &game.LocationMapping{
				Origin: game.Pixel{X: 300, Y: 135}, ScaleX: 1.2, ScaleY: 1.2,
			}},
			"SeedShop": {Name: "Pierre's", Parent: storage.NewSmartIdentifier[*LocationSpec]("Town")},
			"Coop":     {Parent: storage.NewSmartIdentifier[*LocationSpec]("Farm")},
		}},
		Characters: &mockStore[*CharacterSpec]{records: map[string]*CharacterSpec{
			"abigail": {Name: "Abigail", Category: game.CategorySocial, Sprite: "abigail.png", Route: []Waypoint{
				at("Town", 10, 20, 2),
				at("SeedShop", 3, 4, 2),
			}},
			"pierre": {Name: "Pierre", Category: game.CategorySocial, Route: []Waypoint{at("SeedShop", 5, 5, 0)}},
			"horse":  {Name: "Horse", Category: game.CategorySocial, Kind: game.KindMount, Route: []Waypoint{at("Farm", 1, 1, 0)}},
		}},
		Sessions: &mockStore[*SessionSpec]{records: map[string]*SessionSpec{
			"s1": {Name: "Farmer", Local: true, Route: []Waypoint{at("Farm", 0, 0, 3), at("Coop", 2, 2, 3)}, Tasks: []TaskSpec{
				{Task: game.Task{Id: "T1", Title: "Bring an amethyst", Kind: game.TaskDelivery, Target: "Abigail"}, CompleteAfter: 2},
			}},
			"s2": {Name: "Guest", Route: []Waypoint{at("Town", 0, 0, 0)}, NoTaskLog: true},
		}},
	}
}

func newTestWorld(t *testing.T) *World {
	t.Helper()

	dict := newTestDictionary()
	if err := dict.Resolve(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	w, err := NewWorld(dict)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return w
}

func names(chars []game.Character) []string {
	out := make([]string, len(chars))
	for i, c := range chars {
		out[i] = c.Name()
	}
	return out
}
