package projection

import (
	"fmt"
	"maps"
	"strings"

	"github.com/pixil98/go-questmap/internal/game"
)

const maxParentDepth = 8

// Rule maps location ids the table has no entry for onto a known area.
type Rule struct {
	// Keyword must appear in the location id, or end it when Suffix is set.
	Keyword string `json:"keyword" yaml:"keyword"`
	Suffix  bool   `json:"suffix,omitempty" yaml:"suffix,omitempty"`
	// Unless vetoes the match when it also appears in the id.
	Unless string `json:"unless,omitempty" yaml:"unless,omitempty"`
	// Area is the table entry the location is placed on.
	Area string `json:"area" yaml:"area"`
	// KeepTile projects the original tile into Area; otherwise the location
	// is pinned to Area's origin.
	KeepTile bool `json:"keep_tile,omitempty" yaml:"keep_tile,omitempty"`
}

// Matches reports whether the rule applies to id. Matching is case-sensitive.
func (r Rule) Matches(id string) bool {
	if r.Keyword == "" {
		return false
	}
	if r.Unless != "" && strings.Contains(id, r.Unless) {
		return false
	}
	if r.Suffix {
		return strings.HasSuffix(id, r.Keyword)
	}
	return strings.Contains(id, r.Keyword)
}

// Table is the static heuristic tier. Entries are looked up verbatim first,
// then through the location's parent, then through the ordered rules.
type Table struct {
	mappings map[string]game.LocationMapping
	rules    []Rule
}

// NewTable creates a table tier. The mappings map is copied.
func NewTable(mappings map[string]game.LocationMapping, rules []Rule) *Table {
	return &Table{
		mappings: maps.Clone(mappings),
		rules:    rules,
	}
}

func (t *Table) Name() string { return "table" }

// AddMapping adds or replaces the entry for id. Only call this during setup.
func (t *Table) AddMapping(id string, m game.LocationMapping) {
	if t.mappings == nil {
		t.mappings = map[string]game.LocationMapping{}
	}
	t.mappings[id] = m
}

// Lookup returns the verbatim entry for id.
func (t *Table) Lookup(id string) (game.LocationMapping, bool) {
	m, ok := t.mappings[id]
	return m, ok
}

// Len returns the number of entries in the table.
func (t *Table) Len() int {
	return len(t.mappings)
}

func (t *Table) Project(loc game.Location, tile game.Tile) (game.Pixel, error) {
	return t.project(loc, tile, 0)
}

func (t *Table) project(loc game.Location, tile game.Tile, depth int) (game.Pixel, error) {
	id := loc.Id()

	if m, ok := t.mappings[id]; ok {
		return m.Project(tile), nil
	}

	// Interiors sit where their container sits.
	if parent := loc.Parent(); parent != nil {
		if depth >= maxParentDepth {
			return game.Pixel{}, fmt.Errorf("location %q: parent chain too deep", id)
		}
		return t.project(parent, game.Tile{}, depth+1)
	}

	for _, r := range t.rules {
		if !r.Matches(id) {
			continue
		}
		m, ok := t.mappings[r.Area]
		if !ok {
			continue
		}
		if r.KeepTile {
			return m.Project(tile), nil
		}
		return m.Origin, nil
	}

	return game.Pixel{}, fmt.Errorf("location %q: %w", id, ErrNoMapping)
}

// Overlay coordinates below are for the 880x680 displayed map: area origins
// are measured on the 300x180 base texture and scaled by mapScale.
const (
	mapScale  = 3.0
	tileScale = 1.5
)

func area(x, y, scale float64) game.LocationMapping {
	return game.LocationMapping{
		Origin: game.Pixel{X: x * mapScale, Y: y * mapScale},
		ScaleX: scale,
		ScaleY: scale,
	}
}

// DefaultMappings returns the built-in table of outdoor areas.
func DefaultMappings() map[string]game.LocationMapping {
	return map[string]game.LocationMapping{
		"Town":      area(160, 90, tileScale),
		"Farm":      area(100, 45, tileScale*0.8),
		"Beach":     area(200, 162, tileScale),
		"Mountain":  area(187, 45, tileScale),
		"Railroad":  area(237, 25, tileScale),
		"Forest":    area(75, 112, tileScale),
		"BusStop":   area(62, 87, tileScale),
		"Desert":    area(25, 87, tileScale),
		"Woods":     area(50, 125, tileScale),
		"Backwoods": area(87, 20, tileScale),
	}
}

// DefaultRules returns the built-in keyword rules, most specific first.
func DefaultRules() []Rule {
	rules := []Rule{
		{Keyword: "Town", Area: "Town", KeepTile: true},
		{Keyword: "Farm", Area: "Farm", KeepTile: true},
		{Keyword: "Beach", Area: "Beach", KeepTile: true},
	}
	for _, kw := range []string{"Coop", "Barn", "Shed", "Cabin"} {
		rules = append(rules, Rule{Keyword: kw, Suffix: true, Area: "Farm"})
	}
	for _, kw := range []string{"Mine", "SkullCave", "ScienceHouse", "Tent", "AdventureGuild"} {
		rules = append(rules, Rule{Keyword: kw, Area: "Mountain"})
	}
	for _, kw := range []string{
		"JojaMart", "CommunityCenter", "Sewer", "Trailer", "Saloon", "Blacksmith",
		"Hospital", "Clinic", "AnimalShop", "FishShop", "SeedShop", "ManorHouse",
	} {
		rules = append(rules, Rule{Keyword: kw, Area: "Town"})
	}
	return append(rules,
		Rule{Keyword: "House", Area: "Town"},
		Rule{Keyword: "Room", Unless: "Mushroom", Area: "Town"},
	)
}
