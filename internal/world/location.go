package world

import (
	"fmt"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-questmap/internal/game"
	"github.com/pixil98/go-questmap/internal/storage"
)

// LocationSpec defines one location loaded from asset files. A location with
// a parent is an interior of that parent and is only reachable through it.
type LocationSpec struct {
	Name     string                                 `json:"name" yaml:"name"`
	Outdoors bool                                   `json:"outdoors" yaml:"outdoors"`
	Parent   storage.SmartIdentifier[*LocationSpec] `json:"parent,omitempty" yaml:"parent,omitempty"`

	// Map is what the host's own map reports for this location.
	Map *game.LocationMapping `json:"map,omitempty" yaml:"map,omitempty"`
	// Legacy is served through the older projection handle.
	Legacy *game.LocationMapping `json:"legacy,omitempty" yaml:"legacy,omitempty"`
}

// Validate satisfies storage.ValidatingSpec.
func (l *LocationSpec) Validate() error {
	el := errors.NewErrorList()

	if l.Map != nil {
		if err := l.Map.Validate(); err != nil {
			el.Add(fmt.Errorf("map: %w", err))
		}
	}
	if l.Legacy != nil {
		if err := l.Legacy.Validate(); err != nil {
			el.Add(fmt.Errorf("legacy: %w", err))
		}
	}

	return el.Err()
}

// Resolve binds the parent reference, if any.
func (l *LocationSpec) Resolve(dict *Dictionary) error {
	if l.Parent.Key() == "" {
		return nil
	}
	return l.Parent.Resolve(dict.Locations)
}

// Location is the live instance of a LocationSpec.
type Location struct {
	id     string
	spec   *LocationSpec
	parent *Location
	subs   []*Location
	chars  []*Character
}

func (l *Location) Id() string {
	return l.id
}

// Name returns the display name, falling back to the id.
func (l *Location) Name() string {
	if l.spec.Name != "" {
		return l.spec.Name
	}
	return l.id
}

func (l *Location) IsOutdoors() bool {
	return l.spec.Outdoors
}

func (l *Location) Parent() game.Location {
	if l.parent == nil {
		return nil
	}
	return l.parent
}

func (l *Location) Characters() []game.Character {
	out := make([]game.Character, len(l.chars))
	for i, c := range l.chars {
		out[i] = c
	}
	return out
}

func (l *Location) SubLocations() []game.Location {
	out := make([]game.Location, len(l.subs))
	for i, s := range l.subs {
		out[i] = s
	}
	return out
}

func (l *Location) addCharacter(c *Character) {
	l.chars = append(l.chars, c)
}

func (l *Location) removeCharacter(c *Character) {
	for i, o := range l.chars {
		if o == c {
			l.chars = append(l.chars[:i], l.chars[i+1:]...)
			return
		}
	}
}
