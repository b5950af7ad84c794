package world

import (
	"fmt"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-questmap/internal/game"
)

// CharacterSpec defines a non-player character loaded from asset files. The
// asset id is only a file key; Name is what the character is known by.
type CharacterSpec struct {
	Name     string             `json:"name" yaml:"name"`
	Category game.Category      `json:"category" yaml:"category"`
	Kind     game.CharacterKind `json:"kind,omitempty" yaml:"kind,omitempty"`
	Hidden   bool               `json:"hidden,omitempty" yaml:"hidden,omitempty"`
	Sprite   string             `json:"sprite,omitempty" yaml:"sprite,omitempty"`
	Route    []Waypoint         `json:"route" yaml:"route"`
}

// Validate satisfies storage.ValidatingSpec.
func (c *CharacterSpec) Validate() error {
	el := errors.NewErrorList()

	if c.Name == "" {
		el.Add(fmt.Errorf("character name is required"))
	}
	switch c.Kind {
	case "", game.KindPerson, game.KindMount, game.KindMinor, game.KindPet:
	default:
		el.Add(fmt.Errorf("invalid kind: %s", c.Kind))
	}
	el.Add(validateRoute(c.Route))

	return el.Err()
}

// Resolve binds the route's location references.
func (c *CharacterSpec) Resolve(dict *Dictionary) error {
	return resolveRoute(c.Route, dict)
}

// Character is a live NPC walking its route.
type Character struct {
	spec *CharacterSpec
	loc  *Location
	tile game.Tile
	walk walker
}

func (c *Character) Name() string {
	return c.spec.Name
}

func (c *Character) Visible() bool {
	return !c.spec.Hidden
}

func (c *Character) Category() game.Category {
	return c.spec.Category
}

func (c *Character) Kind() game.CharacterKind {
	if c.spec.Kind == "" {
		return game.KindPerson
	}
	return c.spec.Kind
}

func (c *Character) Location() game.Location {
	if c.loc == nil {
		return nil
	}
	return c.loc
}

func (c *Character) Tile() game.Tile {
	return c.tile
}

// Asset returns the sprite name.
func (c *Character) Asset() any {
	return c.spec.Sprite
}
