package game

import "fmt"

// Category classifies characters. Only CategorySocial characters are tracked.
type Category int

const (
	CategoryOther Category = iota
	CategorySocial
	CategoryMonster
)

var categoryNames = map[Category]string{
	CategoryOther:   "other",
	CategorySocial:  "social",
	CategoryMonster: "monster",
}

func (c Category) String() string {
	if s, ok := categoryNames[c]; ok {
		return s
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Category) UnmarshalText(text []byte) error {
	for cat, name := range categoryNames {
		if name == string(text) {
			*c = cat
			return nil
		}
	}
	return fmt.Errorf("unknown category: %s", text)
}

// CharacterKind further narrows a character, e.g. to exclude mounts or minors.
type CharacterKind string

const (
	KindPerson CharacterKind = "person"
	KindMount  CharacterKind = "mount"
	KindMinor  CharacterKind = "minor"
	KindPet    CharacterKind = "pet"
)

// Location is one place in the host world. Locations nest: a farm building's
// interior is a sub-location of the farm and reports the farm as its parent.
type Location interface {
	Id() string
	IsOutdoors() bool
	// Parent returns the containing location, or nil.
	Parent() Location
	Characters() []Character
	SubLocations() []Location
}

// Character is a live actor as the host world exposes it.
type Character interface {
	Name() string
	Visible() bool
	Category() Category
	Kind() CharacterKind
	Location() Location
	Tile() Tile
	// Asset is an opaque handle to the character's visual asset. It is carried
	// through to the renderer untouched.
	Asset() any
}

// Snapshot yields the currently active locations of the world.
type Snapshot interface {
	Locations() []Location
}
