package world

import (
	"fmt"
	"maps"
	"slices"

	"github.com/pixil98/go-questmap/internal/storage"
)

// Dictionary holds all world definition stores. It provides a single
// reference that can be passed to resolution methods so they all
// share the same signature.
type Dictionary struct {
	Locations  storage.Storer[*LocationSpec]
	Characters storage.Storer[*CharacterSpec]
	Sessions   storage.Storer[*SessionSpec]
}

// Resolve resolves all foreign key references.
func (d *Dictionary) Resolve() error {
	locs := d.Locations.GetAll()
	for _, id := range slices.Sorted(maps.Keys(locs)) {
		if err := locs[id].Resolve(d); err != nil {
			return fmt.Errorf("location %s: %w", id, err)
		}
	}

	chars := d.Characters.GetAll()
	for _, id := range slices.Sorted(maps.Keys(chars)) {
		if err := chars[id].Resolve(d); err != nil {
			return fmt.Errorf("character %s: %w", id, err)
		}
	}

	sessions := d.Sessions.GetAll()
	for _, id := range slices.Sorted(maps.Keys(sessions)) {
		if err := sessions[id].Resolve(d); err != nil {
			return fmt.Errorf("session %s: %w", id, err)
		}
	}

	return nil
}
