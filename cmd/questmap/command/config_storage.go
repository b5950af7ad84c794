package command

import (
	"fmt"
	"os"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-questmap/internal/game"
	"github.com/pixil98/go-questmap/internal/projection"
	"github.com/pixil98/go-questmap/internal/storage"
	"github.com/pixil98/go-questmap/internal/world"
)

type StorageConfig struct {
	// Locations holds extra overlay mappings layered over the built-in table.
	Locations AssetConfig[*game.LocationMapping] `json:"locations"`
	World     WorldStorageConfig                 `json:"world"`
}

type WorldStorageConfig struct {
	Locations  AssetConfig[*world.LocationSpec]  `json:"locations"`
	Characters AssetConfig[*world.CharacterSpec] `json:"characters"`
	Sessions   AssetConfig[*world.SessionSpec]   `json:"sessions"`
}

func (c *StorageConfig) validate() error {
	el := errors.NewErrorList()
	if c.Locations.Path != "" {
		el.Add(c.Locations.Validate("locations"))
	}
	el.Add(c.World.Locations.Validate("world.locations"))
	el.Add(c.World.Characters.Validate("world.characters"))
	el.Add(c.World.Sessions.Validate("world.sessions"))
	return el.Err()
}

// BuildMappings returns the built-in mappings overlaid with any configured
// mapping assets.
func (c *StorageConfig) BuildMappings() (map[string]game.LocationMapping, error) {
	mappings := projection.DefaultMappings()
	if c.Locations.Path == "" {
		return mappings, nil
	}

	st, err := c.Locations.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating location mapping store: %w", err)
	}
	for id, m := range st.GetAll() {
		mappings[id.String()] = *m
	}

	return mappings, nil
}

func (c *StorageConfig) BuildDictionary() (*world.Dictionary, error) {
	locs, err := c.World.Locations.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating location store: %w", err)
	}
	chars, err := c.World.Characters.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating character store: %w", err)
	}
	sessions, err := c.World.Sessions.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating session store: %w", err)
	}

	dict := &world.Dictionary{
		Locations:  locs,
		Characters: chars,
		Sessions:   sessions,
	}

	if err := dict.Resolve(); err != nil {
		return nil, fmt.Errorf("resolving references: %w", err)
	}

	return dict, nil
}

type AssetConfig[T storage.ValidatingSpec] struct {
	Path string `json:"path"`
}

func (c *AssetConfig[T]) Validate(name string) error {
	if c.Path == "" {
		return fmt.Errorf("%s: path is required", name)
	}
	_, err := os.Stat(c.Path)
	if err != nil {
		return fmt.Errorf("%s: invalid path %q: %w", name, c.Path, err)
	}

	return nil
}

func (c *AssetConfig[T]) BuildFileStore() (*storage.FileStore[T], error) {
	return storage.NewFileStore[T](c.Path)
}
