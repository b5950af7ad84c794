package command

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pixil98/go-questmap/internal/game"
	"github.com/pixil98/go-questmap/internal/tracker"
	"github.com/pixil98/go-questmap/internal/world"
	"github.com/pixil98/go-testutil"
)

var testAssets = map[string]string{
	"mappings/island.yaml": `version: 1
id: Island
spec: {origin: {x: 10, y: 10}, scale_x: 0.5, scale_y: 0.5}
`,
	"locations/town.yaml": `version: 1
id: Town
spec:
  outdoors: true
  map: {origin: {x: 480, y: 270}, scale_x: 1.5, scale_y: 1.5}
`,
	"characters/abigail.yaml": `version: 1
id: abigail
spec:
  name: Abigail
  category: social
  route:
    - location: Town
      tile: {x: 10, y: 20}
`,
	"sessions/farmer.yaml": `version: 1
id: farmer
spec:
  name: Farmer
  local: true
  route:
    - location: Town
      tile: {x: 0, y: 0}
  tasks:
    - id: T1
      title: Bring an amethyst
      kind: delivery
      target: Abigail
`,
}

func writeAssets(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	for name, data := range testAssets {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("failed to create dir: %v", err)
		}
		if err := os.WriteFile(path, []byte(data), 0644); err != nil {
			t.Fatalf("failed to write test file: %v", err)
		}
	}
	return dir
}

func testConfig(dir string) *Config {
	return &Config{
		TickInterval: "16ms",
		Storage: StorageConfig{
			Locations: AssetConfig[*game.LocationMapping]{Path: filepath.Join(dir, "mappings")},
			World: WorldStorageConfig{
				Locations:  AssetConfig[*world.LocationSpec]{Path: filepath.Join(dir, "locations")},
				Characters: AssetConfig[*world.CharacterSpec]{Path: filepath.Join(dir, "characters")},
				Sessions:   AssetConfig[*world.SessionSpec]{Path: filepath.Join(dir, "sessions")},
			},
		},
		Nats: NatsConfig{Port: -1},
	}
}

func TestConfig_Validate(t *testing.T) {
	dir := writeAssets(t)
	negative := -1
	badKinds := []game.CharacterKind{"dragon"}

	tests := map[string]struct {
		mutate  func(*Config)
		expErrs []string
	}{
		"valid": {
			mutate: func(*Config) {},
		},
		"default tick interval": {
			mutate: func(c *Config) { c.TickInterval = "" },
		},
		"bad tick interval": {
			mutate:  func(c *Config) { c.TickInterval = "soon" },
			expErrs: []string{"parsing tick_interval"},
		},
		"zero tick interval": {
			mutate:  func(c *Config) { c.TickInterval = "0s" },
			expErrs: []string{"tick_interval must be positive"},
		},
		"negative cadence": {
			mutate: func(c *Config) {
				c.Tracker.PositionEvery = -1
				c.Tracker.AssociationEvery = -1
			},
			expErrs: []string{"position_every must not be negative", "association_every must not be negative"},
		},
		"negative draw delay": {
			mutate:  func(c *Config) { c.Tracker.MarkerDrawDelay = &negative },
			expErrs: []string{"marker_draw_delay must not be negative"},
		},
		"bad template": {
			mutate:  func(c *Config) { c.Tracker.SummaryTemplate = "{{ .Title" },
			expErrs: []string{"tracker.summary_template"},
		},
		"unknown kind": {
			mutate:  func(c *Config) { c.Tracker.ExcludeKinds = &badKinds },
			expErrs: []string{`unknown kind "dragon"`},
		},
		"missing world path": {
			mutate:  func(c *Config) { c.Storage.World.Sessions.Path = "" },
			expErrs: []string{"world.sessions: path is required"},
		},
		"bad world path": {
			mutate:  func(c *Config) { c.Storage.World.Characters.Path = filepath.Join(dir, "nope") },
			expErrs: []string{"world.characters: invalid path"},
		},
		"optional mappings": {
			mutate: func(c *Config) { c.Storage.Locations.Path = "" },
		},
		"bad nats": {
			mutate: func(c *Config) {
				c.Nats.Port = 70000
				c.Nats.StartTimeout = "later"
			},
			expErrs: []string{"port out of range: 70000", "parsing start_timeout"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := testConfig(dir)
			tt.mutate(cfg)

			err := cfg.Validate()
			if len(tt.expErrs) == 0 {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected errors %v, got nil", tt.expErrs)
			}
			for _, e := range tt.expErrs {
				if !strings.Contains(err.Error(), e) {
					t.Errorf("error %q does not contain %q", err.Error(), e)
				}
			}
		})
	}
}

func TestStorageConfig_BuildMappings(t *testing.T) {
	dir := writeAssets(t)

	cfg := testConfig(dir)
	mappings, err := cfg.Storage.BuildMappings()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "island", mappings["Island"], game.LocationMapping{
		Origin: game.Pixel{X: 10, Y: 10}, ScaleX: 0.5, ScaleY: 0.5,
	})
	_, ok := mappings["Town"]
	testutil.AssertEqual(t, "built-in kept", ok, true)

	cfg.Storage.Locations.Path = ""
	mappings, err = cfg.Storage.BuildMappings()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, ok = mappings["Island"]
	testutil.AssertEqual(t, "defaults only", ok, false)
}

// capturePublisher implements tracker.Publisher for testing
type capturePublisher struct {
	frames []*tracker.Frame
}

func (p *capturePublisher) PublishFrame(_ context.Context, f *tracker.Frame) error {
	p.frames = append(p.frames, f)
	return nil
}

func TestTrackerConfig_BuildManager(t *testing.T) {
	dir := writeAssets(t)
	cfg := testConfig(dir)

	dict, err := cfg.Storage.BuildDictionary()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	w, err := world.NewWorld(dict)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	mappings, err := cfg.Storage.BuildMappings()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	pub := &capturePublisher{}
	m, err := cfg.Tracker.BuildManager(w, mappings, pub)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := m.Tick(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testutil.AssertEqual(t, "frames", len(pub.frames), 1)
	frame := pub.frames[0]
	testutil.AssertEqual(t, "session", frame.SessionId, "farmer")

	v, ok := frame.Entity("Abigail")
	if !ok {
		t.Fatal("expected Abigail in frame")
	}
	if !v.Resolved() {
		t.Fatal("expected Abigail to be resolved")
	}
	testutil.AssertEqual(t, "pixel", *v.Pixel, game.Pixel{X: 495, Y: 300})
	testutil.AssertEqual(t, "state", v.State, game.Associated)
}

func TestBuildWorkers(t *testing.T) {
	dir := writeAssets(t)

	workers, err := BuildWorkers(testConfig(dir))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, name := range []string{"nats", "control", "driver"} {
		if _, ok := workers[name]; !ok {
			t.Errorf("missing worker %q", name)
		}
	}

	_, err = BuildWorkers("not a config")
	testutil.AssertErrorContains(t, err, "unable to cast config")
}
