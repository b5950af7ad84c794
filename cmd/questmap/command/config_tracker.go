package command

import (
	"fmt"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-questmap/internal/display"
	"github.com/pixil98/go-questmap/internal/game"
	"github.com/pixil98/go-questmap/internal/layout"
	"github.com/pixil98/go-questmap/internal/projection"
	"github.com/pixil98/go-questmap/internal/tracker"
	"github.com/pixil98/go-questmap/internal/world"
)

type TrackerConfig struct {
	PositionEvery    int `json:"position_every"`
	AssociationEvery int `json:"association_every"`

	// Nil keeps the built-in lists; an empty list excludes nothing.
	Exclusions   *[]string             `json:"exclusions"`
	ExcludeKinds *[]game.CharacterKind `json:"exclude_kinds"`

	Spread          SpreadConfig `json:"spread"`
	MarkerDrawDelay *int         `json:"marker_draw_delay"`
	SummaryTemplate string       `json:"summary_template"`
	SummaryWidth    int          `json:"summary_width"`
}

type SpreadConfig struct {
	BaseRadius float64 `json:"base_radius"`
	RadiusStep float64 `json:"radius_step"`
}

func (c *TrackerConfig) validate() error {
	el := errors.NewErrorList()

	if c.PositionEvery < 0 {
		el.Add(fmt.Errorf("tracker.position_every must not be negative"))
	}
	if c.AssociationEvery < 0 {
		el.Add(fmt.Errorf("tracker.association_every must not be negative"))
	}
	if c.MarkerDrawDelay != nil && *c.MarkerDrawDelay < 0 {
		el.Add(fmt.Errorf("tracker.marker_draw_delay must not be negative"))
	}
	if c.Spread.BaseRadius < 0 || c.Spread.RadiusStep < 0 {
		el.Add(fmt.Errorf("tracker.spread radii must not be negative"))
	}
	if c.SummaryWidth < 0 {
		el.Add(fmt.Errorf("tracker.summary_width must not be negative"))
	}
	if c.SummaryTemplate != "" {
		if _, err := display.ParseTemplate(c.SummaryTemplate); err != nil {
			el.Add(fmt.Errorf("tracker.summary_template: %w", err))
		}
	}
	if c.ExcludeKinds != nil {
		for _, k := range *c.ExcludeKinds {
			switch k {
			case game.KindPerson, game.KindMount, game.KindMinor, game.KindPet:
			default:
				el.Add(fmt.Errorf("tracker.exclude_kinds: unknown kind %q", k))
			}
		}
	}

	return el.Err()
}

func (c *TrackerConfig) spreader() layout.Spreader {
	s := layout.NewSpreader()
	if c.Spread.BaseRadius > 0 {
		s.BaseRadius = c.Spread.BaseRadius
	}
	if c.Spread.RadiusStep > 0 {
		s.RadiusStep = c.Spread.RadiusStep
	}
	return s
}

// BuildManager wires a tracker over w. Every session gets its own resolver:
// the host map first, then the legacy handle, then the static table.
func (c *TrackerConfig) BuildManager(w *world.World, mappings map[string]game.LocationMapping, pub tracker.Publisher) (*tracker.Manager, error) {
	width := c.SummaryWidth
	if width == 0 {
		width = display.DefaultWidth
	}
	formatter, err := display.NewSummaryFormatter(c.SummaryTemplate, width)
	if err != nil {
		return nil, fmt.Errorf("creating summary formatter: %w", err)
	}

	opts := []tracker.ManagerOpt{
		tracker.WithResolverFactory(func() *projection.Resolver {
			return projection.NewResolver(
				projection.NewAuthoritative(w),
				projection.NewIndirect(w.LegacyHandle),
				projection.NewTable(mappings, projection.DefaultRules()),
			)
		}),
		tracker.WithFormatter(formatter),
		tracker.WithSpreader(c.spreader()),
		tracker.WithCadence(c.PositionEvery, c.AssociationEvery),
	}
	if c.Exclusions != nil {
		opts = append(opts, tracker.WithExclusions(*c.Exclusions))
	}
	if c.ExcludeKinds != nil {
		opts = append(opts, tracker.WithExcludedKinds(*c.ExcludeKinds))
	}
	if c.MarkerDrawDelay != nil {
		opts = append(opts, tracker.WithMarkerDrawDelay(*c.MarkerDrawDelay))
	}

	return tracker.NewManager(w, pub, opts...), nil
}
