package tracker

import (
	"slices"

	"github.com/pixil98/go-questmap/internal/display"
	"github.com/pixil98/go-questmap/internal/game"
	"github.com/pixil98/go-questmap/internal/layout"
	"github.com/pixil98/go-questmap/internal/projection"
)

type ManagerOpt func(*Manager)

// WithResolverFactory sets how each session's resolver is built. Every
// session gets its own resolver.
func WithResolverFactory(f func() *projection.Resolver) ManagerOpt {
	return func(m *Manager) {
		m.newResolver = f
	}
}

// WithFormatter sets the summary formatter used for entity hover text.
func WithFormatter(f *display.SummaryFormatter) ManagerOpt {
	return func(m *Manager) {
		m.formatter = f
	}
}

// WithSpreader sets the overlap spreading radii.
func WithSpreader(s layout.Spreader) ManagerOpt {
	return func(m *Manager) {
		m.spreader = s
	}
}

// WithExclusions replaces the default exclusion list.
func WithExclusions(names []string) ManagerOpt {
	return func(m *Manager) {
		m.exclusions = slices.Clone(names)
	}
}

// WithExcludedKinds replaces the default excluded character kinds.
func WithExcludedKinds(kinds []game.CharacterKind) ManagerOpt {
	return func(m *Manager) {
		m.excludeKinds = slices.Clone(kinds)
	}
}

// WithCadence sets how many ticks pass between position and association
// refreshes. Values below one are ignored.
func WithCadence(positionEvery, associationEvery int) ManagerOpt {
	return func(m *Manager) {
		if positionEvery > 0 {
			m.positionEvery = uint64(positionEvery)
		}
		if associationEvery > 0 {
			m.associationEvery = uint64(associationEvery)
		}
	}
}

// WithMarkerDrawDelay sets how long a marker hides after a location change.
func WithMarkerDrawDelay(delay int) ManagerOpt {
	return func(m *Manager) {
		if delay >= 0 {
			m.markerDelay = delay
		}
	}
}
