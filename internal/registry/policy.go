package registry

import (
	"log/slog"

	"github.com/pixil98/go-questmap/internal/game"
)

// DefaultExclusions are names that show up as social characters but are not
// worth tracking.
var DefaultExclusions = []string{"Henchman", "Bouncer", "Mister Qi", "Birdie"}

// DefaultExcludedKinds are character kinds never tracked.
var DefaultExcludedKinds = []game.CharacterKind{game.KindMount, game.KindMinor}

// Policy decides which characters are tracked.
type Policy struct {
	excluded      map[string]struct{}
	excludedKinds map[game.CharacterKind]struct{}
}

// NewPolicy creates a policy that skips the given names and kinds. Names are
// matched exactly and case-sensitively.
func NewPolicy(names []string, kinds []game.CharacterKind) *Policy {
	p := &Policy{
		excluded:      make(map[string]struct{}, len(names)),
		excludedKinds: make(map[game.CharacterKind]struct{}, len(kinds)),
	}
	for _, n := range names {
		if n != "" {
			p.excluded[n] = struct{}{}
		}
	}
	for _, k := range kinds {
		p.excludedKinds[k] = struct{}{}
	}
	return p
}

// DefaultPolicy returns a policy with the default exclusions.
func DefaultPolicy() *Policy {
	return NewPolicy(DefaultExclusions, DefaultExcludedKinds)
}

// Eligible reports whether c should be tracked.
func (p *Policy) Eligible(c game.Character) bool {
	if c == nil || c.Name() == "" {
		return false
	}
	if _, ok := p.excluded[c.Name()]; ok {
		return false
	}
	if !c.Visible() {
		return false
	}
	if c.Category() != game.CategorySocial {
		return false
	}
	if _, ok := p.excludedKinds[c.Kind()]; ok {
		return false
	}
	return true
}

// Exclude adds name to the exclusion list.
func (p *Policy) Exclude(name string) {
	if name == "" {
		return
	}
	p.excluded[name] = struct{}{}
	slog.Debug("excluded from tracking", "name", name)
}

// Include removes name from the exclusion list.
func (p *Policy) Include(name string) {
	if name == "" {
		return
	}
	delete(p.excluded, name)
	slog.Debug("included in tracking", "name", name)
}

// ExclusionCount returns the number of excluded names.
func (p *Policy) ExclusionCount() int {
	return len(p.excluded)
}
