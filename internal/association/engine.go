package association

import (
	"log/slog"
	"slices"

	"github.com/pixil98/go-questmap/internal/game"
	"github.com/pixil98/go-questmap/internal/registry"
)

type cachedEntity struct {
	state     game.AssociationState
	summaries []game.TaskSummary
}

// Engine derives each entity's association state from a task log. It keeps
// the outcome of the last full pass and reuses it while the log's
// fingerprint stays the same.
type Engine struct {
	fingerprint uint64
	cache       map[string]cachedEntity

	recomputes int
	reapplies  int
}

// New creates an engine with nothing cached.
func New() *Engine {
	return &Engine{}
}

// Update brings every entity in reg in line with tasks and reports whether a
// full recompute ran. An empty registry is left alone.
func (e *Engine) Update(reg *registry.Registry, tasks []game.Task) bool {
	if reg == nil || reg.Len() == 0 {
		return false
	}

	// Work from a private copy so the fingerprint and the pass see the same log.
	snapshot := slices.Clone(tasks)
	fp := Fingerprint(snapshot)

	if e.cache != nil && fp == e.fingerprint {
		e.reapply(reg)
		e.reapplies++
		return false
	}

	e.recompute(reg, snapshot)
	e.fingerprint = fp
	e.recomputes++

	slog.Debug("associations recomputed", "tasks", len(snapshot), "entities", reg.Len(), "associated", e.associatedCount())
	return true
}

func (e *Engine) recompute(reg *registry.Registry, tasks []game.Task) {
	reg.ForEach(func(ent *registry.Entity) {
		ent.ResetAssociations()
	})

	idx := NewNameIndex(reg.Ids())
	for _, t := range tasks {
		for _, target := range Targets(t, idx) {
			ent, ok := reg.Get(target)
			if !ok {
				continue
			}
			ent.Associate(game.SummaryOf(t, target))
		}
	}

	e.cache = make(map[string]cachedEntity, reg.Len())
	reg.ForEach(func(ent *registry.Entity) {
		e.cache[ent.Id] = cachedEntity{
			state:     ent.State,
			summaries: slices.Clone(ent.Associations),
		}
	})
}

func (e *Engine) reapply(reg *registry.Registry) {
	reg.ForEach(func(ent *registry.Entity) {
		c, ok := e.cache[ent.Id]
		if !ok {
			ent.ResetAssociations()
			return
		}
		ent.Restore(c.state, slices.Clone(c.summaries))
	})
}

func (e *Engine) associatedCount() int {
	n := 0
	for _, c := range e.cache {
		if c.state != game.Idle {
			n++
		}
	}
	return n
}

// Invalidate drops the cached pass so the next Update recomputes.
func (e *Engine) Invalidate() {
	e.cache = nil
}

// Fingerprint returns the fingerprint of the last recomputed log.
func (e *Engine) Fingerprint() (uint64, bool) {
	return e.fingerprint, e.cache != nil
}

// Recomputes returns how many full passes have run.
func (e *Engine) Recomputes() int {
	return e.recomputes
}

// Reapplies returns how many times the cached pass was reused.
func (e *Engine) Reapplies() int {
	return e.reapplies
}
