package world

import (
	"fmt"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-questmap/internal/game"
)

// TaskSpec is a task in a session's log. A positive CompleteAfter marks the
// task completed once the world has run that many ticks.
type TaskSpec struct {
	game.Task     `yaml:",inline"`
	CompleteAfter int `json:"complete_after,omitempty" yaml:"complete_after,omitempty"`
}

// SessionSpec defines a viewing session loaded from asset files.
type SessionSpec struct {
	Name      string     `json:"name" yaml:"name"`
	Local     bool       `json:"local" yaml:"local"`
	Route     []Waypoint `json:"route" yaml:"route"`
	Tasks     []TaskSpec `json:"tasks,omitempty" yaml:"tasks,omitempty"`
	NoTaskLog bool       `json:"no_task_log,omitempty" yaml:"no_task_log,omitempty"`
}

// Validate satisfies storage.ValidatingSpec.
func (s *SessionSpec) Validate() error {
	el := errors.NewErrorList()

	if s.Name == "" {
		el.Add(fmt.Errorf("session name is required"))
	}
	el.Add(validateRoute(s.Route))

	seen := map[string]bool{}
	for i, t := range s.Tasks {
		if t.Id == "" {
			el.Add(fmt.Errorf("task %d: id is required", i))
			continue
		}
		if seen[t.Id] {
			el.Add(fmt.Errorf("task %d: duplicate id %s", i, t.Id))
		}
		seen[t.Id] = true
		if t.CompleteAfter < 0 {
			el.Add(fmt.Errorf("task %s: complete_after must not be negative", t.Id))
		}
	}
	if s.NoTaskLog && len(s.Tasks) > 0 {
		el.Add(fmt.Errorf("no_task_log conflicts with tasks"))
	}

	return el.Err()
}

// Resolve binds the route's location references.
func (s *SessionSpec) Resolve(dict *Dictionary) error {
	return resolveRoute(s.Route, dict)
}

// Session is a live viewing session.
type Session struct {
	id    string
	spec  *SessionSpec
	loc   *Location
	tile  game.Tile
	walk  walker
	tasks []TaskSpec
}

func (s *Session) info() game.SessionInfo {
	return game.SessionInfo{
		Id:       s.id,
		Name:     s.spec.Name,
		Location: s.loc,
		Tile:     s.tile,
		Local:    s.spec.Local,
	}
}

func (s *Session) taskLog() ([]game.Task, bool) {
	if s.spec.NoTaskLog {
		return nil, false
	}
	out := make([]game.Task, len(s.tasks))
	for i, t := range s.tasks {
		out[i] = t.Task
	}
	return out, true
}

// completeDue marks tasks whose time has come and reports how many changed.
func (s *Session) completeDue(tick uint64) int {
	n := 0
	for i := range s.tasks {
		t := &s.tasks[i]
		if t.Completed || t.CompleteAfter <= 0 || tick < uint64(t.CompleteAfter) {
			continue
		}
		t.Completed = true
		n++
	}
	return n
}
