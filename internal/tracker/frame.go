package tracker

import (
	"context"

	"github.com/pixil98/go-questmap/internal/game"
)

// EntityView is one tracked entity as a renderer sees it. Pixel is nil when
// no projection tier could place the entity.
type EntityView struct {
	Id         string                `json:"id"`
	InstanceId string                `json:"instance_id"`
	Location   string                `json:"location"`
	Pixel      *game.Pixel           `json:"pixel,omitempty"`
	State      game.AssociationState `json:"state"`
	Layer      int                   `json:"layer"`
	Stack      int                   `json:"stack"`
	Summaries  []game.TaskSummary    `json:"summaries,omitempty"`
	Text       []string              `json:"text,omitempty"`
}

// Resolved reports whether the entity has an overlay position.
func (v EntityView) Resolved() bool {
	return v.Pixel != nil
}

// MarkerView is one visible session marker.
type MarkerView struct {
	SessionId string     `json:"session_id"`
	Name      string     `json:"name"`
	Pixel     game.Pixel `json:"pixel"`
	Layer     int        `json:"layer"`
	Local     bool       `json:"local"`
}

// Frame is everything one session's overlay draws. Resolved entities come
// first in ascending layer order, then unresolved ones by id.
type Frame struct {
	SessionId string       `json:"session_id"`
	Tick      uint64       `json:"tick"`
	Entities  []EntityView `json:"entities"`
	Markers   []MarkerView `json:"markers"`
}

// Entity returns the view of id.
func (f *Frame) Entity(id string) (EntityView, bool) {
	for _, v := range f.Entities {
		if v.Id == id {
			return v, true
		}
	}
	return EntityView{}, false
}

// Publisher delivers frames to the session's renderer.
type Publisher interface {
	PublishFrame(ctx context.Context, f *Frame) error
}
