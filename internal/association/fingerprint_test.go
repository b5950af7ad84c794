package association

import (
	"testing"

	"github.com/pixil98/go-questmap/internal/game"
)

func TestFingerprint_Sensitivity(t *testing.T) {
	base := []game.Task{
		{Id: "t1", Title: "Deliver a gem", Kind: game.TaskDelivery, Target: "Abigail"},
		{Id: "t2", Title: "Catch a fish", Kind: game.TaskFishing, Target: "Willy"},
	}

	tests := map[string]struct {
		mutate    func([]game.Task) []game.Task
		expChange bool
	}{
		"unchanged copy": {
			mutate:    func(ts []game.Task) []game.Task { return ts },
			expChange: false,
		},
		"completion toggled": {
			mutate: func(ts []game.Task) []game.Task {
				ts[1].Completed = true
				return ts
			},
			expChange: true,
		},
		"task added": {
			mutate: func(ts []game.Task) []game.Task {
				return append(ts, game.Task{Id: "t3"})
			},
			expChange: true,
		},
		"task removed": {
			mutate:    func(ts []game.Task) []game.Task { return ts[:1] },
			expChange: true,
		},
		"tasks reordered": {
			mutate: func(ts []game.Task) []game.Task {
				return []game.Task{ts[1], ts[0]}
			},
			expChange: true,
		},
		"id changed": {
			mutate: func(ts []game.Task) []game.Task {
				ts[0].Id = "t9"
				return ts
			},
			expChange: true,
		},
		"title edits are ignored": {
			mutate: func(ts []game.Task) []game.Task {
				ts[0].Title = "Deliver two gems"
				return ts
			},
			expChange: false,
		},
	}

	want := Fingerprint(base)
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			cp := make([]game.Task, len(base))
			copy(cp, base)
			got := Fingerprint(tt.mutate(cp))
			if (got != want) != tt.expChange {
				t.Errorf("fingerprint changed = %v, expected %v", got != want, tt.expChange)
			}
		})
	}
}

func TestFingerprint_EmptyVersusNil(t *testing.T) {
	if Fingerprint(nil) != Fingerprint([]game.Task{}) {
		t.Error("nil and empty logs should fingerprint the same")
	}
	if Fingerprint(nil) == Fingerprint([]game.Task{{Id: ""}}) {
		t.Error("a log with one task must differ from an empty log")
	}
}

func TestFingerprint_IdBoundaries(t *testing.T) {
	a := []game.Task{{Id: "ab"}, {Id: "c"}}
	b := []game.Task{{Id: "a"}, {Id: "bc"}}
	if Fingerprint(a) == Fingerprint(b) {
		t.Error("id boundaries should be part of the fingerprint")
	}
}
