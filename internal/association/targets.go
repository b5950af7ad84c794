package association

import (
	"strings"

	"github.com/pixil98/go-questmap/internal/game"
	"golang.org/x/text/cases"
)

// NameIndex finds entity names mentioned in free text. Matching is a
// case-insensitive substring test, so a word that merely contains a name
// (e.g. "Samples" for "Sam") matches too.
type NameIndex struct {
	names  []string
	folded []string
	caser  cases.Caser
}

// NewNameIndex indexes names in the given order.
func NewNameIndex(names []string) *NameIndex {
	idx := &NameIndex{
		names:  names,
		folded: make([]string, len(names)),
		caser:  cases.Fold(),
	}
	for i, n := range names {
		idx.folded[i] = idx.caser.String(n)
	}
	return idx
}

// Mentions returns every indexed name found in any of texts.
func (idx *NameIndex) Mentions(texts ...string) []string {
	var found []string
	for _, text := range texts {
		if text == "" {
			continue
		}
		folded := idx.caser.String(text)
		for i, name := range idx.folded {
			if name != "" && strings.Contains(folded, name) {
				found = append(found, idx.names[i])
			}
		}
	}
	return found
}

// Targets returns the entity ids t points at, without duplicates. Structured
// fields are used where the kind has them; anything left without a target
// falls back to scanning the title and description.
func Targets(t game.Task, idx *NameIndex) []string {
	var targets []string

	switch t.Kind {
	case game.TaskDelivery, game.TaskLostItem:
		targets = appendName(targets, t.Target)
	case game.TaskFishing, game.TaskSlayMonster, game.TaskResourceCollection:
		targets = appendName(targets, t.Target)
		if len(targets) > 0 {
			targets = append(targets, idx.Mentions(t.Description)...)
		}
	case game.TaskSocialize:
		for _, n := range t.Greet {
			targets = appendName(targets, n)
		}
	case game.TaskGeneric:
		// Generic tasks only have free text.
	}

	if len(targets) == 0 {
		targets = idx.Mentions(t.Title, t.Description)
	}

	return dedupe(targets)
}

func appendName(names []string, n string) []string {
	if n == "" {
		return names
	}
	return append(names, n)
}

func dedupe(names []string) []string {
	if len(names) < 2 {
		return names
	}
	seen := make(map[string]bool, len(names))
	out := names[:0]
	for _, n := range names {
		if seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}
