package game

import "fmt"

// TaskKind is the closed set of task variants. Each kind decides how its
// target entities are found; TaskGeneric is the default branch.
type TaskKind int

const (
	TaskGeneric TaskKind = iota
	TaskDelivery
	TaskLostItem
	TaskSocialize
	TaskFishing
	TaskSlayMonster
	TaskResourceCollection
)

var taskKindNames = map[TaskKind]string{
	TaskGeneric:            "generic",
	TaskDelivery:           "delivery",
	TaskLostItem:           "lost_item",
	TaskSocialize:          "socialize",
	TaskFishing:            "fishing",
	TaskSlayMonster:        "slay_monster",
	TaskResourceCollection: "resource_collection",
}

func (k TaskKind) String() string {
	if s, ok := taskKindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("TaskKind(%d)", int(k))
}

func (k TaskKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *TaskKind) UnmarshalText(text []byte) error {
	for kind, name := range taskKindNames {
		if name == string(text) {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("unknown task kind: %s", text)
}

// Task is one entry of an actor's task log. Tasks belong to the host; the
// tracker only reads them.
type Task struct {
	Id          string   `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	Completed   bool     `json:"completed" yaml:"completed"`
	Kind        TaskKind `json:"kind" yaml:"kind"`

	// Target is the structured target for Delivery, LostItem, Fishing,
	// SlayMonster and ResourceCollection tasks.
	Target string `json:"target,omitempty" yaml:"target,omitempty"`

	// Greet lists the entities a Socialize task asks to visit.
	Greet []string `json:"greet,omitempty" yaml:"greet,omitempty"`
}

// TaskSource yields the task log of one actor. ok is false when the actor has
// no task log at all, which is distinct from an empty log.
type TaskSource interface {
	TaskLog(actorId string) (tasks []Task, ok bool)
}

// TaskSummary is the part of a task attached to an associated entity.
type TaskSummary struct {
	TaskId    string   `json:"task_id"`
	Title     string   `json:"title"`
	Kind      TaskKind `json:"kind"`
	Completed bool     `json:"completed"`
	Target    string   `json:"target"`
}

// SummaryOf builds the summary of t as attached to target.
func SummaryOf(t Task, target string) TaskSummary {
	return TaskSummary{
		TaskId:    t.Id,
		Title:     t.Title,
		Kind:      t.Kind,
		Completed: t.Completed,
		Target:    target,
	}
}

// Status is the short progress label shown next to a summary.
func (s TaskSummary) Status() string {
	if s.Completed {
		return "(Complete!)"
	}
	return "(In Progress)"
}

// DisplayText is the default one-line rendering of a summary.
func (s TaskSummary) DisplayText() string {
	return s.Title + " " + s.Status()
}
