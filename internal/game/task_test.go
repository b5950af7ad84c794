package game

import (
	"encoding/json"
	"testing"

	"github.com/pixil98/go-testutil"
)

func TestTaskKind_Text(t *testing.T) {
	tests := map[string]struct {
		text   string
		exp    TaskKind
		expErr bool
	}{
		"delivery":            {text: "delivery", exp: TaskDelivery},
		"lost item":           {text: "lost_item", exp: TaskLostItem},
		"socialize":           {text: "socialize", exp: TaskSocialize},
		"fishing":             {text: "fishing", exp: TaskFishing},
		"slay monster":        {text: "slay_monster", exp: TaskSlayMonster},
		"resource collection": {text: "resource_collection", exp: TaskResourceCollection},
		"generic":             {text: "generic", exp: TaskGeneric},
		"unknown":             {text: "crafting", expErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var k TaskKind
			err := k.UnmarshalText([]byte(tt.text))
			if tt.expErr {
				testutil.AssertErrorContains(t, err, "unknown task kind")
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			testutil.AssertEqual(t, "kind", k, tt.exp)
			testutil.AssertEqual(t, "string", k.String(), tt.text)
		})
	}
}

func TestTaskKind_StringUnknown(t *testing.T) {
	testutil.AssertEqual(t, "string", TaskKind(42).String(), "TaskKind(42)")
}

func TestTask_JSON(t *testing.T) {
	var task Task
	err := json.Unmarshal([]byte(`{"id":"T2","title":"Say hi","kind":"socialize","greet":["Abigail","Sam"]}`), &task)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "kind", task.Kind, TaskSocialize)
	testutil.AssertEqual(t, "greet", len(task.Greet), 2)
}

func TestTaskSummary(t *testing.T) {
	task := Task{Id: "T1", Title: "Bring a gem", Kind: TaskDelivery, Target: "Abigail"}

	s := SummaryOf(task, "Abigail")
	testutil.AssertEqual(t, "id", s.TaskId, "T1")
	testutil.AssertEqual(t, "target", s.Target, "Abigail")
	testutil.AssertEqual(t, "in progress", s.DisplayText(), "Bring a gem (In Progress)")

	task.Completed = true
	testutil.AssertEqual(t, "complete", SummaryOf(task, "Abigail").DisplayText(), "Bring a gem (Complete!)")
}
