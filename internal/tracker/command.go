package tracker

import (
	"encoding/json"
	"fmt"
)

// CommandOp names a control operation.
type CommandOp string

const (
	OpExclude    CommandOp = "exclude"
	OpInclude    CommandOp = "include"
	OpInvalidate CommandOp = "invalidate"
)

// Command is a control message applied on the tick goroutine.
type Command struct {
	Op   CommandOp `json:"op"`
	Name string    `json:"name,omitempty"`
}

// ParseCommand decodes and checks a JSON control message.
func ParseCommand(data []byte) (Command, error) {
	var c Command
	if err := json.Unmarshal(data, &c); err != nil {
		return Command{}, fmt.Errorf("decoding command: %w", err)
	}

	switch c.Op {
	case OpExclude, OpInclude:
		if c.Name == "" {
			return Command{}, fmt.Errorf("%s requires a name", c.Op)
		}
	case OpInvalidate:
	default:
		return Command{}, fmt.Errorf("unknown command op: %q", c.Op)
	}

	return c, nil
}
