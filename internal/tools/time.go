package tools

import (
	"context"
	"fmt"
	"time"
)

// TimeTool reports the current Unix time in seconds.
type TimeTool struct {
	now func() time.Time
}

// NewTimeTool returns a TimeTool backed by the wall clock.
func NewTimeTool() *TimeTool {
	return &TimeTool{now: time.Now}
}

func (*TimeTool) Name() string        { return string(ToolTime) }
func (*TimeTool) Description() string { return "Returns the current date and time" }

// Execute ignores its input.
func (t *TimeTool) Execute(_ context.Context, _ string) (string, error) {
	now := time.Now
	if t.now != nil {
		now = t.now
	}

	secs := now().Unix()
	if secs < 0 {
		secs = 0
	}
	return fmt.Sprintf("Unix timestamp: %d seconds since epoch", secs), nil
}
