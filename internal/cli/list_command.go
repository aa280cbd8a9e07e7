package cli

import (
	"context"
	"fmt"

	"github.com/shibashis07/time-logger/internal/engine"
)

// ListCommand handles the list command
type ListCommand struct {
	engine *engine.Engine
}

// NewListCommand creates a new list command handler
func NewListCommand(eng *engine.Engine) *ListCommand {
	return &ListCommand{engine: eng}
}

// Execute runs the list command
func (c *ListCommand) Execute(ctx context.Context, args []string) error {
	view := c.engine.View()

	if len(view.Records) == 0 {
		if c.engine.Scope() == engine.ScopeToday {
			fmt.Printf("No activities logged for %s\n", c.engine.ActiveDay())
		} else {
			fmt.Println("No activities logged")
		}
		return nil
	}

	for _, record := range view.Records {
		fmt.Printf("%s  %s\n", record.ID, record.String())
	}

	total := 0
	for _, record := range view.Records {
		total += record.DurationMinutes
	}
	fmt.Printf("%d activities, %d minutes total\n", len(view.Records), total)
	return nil
}
