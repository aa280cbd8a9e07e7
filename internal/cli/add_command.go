package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/shibashis07/time-logger/internal/engine"
	"github.com/shibashis07/time-logger/internal/errors"
)

// AddCommand handles the add command
type AddCommand struct {
	engine       *engine.Engine
	errorHandler *ErrorHandler
}

// NewAddCommand creates a new add command handler
func NewAddCommand(eng *engine.Engine) *AddCommand {
	return &AddCommand{
		engine:       eng,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the add command. The last two arguments are the start and
// end clock times; everything before them is the activity name.
func (c *AddCommand) Execute(ctx context.Context, args []string) error {
	if len(args) < 3 {
		return errors.NewInvalidInputError("command", "add", "usage: timelog add \"activity name\" HH:MM HH:MM")
	}

	activity := strings.Join(args[:len(args)-2], " ")
	startTime := args[len(args)-2]
	endTime := args[len(args)-1]

	record, err := c.engine.Submit(ctx, engine.Input{
		Activity:  activity,
		StartTime: startTime,
		EndTime:   endTime,
	})
	if err != nil {
		return c.errorHandler.Handle("log activity", err)
	}

	fmt.Printf("Logged %s (%d minutes)\n", record.String(), record.DurationMinutes)
	return nil
}
