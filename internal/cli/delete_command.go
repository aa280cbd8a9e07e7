package cli

import (
	"context"
	"fmt"

	"github.com/shibashis07/time-logger/internal/engine"
	"github.com/shibashis07/time-logger/internal/errors"
)

// DeleteCommand handles the delete command
type DeleteCommand struct {
	engine       *engine.Engine
	errorHandler *ErrorHandler
}

// NewDeleteCommand creates a new delete command handler
func NewDeleteCommand(eng *engine.Engine) *DeleteCommand {
	return &DeleteCommand{
		engine:       eng,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the delete command
func (c *DeleteCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewInvalidInputError("command", "delete", "usage: timelog delete RECORD_ID")
	}

	id := args[0]
	if err := c.engine.Delete(ctx, id); err != nil {
		if c.errorHandler.IsNotFoundError(err) {
			return c.errorHandler.HandleSimple(err)
		}
		return c.errorHandler.Handle("delete activity", err)
	}

	fmt.Printf("Deleted activity %s\n", id)
	return nil
}
