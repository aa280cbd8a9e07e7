package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/shibashis07/time-logger/internal/engine"
)

// ExportCommand handles the export command
type ExportCommand struct {
	engine       *engine.Engine
	errorHandler *ErrorHandler
}

// NewExportCommand creates a new export command handler
func NewExportCommand(eng *engine.Engine) *ExportCommand {
	return &ExportCommand{
		engine:       eng,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the export command. An optional first argument names the
// output path; "-" writes to stdout. With no argument the file is written
// to the configured export filename in the working directory.
func (c *ExportCommand) Execute(ctx context.Context, args []string) error {
	csv, err := c.engine.ExportView()
	if err != nil {
		return c.errorHandler.Handle("export activities", err)
	}

	path := c.engine.ExportFilename()
	if len(args) > 0 && args[0] != "" {
		path = args[0]
	}

	if path == "-" {
		fmt.Print(csv)
		return nil
	}

	if err := os.WriteFile(path, []byte(csv), 0644); err != nil {
		return fmt.Errorf("failed to write export file: %w", err)
	}

	fmt.Printf("Exported %d activities to %s\n", len(c.engine.View().Records), path)
	return nil
}
