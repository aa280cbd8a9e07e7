package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/shibashis07/time-logger/internal/aggregate"
	"github.com/shibashis07/time-logger/internal/engine"
)

// maxBarWidth is the width of the longest bar in the terminal chart.
const maxBarWidth = 40

// ChartCommand handles the chart command
type ChartCommand struct {
	engine *engine.Engine
}

// NewChartCommand creates a new chart command handler
func NewChartCommand(eng *engine.Engine) *ChartCommand {
	return &ChartCommand{engine: eng}
}

// Execute runs the chart command
func (c *ChartCommand) Execute(ctx context.Context, args []string) error {
	view := c.engine.View()

	if len(view.Buckets) == 0 {
		fmt.Println("Nothing to chart")
		return nil
	}

	labelWidth := 0
	largest := 0
	for _, bucket := range view.Buckets {
		if len(bucket.Label) > labelWidth {
			labelWidth = len(bucket.Label)
		}
		if bucket.TotalMinutes > largest {
			largest = bucket.TotalMinutes
		}
	}

	for i, bucket := range view.Buckets {
		width := bucket.TotalMinutes * maxBarWidth / largest
		if width < 1 {
			width = 1
		}
		bar := strings.Repeat("█", width)
		fmt.Printf("%-*s  %s %dm  %s\n", labelWidth, bucket.Label, bar, bucket.TotalMinutes, aggregate.Color(i))
	}

	fmt.Printf("Total: %dm\n", aggregate.TotalMinutes(view.Buckets))
	return nil
}
