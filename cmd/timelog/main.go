package main

import (
	"fmt"
	"os"

	"github.com/shibashis07/time-logger/internal/cli"
	"github.com/shibashis07/time-logger/internal/config"
)

func main() {
	// Load configuration: defaults, then the TOML config file, then
	// environment variables. Flags are applied later by the root command.
	cfg, err := config.NewLoader().Load(os.Getenv("TIMELOG_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	root := cli.NewRootCommand(cfg)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
