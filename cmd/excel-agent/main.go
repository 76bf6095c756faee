// Package main is the interactive DeepSeek Excel agent.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/avaldes/excel-agent/pkg/agent"
	configpkg "github.com/avaldes/excel-agent/pkg/config"
	loggerpkg "github.com/avaldes/excel-agent/pkg/logger"
)

// main is the program entry point.
func main() {
	cfg, err := parseCLIConfig()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	appLogger := loggerpkg.NewWriterLogger(os.Stderr)
	app, err := agent.New(context.Background(), cfg, agent.WithLogger(appLogger))
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := runREPL(app, os.Stdin, os.Stdout); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// parseCLIConfig loads env + flags into runtime config.
func parseCLIConfig() (configpkg.Config, error) {
	_ = godotenv.Load()

	configFile := flag.String("config", "", "Optional YAML file with model, temperature, max_tokens, persona")
	verbose := flag.Bool("verbose", false, "Verbose debug logging to stderr")
	flag.Parse()

	cfg := configpkg.Default()
	if *configFile != "" {
		var err error
		cfg, err = configpkg.LoadFile(cfg, *configFile)
		if err != nil {
			return configpkg.Config{}, err
		}
	}
	cfg = configpkg.FromEnv(cfg)
	cfg.Verbose = *verbose
	return cfg, nil
}
