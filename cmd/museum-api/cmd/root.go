// Package cmd is the command line of the museum API server.
package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/Jasch-M/asyncmuseum/internal/config"
	"github.com/Jasch-M/asyncmuseum/internal/logger"
)

type rootOptions struct {
	envFile  string
	logLevel string
}

// NewRootCmd builds the command tree. Without a subcommand it serves.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	serve := newServeCmd(opts)
	root := &cobra.Command{
		Use:           "museum-api",
		Short:         "Museum website backend: exhibits, events, visitor info, contact and login",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          serve.RunE,
	}

	root.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "dotenv file loaded before reading the environment")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "minimum log level (debug, info, warn, error); overrides LOG_LEVEL")

	root.AddCommand(serve)
	root.AddCommand(newMigrateCmd(opts))
	return root
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// bootstrap loads .env and the environment, then opens the logger.
func (o *rootOptions) bootstrap(name string) (*config.Config, *logger.Logger, error) {
	if o.envFile != "" {
		if err := godotenv.Load(o.envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, nil, fmt.Errorf("load %s: %w", o.envFile, err)
		}
	}

	cfg := config.Load()
	levelName := cfg.Log.Level
	if o.logLevel != "" {
		levelName = o.logLevel
	}
	level, err := logger.ParseLevel(levelName)
	if err != nil {
		return nil, nil, err
	}

	log, err := logger.NewLogger(logger.Options{Dir: cfg.Log.Dir, Name: name, MinLevel: level})
	if err != nil {
		return nil, nil, err
	}
	return cfg, log, nil
}
