package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"tasklist/internal/config"
	"tasklist/internal/logging"
	"tasklist/internal/storage"
	"tasklist/internal/tasks"
	"tasklist/internal/ui"
)

// app is everything a command needs once flags are parsed.
type app struct {
	configPath string
	verbose    bool

	cfg    config.Config
	logger *zap.Logger
	store  *storage.Store
	svc    *tasks.Service
}

func (a *app) open() error {
	if a.configPath == "" {
		a.configPath = config.ResolveConfigPath()
	}
	cfg, err := config.LoadOrCreate(a.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	a.cfg = cfg

	a.logger, err = logging.New(cfg.LogPath, cfg.LogLevel, a.verbose)
	if err != nil {
		return err
	}

	a.store, err = storage.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	a.logger.Debug("store opened", zap.String("db", cfg.DBPath), zap.String("key", cfg.StoreKey))

	a.svc = tasks.NewService(tasks.NewSnapshot(a.store, cfg.StoreKey), tasks.WithLogger(a.logger))
	return nil
}

func (a *app) close() {
	if a.store != nil {
		a.store.Close()
	}
	if a.logger != nil {
		_ = a.logger.Sync()
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "todo",
		Short: "A small local task list",
		Long: `todo keeps a list of short tasks in a local SQLite file.

Run without arguments to open the interactive list.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.open()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			a.close()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return ui.Run(a.svc, a.cfg, a.logger)
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default $TODO_CONFIG or user config dir)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(
		newAddCmd(a),
		newListCmd(a),
		newToggleCmd(a),
		newEditCmd(a),
		newRmCmd(a),
	)
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
