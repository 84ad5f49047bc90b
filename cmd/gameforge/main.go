package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"gameforge/internal/catalog"
	"gameforge/internal/config"
	"gameforge/internal/logging"
	"gameforge/internal/projectmanager"
)

// cli holds state shared by all subcommands. The config is loaded before any
// command runs; the manager is opened on first use.
type cli struct {
	configPath string
	verbose    bool

	cfg     *config.Config
	logger  zerolog.Logger
	manager *projectmanager.Manager
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	rootCmd := &cobra.Command{
		Use:   "gameforge",
		Short: "Generate playable browser games from templates",
		Long: `GameForge turns a catalog of game templates into ready-to-run HTML5 projects.
Pick a template, choose a theme, difficulty, mechanics and visuals, and GameForge
renders the code and fills in story, asset and gameplay descriptions.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.loadConfig()
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if c.manager != nil {
				return c.manager.Close()
			}
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVarP(&c.configPath, "config", "c", "", "Path to a YAML config file (GAMEFORGE_* env vars override it)")
	rootCmd.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "Log at debug level")

	rootCmd.AddCommand(c.templatesCmd())
	rootCmd.AddCommand(c.generateCmd())
	rootCmd.AddCommand(c.projectsCmd())
	return rootCmd
}

func (c *cli) loadConfig() error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	// Logs go to stderr so command output stays clean.
	cfg.Logging.Output = "stderr"
	cfg.Logging.Format = "console"
	if c.verbose {
		cfg.Logging.Level = "debug"
	} else {
		cfg.Logging.Level = "warn"
	}
	c.cfg = cfg
	c.logger = logging.WithComponent(logging.New(cfg.Logging), "cli")
	return nil
}

func (c *cli) catalog() (*catalog.Catalog, error) {
	if c.manager != nil {
		return c.manager.Catalog(), nil
	}
	return projectmanager.LoadCatalog(c.cfg, c.logger)
}

func (c *cli) open(ctx context.Context) (*projectmanager.Manager, error) {
	if c.manager != nil {
		return c.manager, nil
	}
	m, err := projectmanager.Open(ctx, c.cfg, c.logger)
	if err != nil {
		return nil, fmt.Errorf("initializing: %w", err)
	}
	c.manager = m
	return m, nil
}
