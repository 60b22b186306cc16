package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/raphi011/ta/internal/config"
	"github.com/raphi011/ta/internal/log"
	"github.com/raphi011/ta/internal/output"
	"github.com/raphi011/ta/internal/ui/styles"
)

var (
	// Global flags
	verbose  bool
	quiet    bool
	cacheDir string
)

// errExit ends the program with status 1 without printing an error.
var errExit = errors.New("exit")

// Command group IDs for organizing help output
const (
	GroupCore    = "core"
	GroupCache   = "cache"
	GroupUtility = "utility"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ta",
	Short: "Trading analysis front end with data cache management",
	Long: `ta collects the parameters of a trading analysis run and manages the
local per-ticker data cache used by the analysis pipeline.

Before each analysis the cache manager lists cached tickers and lets you
delete stale data, continue to a new analysis, or exit.`,
	SilenceUsage:               true,
	SilenceErrors:              true,
	SuggestionsMinimumDistance: 2, // Enable typo suggestions
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "completion" || cmd.Name() == "__complete" || cmd.Name() == "help" {
			return nil
		}
		return setup(cmd)
	},
	// Run is not set - shows help when no subcommand provided
}

// setup attaches the logger and the effective config to the command
// context once flags are parsed.
func setup(cmd *cobra.Command) error {
	ctx := cmd.Context()
	ctx = log.WithLogger(ctx, log.New(os.Stderr, verbose, quiet))

	cfg, err := config.FromContext(ctx).WithCacheDir(cacheDir)
	if err != nil {
		return fmt.Errorf("--cache-dir: %w", err)
	}
	ctx = config.WithConfig(ctx, &cfg)
	styles.Init(cfg.Theme)

	log.FromContext(ctx).Debug("config", "cache_dir", cfg.CacheDir, "theme", cfg.Theme)
	cmd.SetContext(ctx)
	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	// Load config
	loadedCfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	// Create context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	ctx = config.WithConfig(ctx, &loadedCfg)

	// Add output printer (stdout for primary data)
	ctx = output.WithPrinter(ctx, os.Stdout)

	// Store context for commands to use
	rootCmd.SetContext(ctx)

	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, errExit) {
			cancel()
			os.Exit(1)
		}
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Run 'ta -h' for help")
		cancel()
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show debug output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all log output")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")
	rootCmd.PersistentFlags().StringVar(&cacheDir, "cache-dir", "", "Override the data cache directory (env: "+config.EnvCacheDir+")")

	// Version flag
	rootCmd.Version = versionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	rootCmd.AddGroup(
		&cobra.Group{ID: GroupCore, Title: "Core Commands:"},
		&cobra.Group{ID: GroupCache, Title: "Cache Commands:"},
		&cobra.Group{ID: GroupUtility, Title: "Utility Commands:"},
	)

	// Core commands
	rootCmd.AddCommand(newAnalyzeCmd())
	rootCmd.AddCommand(newReportCmd())

	// Cache commands
	rootCmd.AddCommand(newCacheCmd())

	// Utility commands
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newVersionCmd())
}
