package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/raphi011/ta/internal/cache"
	"github.com/raphi011/ta/internal/config"
	"github.com/raphi011/ta/internal/log"
	"github.com/raphi011/ta/internal/output"
	"github.com/raphi011/ta/internal/params"
)

// now is replaced in tests.
var now = time.Now

func newAnalyzeCmd() *cobra.Command {
	var (
		skipCache bool
		format    string
	)

	cmd := &cobra.Command{
		Use:     "analyze",
		Short:   "Manage the cache, then collect analysis parameters",
		Aliases: []string{"a"},
		GroupID: GroupCore,
		Args:    cobra.NoArgs,
		Long: `Start a new analysis run.

First the cache manager lists cached tickers and offers to delete them.
Choosing "Continue to new analysis" moves on to the parameter prompts:
ticker, analysis date, analyst team, research depth and the quick and
deep thinking LLM engines. Choosing "Exit" ends with status 1.

The answers are remembered in ~/.ta/last_run.json and offered as
defaults next time.`,
		Example: `  ta analyze                 # Cache manager, then prompts
  ta analyze --skip-cache    # Go straight to the prompts
  ta analyze -f json         # Print the run plan as JSON`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)
			out := output.FromContext(ctx)
			cfg := config.FromContext(ctx)
			p := prompterFrom(ctx)

			f, err := output.ParseFormat(format)
			if err != nil {
				return err
			}

			if !skipCache {
				proceed, err := cache.NewManager(cfg.CacheDir, p).Run(screenContext(ctx))
				if err != nil {
					return err
				}
				if !proceed {
					l.Println("Exiting...")
					return errExit
				}
			}

			lastPath, err := params.LastRunPath()
			var last params.Selections
			if err == nil {
				last, err = params.LoadLast(lastPath)
			}
			if err != nil {
				l.Printf("Warning: %v\n", err)
			}

			sel, err := params.Collect(p, params.FromConfig(cfg.Analysis).Merge(last), now())
			if errors.Is(err, params.ErrAborted) {
				l.Println("No selection made. Exiting...")
				return errExit
			}
			if err != nil {
				return err
			}

			if lastPath != "" {
				if err := params.SaveLast(lastPath, sel); err != nil {
					l.Printf("Warning: %v\n", err)
				}
			}

			if f != output.FormatText {
				return out.Encode(f, sel)
			}
			printPlan(out, sel, filepath.Join(cfg.CacheDir, sel.Ticker))
			return nil
		},
	}

	cmd.Flags().BoolVar(&skipCache, "skip-cache", false, "Skip the cache manager")
	cmd.Flags().StringVarP(&format, "format", "f", "text", "Output format: text, json, yaml")

	return cmd
}

func printPlan(out *output.Printer, s params.Selections, reportDir string) {
	out.Println("\nAnalysis plan")
	row := func(label, value string) { out.Printf("  %-16s %s\n", label+":", value) }
	row("Ticker", s.Ticker)
	row("Analysis date", s.Date)
	row("Analysts", strings.Join(s.Analysts, ", "))
	row("Research depth", fmt.Sprint(s.ResearchDepth))
	row("Quick model", s.QuickModel)
	row("Deep model", s.DeepModel)
	row("Reports", reportDir+string(filepath.Separator))
}
