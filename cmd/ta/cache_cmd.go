package main

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/raphi011/ta/internal/cache"
	"github.com/raphi011/ta/internal/config"
	"github.com/raphi011/ta/internal/log"
	"github.com/raphi011/ta/internal/output"
	"github.com/raphi011/ta/internal/params"
	"github.com/raphi011/ta/internal/ui/static"
)

// maxPathWidth bounds the PATH column of `ta cache list`.
const maxPathWidth = 60

func newCacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "cache",
		Short:   "Manage cached ticker data",
		Aliases: []string{"c"},
		GroupID: GroupCache,
		Args:    cobra.NoArgs,
		Long: `Manage the per-ticker data cache.

Without a subcommand, starts the interactive cache manager which lists
cached tickers and lets you delete them one at a time.

Two layouts are recognized in the cache directory:
  <TICKER>/                        full analysis data (reports, history)
  <TICKER>-YFin-data-<range>.csv   market data only (older layout)`,
		Example: `  ta cache                 # Interactive cache manager
  ta cache list            # List cached tickers
  ta cache list -f json    # List as JSON
  ta cache rm TSLA         # Delete TSLA after confirmation
  ta cache path --copy     # Print and copy the cache directory`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := config.FromContext(ctx)

			proceed, err := cache.NewManager(cfg.CacheDir, prompterFrom(ctx)).Run(screenContext(ctx))
			if err != nil {
				return err
			}
			if proceed {
				log.FromContext(ctx).Println("Run 'ta analyze --skip-cache' to start a new analysis.")
			}
			return nil
		},
	}

	cmd.AddCommand(newCacheListCmd())
	cmd.AddCommand(newCacheRmCmd())
	cmd.AddCommand(newCachePathCmd())

	return cmd
}

func newCacheListCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:     "list",
		Short:   "List cached tickers",
		Aliases: []string{"ls"},
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			f, err := output.ParseFormat(format)
			if err != nil {
				return err
			}

			entries, err := cache.NewScanner(config.FromContext(ctx).CacheDir).Scan(ctx)
			if err != nil {
				return fmt.Errorf("scan cache: %w", err)
			}

			if f != output.FormatText {
				return out.Encode(f, entries)
			}

			if len(entries) == 0 {
				out.Println("No cached data found")
				return nil
			}
			rows := make([][]string, len(entries))
			for i, e := range entries {
				rows[i] = static.InventoryRow(e, maxPathWidth)
			}
			out.Print(static.RenderTable(static.InventoryHeaders, rows))
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "text", "Output format: text, json, yaml")
	cmd.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{"text", "json", "yaml"}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func newCacheRmCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "rm TICKER",
		Short:   "Delete cached data for a ticker",
		Aliases: []string{"delete"},
		Args:    cobra.ExactArgs(1),
		Long: `Delete the cached data of one ticker.

Asks for confirmation (default no) unless --yes is given.`,
		Example: `  ta cache rm tsla         # Confirm, then delete TSLA
  ta cache rm AAPL --yes   # Delete without asking`,
		ValidArgsFunction: completeCachedTickers,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			root := config.FromContext(ctx).CacheDir

			entries, err := cache.NewScanner(root).Scan(ctx)
			if err != nil {
				return fmt.Errorf("scan cache: %w", err)
			}

			ticker := params.NormalizeTicker(args[0])
			var entry *cache.Entry
			for i := range entries {
				if entries[i].Ticker == ticker {
					entry = &entries[i]
					break
				}
			}
			if entry == nil {
				return fmt.Errorf("no cached data for %s in %s", ticker, root)
			}

			d := cache.NewDeleter(root, prompterFrom(ctx))
			var res cache.Result
			if yes {
				res = d.Purge(ctx, *entry)
			} else {
				res = d.Delete(ctx, *entry)
			}
			if res.Outcome == cache.OutcomeFailed {
				return fmt.Errorf("delete %s: %w", ticker, res.Err)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Delete without confirmation")

	return cmd
}

func newCachePathCmd() *cobra.Command {
	var copyPath bool

	cmd := &cobra.Command{
		Use:   "path",
		Short: "Print the cache directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			root := config.FromContext(ctx).CacheDir

			output.FromContext(ctx).Println(root)
			if copyPath {
				if err := clipboard.WriteAll(root); err != nil {
					log.FromContext(ctx).Printf("Warning: could not copy to clipboard: %v\n", err)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&copyPath, "copy", "c", false, "Copy the path to the clipboard")

	return cmd
}

// completeCachedTickers completes ticker arguments from the cache.
func completeCachedTickers(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	ctx := cmd.Context()
	entries, err := cache.NewScanner(config.FromContext(ctx).CacheDir).Scan(ctx)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	tickers := make([]string, 0, len(entries))
	for _, e := range entries {
		tickers = append(tickers, e.Ticker+"\t"+e.Layout.Description())
	}
	return tickers, cobra.ShellCompDirectiveNoFileComp
}
