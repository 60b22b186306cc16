package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/raphi011/ta/internal/config"
	"github.com/raphi011/ta/internal/output"
	"github.com/raphi011/ta/internal/params"
	"github.com/raphi011/ta/internal/report"
)

func newReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "report",
		Short:   "Manage analysis reports",
		GroupID: GroupCore,
	}

	cmd.AddCommand(newReportSaveCmd())

	return cmd
}

func newReportSaveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "save TICKER DATE [FILE]",
		Short: "Store a Markdown report in the ticker's cache directory",
		Args:  cobra.RangeArgs(2, 3),
		Long: `Store a finished analysis report.

The report is read from FILE, or from stdin when FILE is omitted or "-",
and written to <cache_dir>/<TICKER>/<TICKER>_analysis_<DATE>_<HHMMSS>.md
with a title and generation timestamp. The ticker then shows up as
"Full Analysis Data" in the cache manager.`,
		Example: `  ta report save NVDA 2024-05-10 final.md
  render-report | ta report save NVDA 2024-05-10`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if err := params.ValidateTicker(args[0]); err != nil {
				return err
			}
			if err := params.ValidateDate(args[1]); err != nil {
				return err
			}

			var (
				body []byte
				err  error
			)
			if len(args) == 3 && args[2] != "-" {
				body, err = os.ReadFile(args[2])
			} else {
				body, err = io.ReadAll(cmd.InOrStdin())
			}
			if err != nil {
				return fmt.Errorf("read report: %w", err)
			}

			path, err := report.Save(ctx, config.FromContext(ctx).CacheDir, params.NormalizeTicker(args[0]), args[1], string(body), now())
			if err != nil {
				return err
			}
			output.FromContext(ctx).Println(path)
			return nil
		},
	}
}
