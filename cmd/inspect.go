package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	reportadapter "github.com/bnema/framecast/internal/adapters/render/report"
	"github.com/bnema/framecast/internal/adapters/repo/svgdir"
	"github.com/spf13/cobra"
)

func newInspectCmd(a *app) *cobra.Command {
	var (
		flags  sequenceFlags
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Check a sequence's assets for gaps and missing path data",
		RunE: func(cmd *cobra.Command, _ []string) error {
			seq, err := resolveSequence(cmd.Context(), a, flags)
			if err != nil {
				return err
			}

			// Missing markers are the point of the report; logging
			// each one as it is found would drown the output.
			quiet := slog.New(slog.NewTextHandler(io.Discard, nil))
			frames := svgdir.NewRepository(seq.Dir, quiet)

			report, err := a.inspector.Inspect(cmd.Context(), seq, frames)
			if err != nil {
				return fmt.Errorf("inspect sequence: %w", err)
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			}

			rendered, err := reportadapter.Render(report)
			if err != nil {
				return fmt.Errorf("render report: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit the report as JSON")

	return cmd
}
