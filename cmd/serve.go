package cmd

import (
	"fmt"

	"github.com/bnema/framecast/internal/adapters/httpserver"
	"github.com/bnema/framecast/internal/adapters/repo/svgdir"
	"github.com/spf13/cobra"
)

func newServeCmd(a *app) *cobra.Command {
	var (
		flags  sequenceFlags
		listen string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the sequence over HTTP (index page, SSE, websocket)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			seq, err := resolveSequence(cmd.Context(), a, flags)
			if err != nil {
				return err
			}

			frames := svgdir.NewRepository(seq.Dir, a.logger)
			server, err := httpserver.New(a.streamer, seq, frames, a.logger)
			if err != nil {
				return fmt.Errorf("wire http server: %w", err)
			}

			return server.ListenAndServe(listen)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&listen, "listen", a.listenAddr, "address to listen on")

	return cmd
}
