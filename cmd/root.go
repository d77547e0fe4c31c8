package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "framecast",
		Short:         "framecast: stream pre-rendered SVG path frames at a fixed rate",
		Long:          "framecast serves a numbered sequence of SVG frame assets to a connected client over a long-lived push connection (SSE, websocket, or MQTT), pacing emissions so the perceived frame rate stays close to nominal.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newServeCmd(app),
		newPublishCmd(app),
		newInspectCmd(app),
	)

	return rootCmd
}
