package cmd

import (
	"fmt"
	"time"

	"github.com/bnema/framecast/internal/adapters/repo/svgdir"
	mqttwriter "github.com/bnema/framecast/internal/adapters/transport/mqtt"
	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/spf13/cobra"
)

func newPublishCmd(a *app) *cobra.Command {
	var (
		flags  sequenceFlags
		broker string
		topic  string
	)

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Push the sequence to an MQTT broker at the target frame rate",
		RunE: func(cmd *cobra.Command, _ []string) error {
			seq, err := resolveSequence(cmd.Context(), a, flags)
			if err != nil {
				return err
			}

			options := paho.NewClientOptions().
				AddBroker(broker).
				SetClientID("framecast").
				SetKeepAlive(30 * time.Second).
				SetPingTimeout(5 * time.Second)
			client := paho.NewClient(options)

			if token := client.Connect(); token.Wait() && token.Error() != nil {
				return fmt.Errorf("connect to broker %q: %w", broker, token.Error())
			}
			defer client.Disconnect(250)

			frames := svgdir.NewRepository(seq.Dir, a.logger)
			summary, err := a.streamer.Stream(cmd.Context(), seq, frames, mqttwriter.NewWriter(client, topic))
			if err != nil {
				return fmt.Errorf("publish sequence: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "published %d frames (%s)\n", summary.FramesSent, summary.State)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&broker, "broker", a.mqttBroker, "MQTT broker URL")
	cmd.Flags().StringVar(&topic, "topic", a.mqttTopic, "MQTT topic for frame events")

	return cmd
}
