package cmd

import (
	"fmt"
	"log/slog"
	"os"

	tomlrepo "github.com/bnema/framecast/internal/adapters/repo/toml"
	"github.com/bnema/framecast/internal/application"
	"github.com/bnema/framecast/internal/ports"
	"github.com/spf13/viper"
)

type app struct {
	sequences  ports.SequenceRepository
	streamer   *application.StreamService
	inspector  *application.InspectService
	logger     *slog.Logger
	listenAddr string
	mqttBroker string
	mqttTopic  string
}

func wireApp() (*app, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	sequences, err := tomlrepo.NewRepository(viper.New())
	if err != nil {
		return nil, fmt.Errorf("wire sequence repository: %w", err)
	}

	return &app{
		sequences:  sequences,
		streamer:   application.NewStreamService(ports.SystemClock{}, ports.SystemSleeper{}, logger),
		inspector:  application.NewInspectService(ports.SystemClock{}),
		logger:     logger,
		listenAddr: envOrDefault("FRAMECAST_LISTEN", "127.0.0.1:5000"),
		mqttBroker: envOrDefault("FRAMECAST_MQTT_BROKER", "tcp://127.0.0.1:1883"),
		mqttTopic:  envOrDefault("FRAMECAST_MQTT_TOPIC", "framecast/stream"),
	}, nil
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
