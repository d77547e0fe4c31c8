package mqtt

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/bnema/framecast/internal/domain"
	"github.com/bnema/framecast/internal/ports"
	paho "github.com/eclipse/paho.mqtt.golang"
)

// Writer publishes each frame event's JSON payload to an MQTT topic.
// Publishing waits for broker acknowledgement so pacing measures the real
// cost of delivery, the same way a flushed HTTP write does.
type Writer struct {
	client paho.Client
	topic  string
}

var _ ports.EventWriter = (*Writer)(nil)

func NewWriter(client paho.Client, topic string) *Writer {
	return &Writer{client: client, topic: topic}
}

func (w *Writer) WriteEvent(ctx context.Context, event domain.StreamEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	payload, err := json.Marshal(event.Payload())
	if err != nil {
		return fmt.Errorf("encode event payload: %w", err)
	}

	token := w.client.Publish(w.topic, 1, false, payload)
	token.Wait()
	if err := token.Error(); err != nil {
		return fmt.Errorf("publish event: %w", err)
	}

	return nil
}
