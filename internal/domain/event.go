package domain

type EventType string

// EventOnline tags every frame event pushed to a connected client.
const EventOnline EventType = "online"

// StreamEventID is the fixed wire identifier carried by every event.
const StreamEventID = 1

// StreamEvent is the wire unit sent to the client: one extracted path per
// animation frame. Produced once, consumed by a transport, then discarded.
type StreamEvent struct {
	ID    int
	Type  EventType
	Frame string
}

func NewFrameEvent(path string) StreamEvent {
	return StreamEvent{ID: StreamEventID, Type: EventOnline, Frame: path}
}

// EventPayload is the JSON body shared by all transports.
type EventPayload struct {
	Frame string `json:"frame"`
}

func (e StreamEvent) Payload() EventPayload {
	return EventPayload{Frame: e.Frame}
}
