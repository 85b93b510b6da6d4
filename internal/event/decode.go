package event

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNilPayload is returned when an event carries no payload to decode
var ErrNilPayload = errors.New("event has no payload")

// PayloadAs returns the payload of evt as T. Events published in process
// carry T (or *T) directly; payloads that went through JSON, such as those
// replayed from a stream, are converted with a marshal round trip.
func PayloadAs[T any](evt Event) (T, error) {
	var zero T
	switch v := evt.Payload.(type) {
	case nil:
		return zero, fmt.Errorf("%s: %w", evt.Type, ErrNilPayload)
	case T:
		return v, nil
	case *T:
		if v == nil {
			return zero, fmt.Errorf("%s: %w", evt.Type, ErrNilPayload)
		}
		return *v, nil
	}

	data, err := json.Marshal(evt.Payload)
	if err != nil {
		return zero, fmt.Errorf("%s: encode payload: %w", evt.Type, err)
	}
	var out T
	if err := json.Unmarshal(data, &out); err != nil {
		return zero, fmt.Errorf("%s: decode payload: %w", evt.Type, err)
	}
	return out, nil
}
