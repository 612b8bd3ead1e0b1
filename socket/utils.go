package socket

import "encoding/json"

func encode(v any) (json.RawMessage, error) {
	if v == nil {
		return nil, nil
	}
	if raw, ok := v.(json.RawMessage); ok {
		return raw, nil
	}
	return json.Marshal(v)
}

func decodeMessage(data []byte) (Message, error) {
	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		return Message{}, ErrInvalidMessage
	}
	if msg.Type == "" {
		return Message{}, ErrInvalidMessage
	}
	return msg, nil
}
