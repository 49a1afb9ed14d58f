package ws

import (
	"encoding/json"
)

// MessageType represents the different kinds of messages exchanged over a
// game socket
type MessageType string

const (
	MessageTypeMove      MessageType = "move"
	MessageTypeUndo      MessageType = "undo"
	MessageTypeReset     MessageType = "reset"
	MessageTypeLoad      MessageType = "load"
	MessageTypeGameState MessageType = "gameState"
	MessageTypeError     MessageType = "error"
)

// Message is the envelope of every websocket frame
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// LoadPayload carries a setup string for MessageTypeLoad
type LoadPayload struct {
	Setup string `json:"setup"`
}

// ErrorPayload is sent with MessageTypeError
type ErrorPayload struct {
	Error string `json:"error"`
}
