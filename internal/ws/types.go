package ws

import (
	"encoding/json"
)

// MessageType represents the different kinds of messages a game connection handles
type MessageType string

const (
	MessageTypeMove              MessageType = "move"
	MessageTypeComputerMove      MessageType = "computerMove"
	MessageTypeNewRound          MessageType = "newRound"
	MessageTypeResetIntelligence MessageType = "resetIntelligence"
	MessageTypeGameState         MessageType = "gameState"
	MessageTypeError             MessageType = "error"
)

// Message represents a WebSocket message in our system
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// ComputerMovePayload selects a candidate move by index; a missing index lets
// the catalogue pick at random.
type ComputerMovePayload struct {
	Index *int `json:"index"`
}

type ErrorPayload struct {
	Error string `json:"error"`
}

// NewError builds an error message with a JSON payload.
func NewError(msg string) Message {
	payload, _ := json.Marshal(ErrorPayload{Error: msg})
	return Message{Type: MessageTypeError, Payload: payload}
}
