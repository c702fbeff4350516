package entities

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Broadcast event names on a room channel.
const (
	EventNewMessage   = "new-message"
	EventWebRTCSignal = "webrtc-signal"
)

// RoomChannel returns the pub/sub channel name for a room code. The code is
// used verbatim and case-sensitive; two sessions with the same code share a room.
func RoomChannel(roomCode string) string {
	return "room-" + roomCode
}

// ChatMessage is a single translated chat entry. It is created by a relay,
// immutable once broadcast, and never stored server-side.
type ChatMessage struct {
	ID         string   `json:"id"`
	Text       string   `json:"text"`
	Translated string   `json:"translated"`
	FromLang   Language `json:"fromLang"`
	Sender     string   `json:"sender"`
	AudioURL   string   `json:"audioUrl,omitempty"`
}

// NewMessageID builds a practically unique message id: a unix-millisecond
// timestamp with a short random suffix. Not cryptographic, distinct with high
// probability even for rapid sends from one sender.
func NewMessageID() string {
	suffix := strings.SplitN(uuid.NewString(), "-", 2)[0]
	return strconv.FormatInt(time.Now().UnixMilli(), 10) + "-" + suffix
}

// Signal types relayed between peers.
const (
	SignalOffer        = "offer"
	SignalAnswer       = "answer"
	SignalICECandidate = "ice-candidate"
)

// SignalEnvelope wraps an opaque WebRTC signaling payload. The relay never
// inspects or mutates Payload; echo suppression by sender id happens
// client-side.
type SignalEnvelope struct {
	Sender  string          `json:"sender"`
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}
