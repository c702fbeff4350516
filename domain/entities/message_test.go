package entities

import (
	"strings"
	"testing"
)

func TestNewMessageID_Distinct(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := NewMessageID()
		if seen[id] {
			t.Fatalf("duplicate message id %q", id)
		}
		seen[id] = true
	}
}

func TestNewMessageID_Shape(t *testing.T) {
	id := NewMessageID()
	parts := strings.SplitN(id, "-", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		t.Errorf("message id %q should be <timestamp>-<suffix>", id)
	}
}

func TestRoomChannel(t *testing.T) {
	if got := RoomChannel("ABC123"); got != "room-ABC123" {
		t.Errorf("RoomChannel = %q", got)
	}
	// Codes are used verbatim and case-sensitive.
	if RoomChannel("abc") == RoomChannel("ABC") {
		t.Error("room codes should be case-sensitive")
	}
}
