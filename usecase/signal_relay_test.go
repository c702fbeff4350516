package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/trueconnect/talk/domain/entities"
)

func TestSignalRelay_ForwardsVerbatim(t *testing.T) {
	broadcaster := &fakeBroadcaster{}
	relay := NewSignalRelay(broadcaster, zap.NewNop())

	payload := json.RawMessage(`"X"`)
	envelope := entities.SignalEnvelope{
		Sender:  "U1",
		Type:    entities.SignalICECandidate,
		Payload: payload,
	}

	require.NoError(t, relay.Forward(context.Background(), "R1", envelope))

	events := broadcaster.events()
	require.Len(t, events, 1)
	assert.Equal(t, "R1", events[0].roomCode)
	assert.Equal(t, entities.EventWebRTCSignal, events[0].event.Name)

	forwarded := events[0].event.Data.(entities.SignalEnvelope)
	assert.Equal(t, "U1", forwarded.Sender)
	assert.Equal(t, entities.SignalICECandidate, forwarded.Type)
	assert.Equal(t, []byte(payload), []byte(forwarded.Payload), "payload must not be mutated")
}

func TestSignalRelay_OfferRoundTrip(t *testing.T) {
	broadcaster := &fakeBroadcaster{}
	relay := NewSignalRelay(broadcaster, zap.NewNop())

	sdp := json.RawMessage(`{"type":"offer","sdp":"v=0..."}`)
	err := relay.Forward(context.Background(), "R1", entities.SignalEnvelope{
		Sender:  "U1",
		Type:    entities.SignalOffer,
		Payload: sdp,
	})
	require.NoError(t, err)

	// The broadcast payload survives JSON round-tripping unchanged.
	raw, err := json.Marshal(broadcaster.events()[0].event)
	require.NoError(t, err)

	var decoded struct {
		Name string `json:"event"`
		Data struct {
			Sender  string          `json:"sender"`
			Type    string          `json:"type"`
			Payload json.RawMessage `json:"payload"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, entities.EventWebRTCSignal, decoded.Name)
	assert.JSONEq(t, string(sdp), string(decoded.Data.Payload))
}

func TestSignalRelay_PublishFailure(t *testing.T) {
	broadcaster := &fakeBroadcaster{publishErr: errors.New("transport down")}
	relay := NewSignalRelay(broadcaster, zap.NewNop())

	err := relay.Forward(context.Background(), "R1", entities.SignalEnvelope{Type: entities.SignalAnswer})
	assert.Error(t, err)
}
