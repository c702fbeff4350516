package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/trueconnect/talk/domain/entities"
	"github.com/trueconnect/talk/domain/repositories"
)

// SignalRelay forwards WebRTC signaling envelopes to a room, verbatim.
// It never inspects or mutates the payload and performs no echo filtering;
// receivers drop envelopes carrying their own sender id.
type SignalRelay struct {
	broadcaster repositories.Broadcaster
	logger      *zap.Logger
}

// NewSignalRelay creates a new signal relay
func NewSignalRelay(broadcaster repositories.Broadcaster, logger *zap.Logger) *SignalRelay {
	return &SignalRelay{
		broadcaster: broadcaster,
		logger:      logger,
	}
}

// Forward broadcasts the envelope as a webrtc-signal event
func (r *SignalRelay) Forward(ctx context.Context, roomCode string, envelope entities.SignalEnvelope) error {
	if err := r.broadcaster.Publish(ctx, roomCode, repositories.Event{
		Name: entities.EventWebRTCSignal,
		Data: envelope,
	}); err != nil {
		return fmt.Errorf("failed to forward signal: %w", err)
	}

	r.logger.Debug("Signal relayed",
		zap.String("roomCode", roomCode),
		zap.String("type", envelope.Type),
		zap.String("sender", envelope.Sender))
	return nil
}
