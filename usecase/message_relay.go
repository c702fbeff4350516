package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/trueconnect/talk/domain/entities"
	"github.com/trueconnect/talk/domain/repositories"
)

// MessageRelay translates a chat message and broadcasts it to the room.
// The translated text is delivered only through the broadcast channel; the
// sender receives its own message via the same room subscription.
type MessageRelay struct {
	translation *Translation
	broadcaster repositories.Broadcaster
	logger      *zap.Logger
}

// NewMessageRelay creates a new message relay
func NewMessageRelay(translation *Translation, broadcaster repositories.Broadcaster, logger *zap.Logger) *MessageRelay {
	return &MessageRelay{
		translation: translation,
		broadcaster: broadcaster,
		logger:      logger,
	}
}

// Send translates text to the complement language and broadcasts the result
// as a new-message event. On any failure nothing is broadcast.
func (r *MessageRelay) Send(ctx context.Context, roomCode string, text string, from entities.Language, sender string) error {
	translated, err := r.translation.Translate(ctx, text, from)
	if err != nil {
		return err
	}

	message := entities.ChatMessage{
		ID:         entities.NewMessageID(),
		Text:       text,
		Translated: translated,
		FromLang:   from,
		Sender:     sender,
	}

	if err := r.broadcaster.Publish(ctx, roomCode, repositories.Event{
		Name: entities.EventNewMessage,
		Data: message,
	}); err != nil {
		return fmt.Errorf("failed to broadcast message: %w", err)
	}

	r.logger.Info("Message relayed",
		zap.String("roomCode", roomCode),
		zap.String("messageID", message.ID),
		zap.String("fromLang", from.String()))
	return nil
}
