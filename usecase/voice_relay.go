package usecase

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/trueconnect/talk/domain/entities"
	"github.com/trueconnect/talk/domain/repositories"
)

// ErrNoSpeech means the recognizer returned blank or whitespace-only text.
// The relay short-circuits with a user-visible error and broadcasts nothing.
var ErrNoSpeech = errors.New("no speech detected")

// Capture settings applied by the browser's recorder. No local preprocessing
// happens on top of them.
const (
	captureSampleRate = 48000
	captureEncoding   = "WEBM_OPUS"
)

// VoiceInput is one recorded utterance submitted to the relay
type VoiceInput struct {
	RoomCode string
	Audio    []byte
	From     entities.Language
	Sender   string
	Gender   string
}

// VoiceRelay runs the transcribe -> translate -> synthesize pipeline and
// broadcasts the result. Each stage is a hard dependency on the previous one
// succeeding; a failure at any stage aborts the whole operation with no
// partial broadcast and no retry.
type VoiceRelay struct {
	stt         repositories.SpeechToText
	translation *Translation
	synthesizer *Synthesizer
	broadcaster repositories.Broadcaster
	logger      *zap.Logger
}

// NewVoiceRelay creates a new voice relay
func NewVoiceRelay(
	stt repositories.SpeechToText,
	translation *Translation,
	synthesizer *Synthesizer,
	broadcaster repositories.Broadcaster,
	logger *zap.Logger,
) *VoiceRelay {
	return &VoiceRelay{
		stt:         stt,
		translation: translation,
		synthesizer: synthesizer,
		broadcaster: broadcaster,
		logger:      logger,
	}
}

// Send processes a recorded utterance end to end
func (r *VoiceRelay) Send(ctx context.Context, input VoiceInput) error {
	transcript, err := r.stt.TranscribeAudio(ctx, input.Audio, repositories.AudioConfig{
		SampleRate: captureSampleRate,
		Encoding:   captureEncoding,
		Language:   sttLocale(input.From),
	})
	if err != nil {
		return err
	}
	if strings.TrimSpace(transcript) == "" {
		return ErrNoSpeech
	}

	target := input.From.Complement()
	translated, err := r.translation.Translate(ctx, transcript, input.From)
	if err != nil {
		return err
	}

	audioURL, err := r.synthesizer.Speak(ctx, translated, input.Gender, target)
	if err != nil {
		return err
	}

	message := entities.ChatMessage{
		ID:         entities.NewMessageID(),
		Text:       transcript,
		Translated: translated,
		FromLang:   input.From,
		Sender:     input.Sender,
		AudioURL:   audioURL,
	}

	if err := r.broadcaster.Publish(ctx, input.RoomCode, repositories.Event{
		Name: entities.EventNewMessage,
		Data: message,
	}); err != nil {
		return err
	}

	r.logger.Info("Voice message relayed",
		zap.String("roomCode", input.RoomCode),
		zap.String("messageID", message.ID),
		zap.String("fromLang", input.From.String()),
		zap.Int("transcriptLen", len(transcript)))
	return nil
}

// sttLocale maps a chat language to the recognizer's BCP-47 code
func sttLocale(lang entities.Language) string {
	if lang == entities.Vietnamese {
		return "vi-VN"
	}
	return "en-US"
}
