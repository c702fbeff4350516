package usecase

import (
	"context"
	"encoding/base64"
	"fmt"

	"go.uber.org/zap"

	"github.com/trueconnect/talk/domain/entities"
	"github.com/trueconnect/talk/domain/repositories"
)

// Gender preference values accepted on the wire.
const (
	GenderMale   = "male"
	GenderFemale = "female"
)

// VoiceDirectory is the static mapping from voice preference and target
// language to a provider voice id. Per-language ids win; the gender-only
// defaults cover languages without a dedicated voice configured.
type VoiceDirectory struct {
	EnglishMale      string
	EnglishFemale    string
	VietnameseMale   string
	VietnameseFemale string
	DefaultMale      string
	DefaultFemale    string
}

// Voice resolves a provider voice id. Any gender value other than "female"
// selects the male voice. lang may be empty, which skips the per-language ids.
func (d VoiceDirectory) Voice(gender string, lang entities.Language) string {
	female := gender == GenderFemale
	switch lang {
	case entities.English:
		if female && d.EnglishFemale != "" {
			return d.EnglishFemale
		}
		if !female && d.EnglishMale != "" {
			return d.EnglishMale
		}
	case entities.Vietnamese:
		if female && d.VietnameseFemale != "" {
			return d.VietnameseFemale
		}
		if !female && d.VietnameseMale != "" {
			return d.VietnameseMale
		}
	}
	if female {
		return d.DefaultFemale
	}
	return d.DefaultMale
}

// Synthesizer turns text into a self-contained audio data URI
type Synthesizer struct {
	tts    repositories.TextToSpeech
	voices VoiceDirectory
	logger *zap.Logger
}

// NewSynthesizer creates a new synthesizer
func NewSynthesizer(tts repositories.TextToSpeech, voices VoiceDirectory, logger *zap.Logger) *Synthesizer {
	return &Synthesizer{
		tts:    tts,
		voices: voices,
		logger: logger,
	}
}

// Speak synthesizes text with the voice selected by gender preference and
// language, returning a data URI embedding the MPEG audio.
func (s *Synthesizer) Speak(ctx context.Context, text string, gender string, lang entities.Language) (string, error) {
	voiceID := s.voices.Voice(gender, lang)
	if voiceID == "" {
		return "", fmt.Errorf("no voice configured for gender %q, language %q", gender, lang)
	}

	audio, err := s.tts.Synthesize(ctx, text, voiceID)
	if err != nil {
		return "", fmt.Errorf("speech synthesis failed: %w", err)
	}

	return "data:audio/mpeg;base64," + base64.StdEncoding.EncodeToString(audio), nil
}
