package repositories

import "context"

// TextToSpeech abstracts speech synthesis services
type TextToSpeech interface {
	// Synthesize renders text as audio using the given provider voice id.
	// The returned bytes are a complete encoded audio clip (MPEG).
	Synthesize(ctx context.Context, text string, voiceID string) ([]byte, error)
}
