package repositories

import (
	"context"

	"github.com/trueconnect/talk/domain/entities"
)

// Translator abstracts the hosted chat-completion model used for translation.
// Every call is stateless and independent: no glossary, no conversation memory.
type Translator interface {
	// Translate returns text translated from the source language to its
	// complement. An empty result is an error, never a success.
	Translate(ctx context.Context, text string, from entities.Language) (string, error)
}
