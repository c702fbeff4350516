package usecase

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/trueconnect/talk/domain/entities"
	"github.com/trueconnect/talk/domain/repositories"
)

// ErrEmptyTranslation marks an upstream response that came back blank or in an
// unexpected shape. The relays treat it as a hard failure: nothing partial is
// ever broadcast.
var ErrEmptyTranslation = errors.New("translation returned empty result")

// Translation wraps the hosted translation model. Every call is stateless;
// there is no retry, caching, or conversation memory.
type Translation struct {
	translator repositories.Translator
	logger     *zap.Logger
}

// NewTranslation creates a new translation service
func NewTranslation(translator repositories.Translator, logger *zap.Logger) *Translation {
	return &Translation{
		translator: translator,
		logger:     logger,
	}
}

// Translate returns text translated to the complement of the source language
func (s *Translation) Translate(ctx context.Context, text string, from entities.Language) (string, error) {
	translated, err := s.translator.Translate(ctx, text, from)
	if err != nil {
		return "", err
	}

	translated = strings.TrimSpace(translated)
	if translated == "" {
		s.logger.Warn("Translator returned blank output",
			zap.String("from", from.String()))
		return "", ErrEmptyTranslation
	}
	return translated, nil
}
