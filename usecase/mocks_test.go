package usecase

import (
	"context"
	"errors"
	"sync"

	"github.com/trueconnect/talk/domain/entities"
	"github.com/trueconnect/talk/domain/repositories"
)

// fakeTranslator prefixes text with the target language code.
type fakeTranslator struct {
	err    error
	result string // overrides the default output when set
}

func (f *fakeTranslator) Translate(_ context.Context, text string, from entities.Language) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	if f.result != "" {
		return f.result, nil
	}
	return from.Complement().String() + ":" + text, nil
}

type fakeSTT struct {
	transcript string
	err        error

	lastConfig repositories.AudioConfig
}

func (f *fakeSTT) TranscribeAudio(_ context.Context, _ []byte, config repositories.AudioConfig) (string, error) {
	f.lastConfig = config
	return f.transcript, f.err
}

type fakeTTS struct {
	audio []byte
	err   error

	lastText  string
	lastVoice string
}

func (f *fakeTTS) Synthesize(_ context.Context, text string, voiceID string) ([]byte, error) {
	f.lastText = text
	f.lastVoice = voiceID
	if f.err != nil {
		return nil, f.err
	}
	return f.audio, nil
}

type publishedEvent struct {
	roomCode string
	event    repositories.Event
}

// fakeBroadcaster records published events.
type fakeBroadcaster struct {
	mu         sync.Mutex
	published  []publishedEvent
	publishErr error
}

func (f *fakeBroadcaster) Publish(_ context.Context, roomCode string, event repositories.Event) error {
	if f.publishErr != nil {
		return f.publishErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.published = append(f.published, publishedEvent{roomCode: roomCode, event: event})
	return nil
}

func (f *fakeBroadcaster) Subscribe(context.Context, string) (<-chan []byte, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeBroadcaster) events() []publishedEvent {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]publishedEvent(nil), f.published...)
}

func testVoices() VoiceDirectory {
	return VoiceDirectory{
		EnglishMale:      "voice-en-m",
		EnglishFemale:    "voice-en-f",
		VietnameseMale:   "voice-vi-m",
		VietnameseFemale: "voice-vi-f",
		DefaultMale:      "voice-m",
		DefaultFemale:    "voice-f",
	}
}
