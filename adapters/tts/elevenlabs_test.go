package tts

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap/zaptest"
)

func TestNewElevenLabsTTS_Defaults(t *testing.T) {
	logger := zaptest.NewLogger(t)

	tts := NewElevenLabsTTS(ElevenLabsConfig{APIKey: "test-api-key"}, logger)

	if tts.apiBaseURL != defaultAPIBaseURL {
		t.Errorf("expected default base URL, got %q", tts.apiBaseURL)
	}
	if tts.modelID != defaultModelID {
		t.Errorf("expected default model ID, got %q", tts.modelID)
	}
	if tts.stability != defaultStability {
		t.Errorf("expected default stability, got %f", tts.stability)
	}
	if tts.clarity != defaultClarity {
		t.Errorf("expected default clarity, got %f", tts.clarity)
	}
}

func TestElevenLabsTTS_Synthesize(t *testing.T) {
	logger := zaptest.NewLogger(t)

	var gotPath, gotAPIKey string
	var gotRequest ElevenLabsRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAPIKey = r.Header.Get("xi-api-key")
		if err := json.NewDecoder(r.Body).Decode(&gotRequest); err != nil {
			t.Errorf("failed to decode request: %v", err)
		}
		w.Header().Set("Content-Type", "audio/mpeg")
		w.Write([]byte("mpeg-audio"))
	}))
	defer server.Close()

	tts := NewElevenLabsTTS(ElevenLabsConfig{
		APIKey:     "test-api-key",
		APIBaseURL: server.URL,
	}, logger)

	audio, err := tts.Synthesize(context.Background(), "Xin chào", "voice-1")
	if err != nil {
		t.Fatalf("Synthesize failed: %v", err)
	}

	if string(audio) != "mpeg-audio" {
		t.Errorf("unexpected audio %q", audio)
	}
	if gotPath != "/text-to-speech/voice-1" {
		t.Errorf("unexpected path %q", gotPath)
	}
	if gotAPIKey != "test-api-key" {
		t.Errorf("unexpected api key %q", gotAPIKey)
	}
	if gotRequest.Text != "Xin chào" {
		t.Errorf("unexpected text %q", gotRequest.Text)
	}
	if gotRequest.ModelID != defaultModelID {
		t.Errorf("unexpected model %q", gotRequest.ModelID)
	}
}

func TestElevenLabsTTS_SynthesizeUpstreamError(t *testing.T) {
	logger := zaptest.NewLogger(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail":"invalid voice"}`, http.StatusUnprocessableEntity)
	}))
	defer server.Close()

	tts := NewElevenLabsTTS(ElevenLabsConfig{
		APIKey:     "test-api-key",
		APIBaseURL: server.URL,
	}, logger)

	if _, err := tts.Synthesize(context.Background(), "hello", "bad-voice"); err == nil {
		t.Error("expected error for upstream failure")
	}
}

func TestElevenLabsTTS_SynthesizeValidation(t *testing.T) {
	logger := zaptest.NewLogger(t)
	tts := NewElevenLabsTTS(ElevenLabsConfig{APIKey: "test-api-key"}, logger)

	if _, err := tts.Synthesize(context.Background(), "", "voice-1"); err == nil {
		t.Error("expected error for empty text")
	}
	if _, err := tts.Synthesize(context.Background(), "   ", "voice-1"); err == nil {
		t.Error("expected error for whitespace text")
	}
	if _, err := tts.Synthesize(context.Background(), "hello", ""); err == nil {
		t.Error("expected error for empty voice id")
	}

	missingKey := NewElevenLabsTTS(ElevenLabsConfig{}, logger)
	if _, err := missingKey.Synthesize(context.Background(), "hello", "voice-1"); err == nil {
		t.Error("expected error when API key is not configured")
	}
}
