package usecase

import (
	"context"
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/trueconnect/talk/domain/entities"
)

func TestVoiceDirectory_Voice(t *testing.T) {
	voices := testVoices()

	tests := []struct {
		gender string
		lang   entities.Language
		want   string
	}{
		{GenderMale, entities.English, "voice-en-m"},
		{GenderFemale, entities.English, "voice-en-f"},
		{GenderMale, entities.Vietnamese, "voice-vi-m"},
		{GenderFemale, entities.Vietnamese, "voice-vi-f"},
		{GenderMale, "", "voice-m"},
		{GenderFemale, "", "voice-f"},
		// Anything other than "female" selects the male voice.
		{"", entities.English, "voice-en-m"},
		{"robot", "", "voice-m"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, voices.Voice(tt.gender, tt.lang),
			"gender=%q lang=%q", tt.gender, tt.lang)
	}
}

func TestVoiceDirectory_GenderFallback(t *testing.T) {
	voices := VoiceDirectory{DefaultMale: "m", DefaultFemale: "f"}

	// No per-language ids configured: the gender default applies everywhere.
	assert.Equal(t, "f", voices.Voice(GenderFemale, entities.Vietnamese))
	assert.Equal(t, "m", voices.Voice(GenderMale, entities.English))
}

func TestSynthesizer_Speak(t *testing.T) {
	ttsFake := &fakeTTS{audio: []byte("audio-bytes")}
	synth := NewSynthesizer(ttsFake, testVoices(), zap.NewNop())

	uri, err := synth.Speak(context.Background(), "Xin chào", GenderFemale, entities.Vietnamese)
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(uri, "data:audio/mpeg;base64,"))
	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, "data:audio/mpeg;base64,"))
	require.NoError(t, err)
	assert.Equal(t, []byte("audio-bytes"), decoded)
	assert.Equal(t, "voice-vi-f", ttsFake.lastVoice)
}

func TestSynthesizer_NoVoiceConfigured(t *testing.T) {
	synth := NewSynthesizer(&fakeTTS{}, VoiceDirectory{}, zap.NewNop())

	_, err := synth.Speak(context.Background(), "hello", GenderMale, entities.English)
	assert.Error(t, err)
}
