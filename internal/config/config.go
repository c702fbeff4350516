package config

import (
	"os"
	"strconv"
)

// Config is the full environment-provided configuration. All credentials are
// optional at startup; a missing one fails the requests that need it.
type Config struct {
	Port string

	GeminiAPIKey   string
	TranslateModel string

	ElevenLabsAPIKey  string
	ElevenLabsBaseURL string

	// Voice directory: per-language voices with gender-only fallbacks.
	VoiceEnglishMale      string
	VoiceEnglishFemale    string
	VoiceVietnameseMale   string
	VoiceVietnameseFemale string
	VoiceDefaultMale      string
	VoiceDefaultFemale    string

	// Credential handed to the browser for its direct realtime transcription
	// connection.
	DeepgramAPIKey string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

// Load reads configuration from the environment
func Load() Config {
	return Config{
		Port: getEnv("PORT", "8080"),

		GeminiAPIKey:   os.Getenv("GEMINI_API_KEY"),
		TranslateModel: os.Getenv("GEMINI_TRANSLATE_MODEL"),

		ElevenLabsAPIKey:  os.Getenv("ELEVENLABS_API_KEY"),
		ElevenLabsBaseURL: os.Getenv("ELEVENLABS_API_BASE_URL"),

		VoiceEnglishMale:      os.Getenv("ELEVENLABS_VOICE_ID_EN_MALE"),
		VoiceEnglishFemale:    os.Getenv("ELEVENLABS_VOICE_ID_EN_FEMALE"),
		VoiceVietnameseMale:   os.Getenv("ELEVENLABS_VOICE_ID_VI_MALE"),
		VoiceVietnameseFemale: os.Getenv("ELEVENLABS_VOICE_ID_VI_FEMALE"),
		VoiceDefaultMale:      os.Getenv("ELEVENLABS_VOICE_ID_MALE"),
		VoiceDefaultFemale:    os.Getenv("ELEVENLABS_VOICE_ID_FEMALE"),

		DeepgramAPIKey: os.Getenv("DEEPGRAM_API_KEY"),

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       getEnvInt("REDIS_DB", 0),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
