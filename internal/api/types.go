package api

import "encoding/json"

// TranslateRequest is the payload for POST /translate
type TranslateRequest struct {
	Content  string `json:"content"`
	FromLang string `json:"fromLang"`
}

// TranslateResponse is the success payload for POST /translate
type TranslateResponse struct {
	Translated string `json:"translated"`
}

// MessageRequest is the payload for POST /message
type MessageRequest struct {
	RoomCode string `json:"roomCode"`
	Text     string `json:"text"`
	FromLang string `json:"fromLang"`
	Sender   string `json:"sender"`
}

// SignalRequest is the payload for POST /signal. Payload is forwarded
// verbatim and never inspected.
type SignalRequest struct {
	RoomCode string          `json:"roomCode"`
	Sender   string          `json:"sender"`
	Type     string          `json:"type"`
	Payload  json.RawMessage `json:"payload"`
}

// TTSRequest is the payload for POST /tts. Lang is optional; when absent the
// gender-only default voice is used.
type TTSRequest struct {
	Text   string `json:"text"`
	Gender string `json:"gender"`
	Lang   string `json:"lang,omitempty"`
}

// TTSResponse carries a self-contained audio data URI
type TTSResponse struct {
	AudioURL string `json:"audioUrl"`
}

// TokenResponse hands the realtime transcription credential to the browser
type TokenResponse struct {
	Token string `json:"token"`
}

// SuccessResponse acknowledges a relay call; delivery itself happens via the
// room's broadcast channel.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}
