package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/trueconnect/talk/domain/entities"
	"github.com/trueconnect/talk/internal/ws"
	"github.com/trueconnect/talk/usecase"
)

// Handler carries the relay services behind the HTTP surface. Everything is
// injected by constructor; handlers hold no mutable state of their own.
type Handler struct {
	translation *usecase.Translation
	messages    *usecase.MessageRelay
	voice       *usecase.VoiceRelay
	signals     *usecase.SignalRelay
	synthesizer *usecase.Synthesizer
	hub         *ws.Hub

	// Server-held credential for the browser's direct realtime transcription
	// connection.
	realtimeSTTKey string

	logger *zap.Logger
}

// NewHandler creates the HTTP handler set
func NewHandler(
	translation *usecase.Translation,
	messages *usecase.MessageRelay,
	voice *usecase.VoiceRelay,
	signals *usecase.SignalRelay,
	synthesizer *usecase.Synthesizer,
	hub *ws.Hub,
	realtimeSTTKey string,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		translation:    translation,
		messages:       messages,
		voice:          voice,
		signals:        signals,
		synthesizer:    synthesizer,
		hub:            hub,
		realtimeSTTKey: realtimeSTTKey,
		logger:         logger,
	}
}

// Register wires all routes onto the echo instance
func (h *Handler) Register(e *echo.Echo) {
	e.GET("/health", h.health)
	e.POST("/translate", h.translate)
	e.POST("/message", h.message)
	e.POST("/voice", h.voiceMessage)
	e.POST("/signal", h.signal)
	e.POST("/tts", h.tts)
	e.GET("/deepgram-token", h.realtimeToken)
	e.GET("/ws", h.subscribe)
}

func (h *Handler) health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "talk-server",
	})
}

func (h *Handler) translate(c echo.Context) error {
	var req TranslateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format"})
	}
	if req.Content == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "No text provided"})
	}
	if req.FromLang == "" {
		req.FromLang = entities.English.String()
	}

	from, err := entities.ParseLanguage(req.FromLang)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Unsupported language"})
	}

	translated, err := h.translation.Translate(c.Request().Context(), req.Content, from)
	if err != nil {
		h.logger.Error("Translation failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Translation failed"})
	}

	return c.JSON(http.StatusOK, TranslateResponse{Translated: translated})
}

func (h *Handler) message(c echo.Context) error {
	var req MessageRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format"})
	}
	if req.RoomCode == "" || req.Text == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Room code and text are required"})
	}

	from, err := entities.ParseLanguage(req.FromLang)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Unsupported language"})
	}

	if err := h.messages.Send(c.Request().Context(), req.RoomCode, req.Text, from, req.Sender); err != nil {
		h.logger.Error("Message relay failed",
			zap.String("roomCode", req.RoomCode),
			zap.Error(err))
		if errors.Is(err, usecase.ErrEmptyTranslation) {
			return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Translation failed"})
		}
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to send message"})
	}

	return c.JSON(http.StatusOK, SuccessResponse{Success: true})
}

func (h *Handler) voiceMessage(c echo.Context) error {
	fileHeader, err := c.FormFile("audio")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "No audio provided"})
	}

	roomCode := c.FormValue("roomCode")
	if roomCode == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Room code is required"})
	}

	from, err := entities.ParseLanguage(c.FormValue("fromLang"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Unsupported language"})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "No audio provided"})
	}
	defer file.Close()

	audio, err := io.ReadAll(file)
	if err != nil || len(audio) == 0 {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "No audio provided"})
	}

	relayErr := h.voice.Send(c.Request().Context(), usecase.VoiceInput{
		RoomCode: roomCode,
		Audio:    audio,
		From:     from,
		Sender:   c.FormValue("sender"),
		Gender:   c.FormValue("gender"),
	})
	if relayErr != nil {
		if errors.Is(relayErr, usecase.ErrNoSpeech) {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "No speech detected"})
		}
		h.logger.Error("Voice relay failed",
			zap.String("roomCode", roomCode),
			zap.Error(relayErr))
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to process voice message"})
	}

	return c.JSON(http.StatusOK, SuccessResponse{Success: true})
}

func (h *Handler) signal(c echo.Context) error {
	var req SignalRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format"})
	}
	if req.RoomCode == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Room code is required"})
	}

	envelope := entities.SignalEnvelope{
		Sender:  req.Sender,
		Type:    req.Type,
		Payload: req.Payload,
	}
	if err := h.signals.Forward(c.Request().Context(), req.RoomCode, envelope); err != nil {
		h.logger.Error("Signal relay failed",
			zap.String("roomCode", req.RoomCode),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to relay signal"})
	}

	return c.JSON(http.StatusOK, SuccessResponse{Success: true})
}

func (h *Handler) tts(c echo.Context) error {
	var req TTSRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format"})
	}
	if req.Text == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "No text provided"})
	}

	// Language is optional here; without it the gender default voice applies.
	var lang entities.Language
	if req.Lang != "" {
		parsed, err := entities.ParseLanguage(req.Lang)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Unsupported language"})
		}
		lang = parsed
	}

	audioURL, err := h.synthesizer.Speak(c.Request().Context(), req.Text, req.Gender, lang)
	if err != nil {
		h.logger.Error("TTS failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "TTS failed"})
	}

	return c.JSON(http.StatusOK, TTSResponse{AudioURL: audioURL})
}

func (h *Handler) realtimeToken(c echo.Context) error {
	if h.realtimeSTTKey == "" {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Transcription credential is not configured"})
	}
	return c.JSON(http.StatusOK, TokenResponse{Token: h.realtimeSTTKey})
}

func (h *Handler) subscribe(c echo.Context) error {
	roomCode := c.QueryParam("room")
	if roomCode == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Room code is required"})
	}
	participantID := c.QueryParam("participant")

	return ws.ServeWS(h.hub, c, roomCode, participantID, h.logger)
}
