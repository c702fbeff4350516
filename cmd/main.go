package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/trueconnect/talk/adapters/broadcast"
	"github.com/trueconnect/talk/adapters/llm"
	"github.com/trueconnect/talk/adapters/stt"
	"github.com/trueconnect/talk/adapters/tts"
	"github.com/trueconnect/talk/internal/api"
	"github.com/trueconnect/talk/internal/config"
	"github.com/trueconnect/talk/internal/ws"
	"github.com/trueconnect/talk/usecase"
)

func main() {
	// Initialize logger
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	godotenv.Load()
	cfg := config.Load()

	// Create Echo instance
	e := echo.New()

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	// Initialize adapters
	translator := llm.NewGeminiTranslator(llm.GeminiConfig{
		APIKey: cfg.GeminiAPIKey,
		Model:  cfg.TranslateModel,
	}, logger)
	speechToText := stt.NewGoogleSpeechToText()
	textToSpeech := tts.NewElevenLabsTTS(tts.ElevenLabsConfig{
		APIKey:     cfg.ElevenLabsAPIKey,
		APIBaseURL: cfg.ElevenLabsBaseURL,
	}, logger)
	broadcaster := broadcast.NewRedisBroadcaster(broadcast.RedisConfig{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	}, logger)
	defer broadcaster.Close()

	voices := usecase.VoiceDirectory{
		EnglishMale:      cfg.VoiceEnglishMale,
		EnglishFemale:    cfg.VoiceEnglishFemale,
		VietnameseMale:   cfg.VoiceVietnameseMale,
		VietnameseFemale: cfg.VoiceVietnameseFemale,
		DefaultMale:      cfg.VoiceDefaultMale,
		DefaultFemale:    cfg.VoiceDefaultFemale,
	}

	// Initialize usecase services
	translation := usecase.NewTranslation(translator, logger)
	synthesizer := usecase.NewSynthesizer(textToSpeech, voices, logger)
	messageRelay := usecase.NewMessageRelay(translation, broadcaster, logger)
	voiceRelay := usecase.NewVoiceRelay(speechToText, translation, synthesizer, broadcaster, logger)
	signalRelay := usecase.NewSignalRelay(broadcaster, logger)

	// Initialize WebSocket hub for room subscriptions
	hubCtx, stopHub := context.WithCancel(context.Background())
	defer stopHub()
	hub := ws.NewHub(broadcaster, logger)
	go hub.Run(hubCtx)

	// Initialize API routes
	handler := api.NewHandler(
		translation,
		messageRelay,
		voiceRelay,
		signalRelay,
		synthesizer,
		hub,
		cfg.DeepgramAPIKey,
		logger,
	)
	handler.Register(e)

	// Graceful shutdown
	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			logger.Fatal("shutting down the server", zap.Error(err))
		}
	}()

	logger.Info("Server started", zap.String("port", cfg.Port))

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("Server is shutting down...")
	stopHub()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
