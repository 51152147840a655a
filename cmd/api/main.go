package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "AppealOS/docs"
	"AppealOS/internal/auth"
	"AppealOS/internal/config"
	"AppealOS/internal/events"
	"AppealOS/internal/export"
	"AppealOS/internal/gate"
	"AppealOS/internal/handler"
	"AppealOS/internal/llm"
	"AppealOS/internal/logger"
	"AppealOS/internal/middleware"
	"AppealOS/internal/session"
	"AppealOS/internal/storage"
	"AppealOS/internal/workflow"

	"golang.org/x/crypto/bcrypt"
)

const (
	sweepInterval   = 10 * time.Minute
	shutdownTimeout = 15 * time.Second
)

// @title           AppealOS API
// @version         1.0
// @description     Clinic dashboard for dictating, drafting and exporting insurance appeal letters.
// @BasePath        /

// @securityDefinitions.apikey SessionToken
// @in                         header
// @name                       Authorization
// @description                Session token issued in the X-Session-Token header, sent as "Bearer <token>". Browsers use the appeal_session cookie instead.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	logger.Init(&logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	if err := run(cfg); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var closers []io.Closer
	defer func() {
		for i := len(closers) - 1; i >= 0; i-- {
			if err := closers[i].Close(); err != nil {
				slog.Warn("close failed", "error", err)
			}
		}
	}()

	g, err := gate.New(cfg.ClinicPasscode, bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	openai := llm.NewOpenAIClient(llm.OpenAIConfig{
		APIKey:          cfg.OpenAIAPIKey,
		BaseURL:         cfg.OpenAIBaseURL,
		ChatModel:       cfg.OpenAIChatModel,
		TranscribeModel: cfg.OpenAITranscribeModel,
	})

	var transcriber workflow.Transcriber = openai
	if cfg.STTProvider == config.STTProviderGoogle {
		google, err := llm.NewGoogleTranscriber(ctx, cfg.GoogleCredentials, cfg.SpeechLanguage)
		if err != nil {
			return err
		}
		closers = append(closers, google)
		transcriber = google
	}

	var speaker workflow.Speaker
	if cfg.TTSEnabled {
		tts, err := llm.NewTTSClient(ctx, cfg.GoogleCredentials, cfg.SpeechLanguage)
		if err != nil {
			return err
		}
		closers = append(closers, tts)
		speaker = tts
	}

	// A store that cannot be opened disables saving and history only.
	var store storage.Store
	store, err = storage.Open(ctx, cfg.StoreURL, cfg.StoreKey)
	if err != nil {
		slog.Error("appeal storage unavailable", "error", err)
		store = storage.Unavailable{Reason: err}
	}
	closers = append(closers, store)

	var publisher events.Publisher = &events.NoopPublisher{}
	if cfg.NATSURL != "" {
		nc, err := events.NewNATSPublisher(cfg.NATSURL)
		if err != nil {
			slog.Warn("event publishing disabled", "error", err)
		} else {
			closers = append(closers, nc)
			publisher = nc
		}
	}

	svc := workflow.New(workflow.Deps{
		Gate:        g,
		Transcriber: transcriber,
		Drafter:     openai,
		Speaker:     speaker,
		Store:       store,
		Publisher:   publisher,
		Exporter:    export.New(),
	})

	sessions := session.NewStore(cfg.SessionTTL)
	go sessions.RunSweeper(ctx, sweepInterval)

	router := handler.NewRouter(handler.RouterConfig{
		Service: svc,
		Sessions: middleware.SessionConfig{
			Store:  sessions,
			Signer: auth.NewTokenSigner(cfg.SessionSecret, cfg.SessionTTL),
			Secure: cfg.SecureCookies,
		},
		RateLimitPerMinute: cfg.RateLimitPerMinute,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		// drafting and transcription wait on upstream models
		WriteTimeout: 3 * time.Minute,
		IdleTimeout:  2 * time.Minute,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server starting", "addr", srv.Addr, "stt_provider", cfg.STTProvider, "tts_enabled", cfg.TTSEnabled)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
