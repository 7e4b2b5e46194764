package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/examcoach-ai/coach-server/internal/ai"
	"github.com/examcoach-ai/coach-server/internal/coach"
	"github.com/examcoach-ai/coach-server/internal/ocr"
	"github.com/examcoach-ai/coach-server/internal/platform/cache"
	"github.com/examcoach-ai/coach-server/internal/platform/config"
	"github.com/examcoach-ai/coach-server/internal/platform/database"
	"github.com/examcoach-ai/coach-server/internal/syllabus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	setupLogger(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	weightage := syllabus.NewTable()
	if cfg.Syllabus.OverlayDir != "" {
		if err := weightage.LoadDir(cfg.Syllabus.OverlayDir); err != nil {
			slog.Error("failed to load syllabus overlays", "error", err)
			os.Exit(1)
		}
	}

	var events coach.EventLogger = coach.NopEventLogger{}
	var db *database.DB
	if cfg.HasDatabase() {
		db, err = database.New(ctx, cfg.Database.URL, cfg.Database.MaxConns, cfg.Database.MinConns)
		if err != nil {
			slog.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer db.Close()

		pgEvents := coach.NewPostgresEventLogger(db.Pool)
		if err := pgEvents.Init(ctx); err != nil {
			slog.Error("failed to prepare event log", "error", err)
			os.Exit(1)
		}
		events = pgEvents
		slog.Info("database connected")
	}

	var reportCache *cache.Cache
	if cfg.HasCache() {
		reportCache, err = cache.New(ctx, cfg.Cache.URL)
		if err != nil {
			slog.Error("failed to connect to cache", "error", err)
			os.Exit(1)
		}
		defer reportCache.Close()
		slog.Info("cache connected", "report_ttl", cfg.Cache.ReportTTL)
	}

	router := ai.NewRouter()
	if cfg.HasAIProvider() {
		router.Register("google", ai.NewGoogleProvider(
			cfg.AI.Google.APIKey,
			ai.WithGoogleModel(cfg.AI.Google.Model),
		))
		slog.Info("AI provider registered", "provider", "google", "model", cfg.AI.Google.Model)
	} else {
		slog.Warn("no AI provider configured, plan and chat use static fallbacks")
	}

	var extractor ocr.Extractor
	if cfg.HasOCR() {
		extractor = ocr.NewHTTPExtractor(cfg.OCR.URL)
		slog.Info("OCR extractor configured", "url", cfg.OCR.URL)
	}

	engineCfg := coach.EngineConfig{
		Weightage: weightage,
		Events:    events,
	}
	if router.HasProvider() {
		engineCfg.AI = router
	}
	engine := coach.NewEngine(engineCfg)

	srv := &server{
		engine:    engine,
		db:        db,
		cache:     reportCache,
		reportTTL: cfg.Cache.ReportTTL,
		extractor: extractor,
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	httpSrv := &http.Server{
		Addr:         addr,
		Handler:      srv.routes(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		slog.Info("server starting", "addr", httpSrv.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}

func setupLogger(cfg config.LogConfig) {
	level := slog.LevelInfo
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if strings.ToLower(cfg.Format) == "text" {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(handler))
}
