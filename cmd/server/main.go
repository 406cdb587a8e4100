package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"paperbuddy/internal/config"
	"paperbuddy/internal/handler"
	"paperbuddy/internal/illustration"
	"paperbuddy/internal/metadata"
	"paperbuddy/internal/pdf"
	"paperbuddy/internal/port"
	"paperbuddy/internal/router"
	"paperbuddy/internal/service"
	"paperbuddy/internal/summarize"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Without a backend credential every summary comes from the fallback
	// table; the service treats a nil backend as "not configured".
	var backend port.SummaryBackend
	if cfg.Summarizer.APIKey != "" {
		backend = summarize.NewClient(&cfg.Summarizer)
	} else {
		log.Printf("no summarizer API key configured, serving fallback summaries")
	}

	extractor := pdf.NewExtractor()
	fetcher := metadata.NewArxivFetcher(time.Duration(cfg.Metadata.TimeoutSecs) * time.Second)

	paperSvc := service.NewPaperService(extractor, fetcher, cfg.Upload.MaxFileSizeBytes())
	summarySvc := service.NewSummaryService(backend)

	healthH := handler.NewHealthHandler(cfg.Version)
	paperH := handler.NewPaperHandler(paperSvc)
	summaryH := handler.NewSummaryHandler(paperSvc, summarySvc)
	imageH := handler.NewIllustrationHandler(illustration.NewGenerator())

	r := router.Setup(cfg.CORS.AllowedOrigins, healthH, paperH, summaryH, imageH)

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := srv.ListenAndServe(); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
