package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"sgiach_demo_backend/internal/analysis"
	"sgiach_demo_backend/internal/events"
	"sgiach_demo_backend/internal/exports"
	apphttp "sgiach_demo_backend/internal/http"
	"sgiach_demo_backend/internal/http/router"
	"sgiach_demo_backend/internal/mapview"
	"sgiach_demo_backend/internal/notification"
	"sgiach_demo_backend/internal/opportunities"
	"sgiach_demo_backend/internal/placement"
	"sgiach_demo_backend/platform/config"
	"sgiach_demo_backend/platform/logger"
	"sgiach_demo_backend/platform/validator"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr, "analysis_api", cfg.AnalysisAPIURL)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Event bus for decoupled communication between modules
	eventBus := events.NewInMemoryBus(log)

	// Shared validator instance for dependency injection
	val := validator.New()

	// ========================================================================
	// Domain Modules (Composition Root)
	// ========================================================================

	analysisModule := analysis.NewModule(cfg, eventBus, val, log)
	mapviewModule := mapview.NewModule(analysisModule.Service())
	placementModule := placement.NewModule(eventBus, val, log)
	opportunitiesModule := opportunities.NewModule(analysisModule.Client(), val, log)
	exportsModule := exports.NewModule(opportunitiesModule.Service(), placementModule.Service(), eventBus, log)

	// Notification module subscribes to domain events and serves the SSE stream
	notificationModule := notification.NewModule(eventBus, log)
	defer notificationModule.Close()

	// ========================================================================
	// HTTP Layer
	// ========================================================================

	app := &apphttp.App{
		Config:   cfg,
		Logger:   log,
		EventBus: eventBus,
		Modules: []apphttp.Module{
			analysisModule,
			mapviewModule,
			placementModule,
			opportunitiesModule,
			exportsModule,
			notificationModule,
		},
	}

	engine := router.New(app)

	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: engine,
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		log.Info("server listening", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	group.Go(func() error {
		<-groupCtx.Done()
		log.Info("shutdown signal received, gracefully shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := group.Wait(); err != nil {
		log.Error("server error", "error", err)
		panic("server error: " + err.Error())
	}
	log.Info("server stopped")
}
