package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"go-edsm/internal/galaxy"
	"go-edsm/pkg/app"
	"go-edsm/pkg/config"
	"go-edsm/pkg/handlers"
	"go-edsm/pkg/module"
	"go-edsm/pkg/version"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	_ "go.uber.org/automaxprocs"
)

func main() {
	versionInfo := version.Get()
	log.Printf("EDSM gateway %s", version.GetVersionString())
	log.Printf("Build: %s (%s) | GOMAXPROCS: %d of %d CPUs",
		versionInfo.BuildDate, versionInfo.Platform, runtime.GOMAXPROCS(0), runtime.NumCPU())

	appCtx, err := app.InitializeApp("edsm-gateway")
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	galaxyModule := galaxy.NewModule(appCtx.Client)
	modules := []module.Module{galaxyModule}

	r := newRouter(galaxyModule, config.GetEnv("API_PREFIX", ""), appCtx.Settings.EnableTelemetry)

	for _, mod := range modules {
		go mod.StartBackgroundTasks(ctx)
	}

	srv := &http.Server{
		Addr:         ":" + app.GetPort("8080"),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		slog.Info("Starting gateway server", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Received shutdown signal, initiating graceful shutdown")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
	}

	stop()
	for _, mod := range modules {
		mod.Stop()
	}

	appCtx.Shutdown(shutdownCtx)
	slog.Info("Gateway shutdown completed")
}

// newRouter builds the gateway's chi router with the galaxy module's Huma
// operations under apiPrefix + "/galaxy"
func newRouter(galaxyModule *galaxy.Module, apiPrefix string, tracing bool) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(handlers.RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(handlers.TracingMiddleware("edsm-gateway", tracing))

	r.Get("/health", handlers.ServiceHealthHandler())

	humaConfig := huma.DefaultConfig("EDSM Gateway", version.Version)
	humaConfig.Info.Description = "Read-only lookups of Elite Dangerous star systems, bodies and factions from EDSM"

	var api huma.API
	if apiPrefix == "" {
		api = humachi.New(r, humaConfig)
		r.Route("/galaxy-module", galaxyModule.Routes)
	} else {
		r.Route(apiPrefix, func(prefixRouter chi.Router) {
			api = humachi.New(prefixRouter, humaConfig)
			prefixRouter.Route("/galaxy-module", galaxyModule.Routes)
		})
	}

	galaxyModule.RegisterUnifiedRoutes(api, "/galaxy")
	return r
}
