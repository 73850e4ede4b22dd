package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/fahimahmed420/CampusPilot-server/internal/auth"
	"github.com/fahimahmed420/CampusPilot-server/internal/config"
	httpx "github.com/fahimahmed420/CampusPilot-server/internal/http"
	"github.com/fahimahmed420/CampusPilot-server/internal/observability"
	"github.com/fahimahmed420/CampusPilot-server/internal/store"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg := config.Load()

	// start up the observability logger
	log := observability.NewLogger(cfg.Env)

	// tracing is best effort: a missing collector must not block startup
	shutdownTracer, err := observability.InitTracer(context.Background(), "campuspilot-api", cfg.OTLPEndpoint)

	if err != nil {
		log.Warn("tracing disabled", "err", err)
		shutdownTracer = func(context.Context) error { return nil }
	}

	// the store connects lazily on first use
	st := store.New(cfg.MongoURI, cfg.MongoDB, log)

	verifier, err := newVerifier(cfg)

	if err != nil {
		log.Error("could not set up identity verifier", "err", err)
		os.Exit(1)
	}

	router := httpx.NewRouter(log, st, verifier, cfg)

	// server set up
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info("Server starting", "port", cfg.Port, "env", cfg.Env)
		err := srv.ListenAndServe()

		if err != nil && err != http.ErrServerClosed {
			log.Error("server failed", "err", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	log.Info("server shutting down")

	shutdownCh := make(chan struct{})

	go func() {
		defer close(shutdownCh)

		ctx, cancel := config.WithTimeout(10 * time.Second)

		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error("graceful shutdown failed", "err", err)
		}

		if err := st.Close(ctx); err != nil {
			log.Error("store close failed", "err", err)
		}

		if err := shutdownTracer(ctx); err != nil {
			log.Error("tracer shutdown failed", "err", err)
		}
	}()

	select {
	case <-shutdownCh:
		log.Info("shutdown complete")

	case <-time.After(12 * time.Second):
		log.Error("shutdown timed out")
	}
}

func newVerifier(cfg config.Config) (auth.Verifier, error) {
	if cfg.AuthMode == "static" {
		if cfg.JWTSecret == "" {
			return nil, fmt.Errorf("AUTH_MODE=static requires JWT_SECRET")
		}

		return auth.NewStaticVerifier(cfg.JWTSecret), nil
	}

	ctx, cancel := config.WithTimeout(10 * time.Second)
	defer cancel()

	return auth.NewFirebaseVerifier(ctx, cfg.FirebaseProjectID)
}
