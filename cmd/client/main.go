package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"github.com/huddleapp/huddle-client/internal/client/rest"
	"github.com/huddleapp/huddle-client/internal/config"
	"github.com/huddleapp/huddle-client/internal/logger"
	"github.com/huddleapp/huddle-client/internal/pkg/token"
	"github.com/huddleapp/huddle-client/internal/registry"
	db "github.com/huddleapp/huddle-client/internal/repository/postgres"
	"github.com/huddleapp/huddle-client/internal/session"
	"github.com/huddleapp/huddle-client/internal/transport"
)

func main() {
	cfg := config.MustLoad()

	log, err := logger.New(cfg.Logger.Level, cfg.Logger.Format)
	if err != nil {
		panic(fmt.Sprintf("failed to create logger: %v", err))
	}

	tokens := token.New()
	if err := tokens.Set(cfg.API.AccessToken); err != nil {
		log.Fatal().Err(err).Msg("invalid access token")
	}

	apiClient := rest.New(cfg, tokens)
	defer apiClient.Close()

	var cache session.HistoryCache
	if cfg.Cache.Enabled() {
		repo, err := db.New(cfg)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to open history cache")
		}
		defer repo.Close()
		cache = repo
	}

	channel := transport.New(cfg, tokens, log)
	rooms := registry.New(channel, log)
	manager := session.New(apiClient, rooms, channel, cache, log)

	channel.OnReconnect(manager.HandleReconnect)
	channel.OnDisconnect(func(err error) {
		log.Warn().Err(err).Msg("realtime channel disconnected")
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := channel.Connect(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to connect realtime channel")
	}

	router := chi.NewRouter()
	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.Get("/status", func(w http.ResponseWriter, r *http.Request) {
		status := map[string]interface{}{
			"state":     manager.State(),
			"connected": channel.Connected(),
			"joined":    rooms.Joined(),
		}
		if selected := manager.Selected(); selected != nil {
			status["selected_room"] = selected.ID
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(status)
	})

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Service.StatusPort),
		Handler: router,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := manager.Run(gctx); err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("session loop error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("status server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		manager.DisconnectSocket()
		return httpServer.Shutdown(context.Background())
	})

	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("client stopped with error")
	}
}
