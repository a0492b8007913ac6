// @title Hearth API
// @description Medication adherence and anonymous peer support API for "Hearth"
// @BasePath /api/v1
// @schemes http
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hearth/sanctuary/internal/api"
	"github.com/hearth/sanctuary/internal/repository"
	"github.com/hearth/sanctuary/internal/service"
	"github.com/hearth/sanctuary/pkg/cleanup"
	"github.com/hearth/sanctuary/pkg/config"
	jwtservice "github.com/hearth/sanctuary/pkg/jwt_service"
)

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.GetLogLevel("LOG_LEVEL"),
	})))
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
	pool, err := repository.NewPool(ctx, &dbCfg)
	if err != nil {
		slog.Error("connecting to postgres error", slog.String("error", err.Error()))
		os.Exit(1)
	}
	secret := cfg.GetString("JWT_SECRET")
	if secret == "" {
		slog.Error("JWT_SECRET is not set")
		cleanup.CleanUp()
		os.Exit(1)
	}

	adherenceService := service.NewAdherenceService(repository.NewDoseEventsRepo(pool))
	aliasesRepo := repository.NewAliasesRepo(pool)
	threadsService := service.NewThreadsService(&service.ThreadsRepos{
		Threads: repository.NewThreadsRepo(pool),
		Replies: repository.NewRepliesRepo(pool),
		Aliases: aliasesRepo,
		Flags:   repository.NewFlagsRepo(pool),
	})
	serv := api.New(&api.ServicesList{
		AdherenceService: adherenceService,
		ThreadsService:   threadsService,
		AliasService:     service.NewAliasService(aliasesRepo),
		JwtService:       jwtservice.New(secret, cfg.GetString("JWT_ISSUER")),
		DB:               pool,
	},
		api.WithDefaultLocation(cfg.GetLocation("DEFAULT_TIMEZONE")),
		api.WithRequestTimeout(cfg.GetDuration("REQUEST_TIMEOUT", 10*time.Second)),
	)

	errCh := make(chan error, 1)
	go func() {
		errCh <- serv.Run(cfg.GetStringOr("API_ADDRESS", ":8080"))
	}()
	select {
	case <-ctx.Done():
		slog.Info("shutdown signal received")
	case err = <-errCh:
		if err != nil {
			slog.Error("server error", slog.String("error", err.Error()))
		}
	}
	cleanup.CleanUp()
}
