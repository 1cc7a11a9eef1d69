package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/forexel/PrivetManagerApp/internal/api"
	"github.com/forexel/PrivetManagerApp/internal/clients/renderer"
	"github.com/forexel/PrivetManagerApp/internal/clients/s3"
	"github.com/forexel/PrivetManagerApp/internal/entity"
	"github.com/forexel/PrivetManagerApp/internal/repository"
	"github.com/forexel/PrivetManagerApp/internal/service"
	"github.com/forexel/PrivetManagerApp/pkg/broker"
	"github.com/forexel/PrivetManagerApp/pkg/config"
	"github.com/forexel/PrivetManagerApp/pkg/logger"
	"github.com/forexel/PrivetManagerApp/pkg/postgres"
)

const (
	ReadTimeout  = 5 * time.Second
	WriteTimeout = 30 * time.Second
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.New(".env")
	panicOnErr("load config", err)

	l, err := logger.New(cfg.Logger.Level, cfg.Logger.Format)
	panicOnErr("create logger", err)

	pool, err := postgres.Connect(ctx, cfg.Postgres.DSN, cfg.Postgres.MaxConn)
	panicOnErr("connect to postgres", err)
	defer pool.Close()

	err = postgres.UpMigrations(cfg.Postgres.DSN)
	panicOnErr("up migrations", err)

	repo := repository.New(pool)

	storage := s3.NewClient(cfg.Storage)
	rend := renderer.New(cfg.Renderer)

	producer := broker.NewProducer(l, cfg.Kafka.Brokers, cfg.Kafka.ContourEventsTopic)
	defer producer.Close()

	s := service.New(cfg, repo, storage, rend, producer)

	manager := api.NewHandler(s, entity.ContourManager)
	master := api.NewHandler(s, entity.ContourMaster)
	mw := api.NewMiddleware(s)

	router := api.NewRouter(manager, master, mw)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      router,
		ReadTimeout:  ReadTimeout,
		WriteTimeout: WriteTimeout,
	}

	var wg sync.WaitGroup

	wg.Add(1)

	go func() {
		defer wg.Done()

		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Panicf("listen and serve: %s", err)
		}
	}()

	slog.InfoContext(ctx, "service started", "port", cfg.HTTP.Port)

	wg.Add(1)

	go func() {
		defer wg.Done()

		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
		sig := <-ch

		slog.InfoContext(ctx, "got OS signal", "signal", sig.String())

		err = server.Shutdown(ctx)
		if err != nil {
			slog.ErrorContext(ctx, "server shutdown", "error", err)
		}
	}()

	wg.Wait()
}

func panicOnErr(msg string, err error) {
	if err != nil {
		log.Panicf("%s: %s", msg, err)
	}
}
