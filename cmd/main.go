package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"carrybid/internal/app"
	"carrybid/internal/config"
	"carrybid/internal/events"
	"carrybid/internal/handler"
	"carrybid/internal/postgres"
	"carrybid/internal/repo"
	"carrybid/internal/service"
	"carrybid/pkg/cache"
	"carrybid/pkg/trm"
	"carrybid/pkg/utils"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
)

func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	db, err := connectWithRetry(conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	panicIfErr("failed to run migrations", postgres.Migrate(db))

	repository := repo.NewPostgresRepo(db)
	txManager := trm.NewManager(db)
	profileCache := cache.NewLRUCache(conf.Cache.Capacity, conf.Cache.TTL)
	publisher := events.NewKafkaPublisher(logger, conf.Kafka)

	orderService := service.NewOrderService(logger, txManager, repository, repository, repository, publisher, conf.Policy)
	userService := service.NewUserService(logger, repository, repository, repository, profileCache)

	httpHandler := handler.NewHTTPHandler(logger, orderService, userService)

	application := app.New(logger, conf)
	application.SetHTTPHandlers(httpHandler)
	application.SetClosers(publisher)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	profileCache.StartJanitor(ctx)

	application.Start(ctx)
	<-ctx.Done()
	application.Stop()
}

func init() {
	godotenv.Load()
}

func connectWithRetry(cfg config.Postgres) (db *sqlx.DB, err error) {
	retryCfg := utils.RetryConfig{
		InitialDelay: 500 * time.Millisecond,
		MaxAttempts:  5,
		Multiplier:   2,
	}
	err = utils.Retry(retryCfg, func() error {
		db, err = postgres.New(cfg)
		return err
	})
	return db, err
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}
