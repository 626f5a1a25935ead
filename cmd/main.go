package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/SergeyBogomolovv/storefront-service/internal/app"
	"github.com/SergeyBogomolovv/storefront-service/internal/config"
	"github.com/SergeyBogomolovv/storefront-service/internal/handler"
	"github.com/SergeyBogomolovv/storefront-service/internal/notifier"
	"github.com/SergeyBogomolovv/storefront-service/internal/postgres"
	"github.com/SergeyBogomolovv/storefront-service/internal/redis"
	"github.com/SergeyBogomolovv/storefront-service/internal/repo"
	"github.com/SergeyBogomolovv/storefront-service/internal/service"
	"github.com/SergeyBogomolovv/storefront-service/pkg/cache"
	"github.com/SergeyBogomolovv/storefront-service/pkg/trm"

	_ "github.com/SergeyBogomolovv/storefront-service/docs"
	"github.com/joho/godotenv"
)

// @title           Storefront Service API
// @version         1.0
// @description     Корзина и оформление заказов витрины
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	db, err := postgres.New(conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	rdb, err := redis.New(conf.Redis)
	panicIfErr("failed to connect to redis", err)
	defer rdb.Close()
	logger.Info("redis connected")

	productRepo := repo.NewProductRepo(db)
	cartRepo := repo.NewCartRepo(db)
	sessionCartRepo := repo.NewSessionCartRepo(rdb, conf.Redis.CartTTL)
	orderRepo := repo.NewOrderRepo(db)
	userRepo := repo.NewUserRepo(db)

	txManager := trm.NewManager(db)
	orderCache := cache.NewLRUCache(conf.Cache.Capacity, conf.Cache.TTL)
	emailNotifier := notifier.New(logger, conf.Kafka)
	defer emailNotifier.Close()

	cartService := service.NewCartService(logger, productRepo, cartRepo, sessionCartRepo)
	orderService := service.NewOrderService(
		logger, txManager, orderRepo, productRepo, userRepo, cartService, emailNotifier, orderCache,
	)

	httpHandler := handler.NewHTTPHandler(logger, cartService, orderService, orderService)
	kafkaHandler := handler.NewKafkaHandler(logger, conf.Kafka, orderService)
	handler.RegisterMetrics()

	app := app.New(logger, conf)

	app.SetHTTPHandlers(httpHandler)
	app.SetConsumers(kafkaHandler)
	app.SetStarters(orderCache)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	panicIfErr("failed to start app", app.Start(ctx))
	<-ctx.Done()
	panicIfErr("failed to stop app", app.Stop())
}

func init() {
	godotenv.Load()
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
