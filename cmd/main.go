package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/mshop-dev/order-service/docs"
	"github.com/mshop-dev/order-service/internal/app"
	"github.com/mshop-dev/order-service/internal/config"
	"github.com/mshop-dev/order-service/internal/events"
	"github.com/mshop-dev/order-service/internal/handler"
	"github.com/mshop-dev/order-service/internal/postgres"
	"github.com/mshop-dev/order-service/internal/repo"
	"github.com/mshop-dev/order-service/internal/service"
	"github.com/mshop-dev/order-service/pkg/cache"
	"github.com/mshop-dev/order-service/pkg/trm"

	"github.com/joho/godotenv"
)

// @title           Order Service API
// @version         1.0
// @description     Чекаут, заказы и корзина маркетплейса
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	db, err := postgres.New(conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	marketRepo := repo.NewPostgresRepo(db)
	txManager := trm.NewManager(db)
	detailCache := cache.NewLRUCache(conf.Cache.Capacity, conf.Cache.TTL)

	orderService := service.NewOrderService(logger, txManager,
		marketRepo, marketRepo, marketRepo, marketRepo, marketRepo, detailCache)
	cartService := service.NewCartService(logger, txManager,
		marketRepo, marketRepo, marketRepo, marketRepo, marketRepo)

	publisher := events.NewPublisher(logger, conf.Kafka)
	httpHandler := handler.NewHTTPHandler(logger, orderService, cartService, publisher)
	handler.RegisterMetrics()

	app := app.New(logger, conf)
	app.SetHTTPHandlers(httpHandler)
	app.SetClosers(publisher)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	detailCache.StartJanitor(ctx)

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
