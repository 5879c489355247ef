package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"cardapio/internal/config"
	"cardapio/internal/handler"
	"cardapio/internal/infra/db"
	"cardapio/internal/infra/messaging"
	infraRepo "cardapio/internal/infra/repository"
	"cardapio/internal/observability"
	"cardapio/internal/server"
	"cardapio/internal/usecase"
	"cardapio/internal/validator"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type eventPublisher interface {
	usecase.OrderEventPublisher
	Close() error
}

func main() {
	// prices go out as JSON numbers, not quoted strings
	decimal.MarshalJSONWithoutQuotes = true

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, err := observability.NewLogger(cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	if err := run(cfg, log); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg config.Config, log *zap.Logger) error {
	log.Info("starting", zap.String("env", cfg.GoEnv), zap.String("port", cfg.Port))

	//DB
	gormDB, err := db.Connect(cfg)
	if err != nil {
		return err
	}
	if err := db.Migrate(gormDB); err != nil {
		return err
	}

	//events
	var publisher eventPublisher = messaging.NopPublisher{}
	if len(cfg.KafkaBrokers) > 0 {
		kp, err := messaging.NewKafkaOrderPublisher(cfg.KafkaBrokers, cfg.KafkaOrderTopic, log)
		if err != nil {
			return err
		}
		publisher = kp
		log.Info("kafka publisher ready", zap.Strings("brokers", cfg.KafkaBrokers), zap.String("topic", cfg.KafkaOrderTopic))
	} else {
		log.Info("KAFKA_BROKERS empty, order events disabled")
	}
	defer func() { _ = publisher.Close() }()

	//repositories
	userRepo := infraRepo.NewUserGormRepository(gormDB)
	orderRepo := infraRepo.NewOrderGormRepository(gormDB)
	txm := infraRepo.NewTxManagerGorm(gormDB)

	clock := usecase.NewRealClock()

	//usecases
	orderUC := usecase.NewOrderUsecase(txm, userRepo, validator.NewOrderValidator(), publisher, clock, log)
	adminOrderUC := usecase.NewAdminOrderUsecase(txm, publisher, clock, log)
	deliveryUC := usecase.NewDeliveryAreaUsecase(txm, validator.NewDeliveryAreaValidator(), clock, log)
	dashboardUC := usecase.NewDashboardUsecase(orderRepo, clock, log)

	//http
	e := server.New(log)
	server.RegisterRoutes(e, cfg, userRepo, server.Handlers{
		Orders:      handler.NewOrderHandler(orderUC),
		AdminOrders: handler.NewAdminOrderHandler(adminOrderUC),
		Delivery:    handler.NewDeliveryHandler(deliveryUC),
		Dashboard:   handler.NewDashboardHandler(dashboardUC),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.Run(ctx, e, ":"+cfg.Port, cfg.ShutdownTimeout, log)
}
