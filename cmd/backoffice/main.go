package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	. "github.com/DrGermanius/backoffice/internal"
	"github.com/DrGermanius/backoffice/internal/payout"
	"github.com/DrGermanius/backoffice/internal/validation"
	"github.com/DrGermanius/backoffice/internal/vault"
)

func main() {
	//share percent as a json number
	//https://github.com/shopspring/decimal/issues/21
	decimal.MarshalJSONWithoutQuotes = true

	z, err := zap.NewProduction()
	if err != nil {
		log.Fatal(err)
	}
	sugaredLogger := z.Sugar()
	defer sugaredLogger.Sync() //nolint:errcheck

	cfg, err := NewConfig()
	if err != nil {
		sugaredLogger.Fatal(err)
	}

	repository, err := NewRepository(cfg.DatabaseURI, sugaredLogger)
	if err != nil {
		sugaredLogger.Fatal(err)
	}

	v, err := vault.New(cfg.PaymentInfoSecret)
	if err != nil {
		sugaredLogger.Fatal(err)
	}

	validate, err := validation.New()
	if err != nil {
		sugaredLogger.Fatal(err)
	}

	provider := payout.NewClient(cfg.PayoutProviderAddress, cfg.PayoutProviderSecretKey, cfg.PayoutTimeout, sugaredLogger)
	service := NewService(repository, provider, v, sugaredLogger)
	handlers := NewHandlers(service, validate, cfg.PayoutCallbackToken, sugaredLogger)

	app := fiber.New()
	app.Use(recover.New())
	app.Use(logger.New())
	handlers.Register(app, []byte(cfg.JWTSecret))

	go func() {
		if err := app.Listen(cfg.RunAddress); err != nil {
			sugaredLogger.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	sugaredLogger.Info("Shutting down service...")

	if err = app.Shutdown(); err != nil {
		sugaredLogger.Errorf("Error on shutdown: %s", err.Error())
	}
	if err = repository.Conn.Close(); err != nil {
		sugaredLogger.Errorf("Error on closing database: %s", err.Error())
	}
}
