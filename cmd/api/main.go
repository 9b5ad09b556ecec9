// @title                       Bistro Boss API
// @version                     1.0
// @description                 Restaurant ordering API: menu, carts, payments and admin reports.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	_ "github.com/bistroboss/restaurant-api/docs"
	"github.com/bistroboss/restaurant-api/internal/api"
	"github.com/bistroboss/restaurant-api/internal/api/handler"
	"github.com/bistroboss/restaurant-api/internal/core/ports"
	"github.com/bistroboss/restaurant-api/internal/core/service"
	mongodb "github.com/bistroboss/restaurant-api/internal/infrastructure/db/mongo"
	redisdb "github.com/bistroboss/restaurant-api/internal/infrastructure/db/redis"
	"github.com/bistroboss/restaurant-api/internal/infrastructure/mail"
	"github.com/bistroboss/restaurant-api/internal/infrastructure/payment"
	"github.com/bistroboss/restaurant-api/internal/infrastructure/queue"
	"github.com/bistroboss/restaurant-api/internal/pkg/config"
	"github.com/bistroboss/restaurant-api/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		// The logger is not configured yet.
		boot := zerolog.New(os.Stderr)
		boot.Fatal().Err(err).Msg("load configuration")
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "bistro-api",
	})

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	// --- Storage ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		return err
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := mongoClient.Disconnect(disconnectCtx); err != nil {
			log.Warn().Err(err).Msg("mongo disconnect")
		}
	}()

	redisCfg := redisdb.Config{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB}
	rdb, err := redisdb.Connect(ctx, redisCfg)
	if err != nil {
		// Payments fall back to the unique index until Redis is back.
		log.Warn().Err(err).Msg("redis unavailable at startup, payment guard degraded")
		rdb = redisdb.NewClient(redisCfg)
	}
	defer rdb.Close()

	userRepo := mongodb.NewUserRepository(db)
	paymentRepo := mongodb.NewPaymentRepository(db)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := paymentRepo.EnsureIndexes(ctx); err != nil {
		return err
	}

	// --- Background work ---
	dispatcher := queue.NewDispatcher(cfg.Workers, log.With().Str("component", "dispatcher").Logger())
	workerCtx, cancelWorkers := context.WithCancel(context.Background())
	defer cancelWorkers()
	dispatcher.Start(workerCtx)

	var notifier ports.OrderNotifier = mail.NewLogNotifier(log)
	if cfg.Mailgun.Enabled() {
		notifier = mail.NewMailgunNotifier(mail.MailgunConfig{
			Domain:   cfg.Mailgun.Domain,
			APIKey:   cfg.Mailgun.APIKey,
			From:     cfg.Mailgun.From,
			EURegion: cfg.Mailgun.EURegion,
		}, log)
	} else {
		log.Info().Msg("mailgun not configured, order confirmations are logged only")
	}

	gateway := payment.NewBraintreeGateway(payment.BraintreeConfig{
		Environment: cfg.Braintree.Environment,
		MerchantID:  cfg.Braintree.MerchantID,
		PublicKey:   cfg.Braintree.PublicKey,
		PrivateKey:  cfg.Braintree.PrivateKey,
	})

	// --- Services ---
	cartRepo := mongodb.NewCartRepository(db)
	deps := api.Dependencies{
		Tokens:    service.NewTokenService(cfg.AccessTokenSecret, cfg.TokenTTL),
		Roles:     userRepo,
		Users:     service.NewUserService(userRepo, log),
		Menu:      service.NewMenuService(mongodb.NewMenuRepository(db)),
		Reviews:   service.NewReviewService(mongodb.NewReviewRepository(db)),
		Bookings:  service.NewBookingService(mongodb.NewBookingRepository(db)),
		Carts:     service.NewCartService(cartRepo),
		Reporting: service.NewReportingService(mongodb.NewStatsRepository(db)),
		Payments: service.NewPaymentService(service.PaymentServiceDeps{
			Payments: paymentRepo,
			Carts:    cartRepo,
			Guard:    redisdb.NewPaymentGuard(rdb),
			Gateway:  gateway,
			Notifier: notifier,
			Tasks:    dispatcher,
			Currency: cfg.Braintree.Currency,
		}, log),
		Ready: handler.NewHealthDependenciesHandler(mongoClient, rdb),
		Log:   log,
	}

	// --- HTTP ---
	e := api.NewRouter(deps)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           e,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http shutdown")
	}

	// Let queued confirmations and cart cleanups finish.
	done := make(chan struct{})
	go func() {
		dispatcher.Close()
		close(done)
	}()
	select {
	case <-done:
	case <-shutdownCtx.Done():
		log.Warn().Msg("background tasks still running at shutdown deadline")
		cancelWorkers()
	}
	return nil
}
