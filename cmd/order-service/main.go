package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"

	orderv1 "github.com/jcmexdev/ecommerce-orders/internal/genproto/order/v1"
	grpcadapter "github.com/jcmexdev/ecommerce-orders/internal/order-service/adapters/grpc"
	"github.com/jcmexdev/ecommerce-orders/internal/order-service/adapters/sqlite"
	"github.com/jcmexdev/ecommerce-orders/internal/order-service/app"
	"github.com/jcmexdev/ecommerce-orders/internal/order-service/domain"
	"github.com/jcmexdev/ecommerce-orders/internal/order-service/outbox"
	"github.com/jcmexdev/ecommerce-orders/internal/order-service/seed"
	"github.com/jcmexdev/ecommerce-orders/internal/pkg/cache"
	"github.com/jcmexdev/ecommerce-orders/internal/pkg/config"
	"github.com/jcmexdev/ecommerce-orders/internal/pkg/interceptors"
	"github.com/jcmexdev/ecommerce-orders/internal/pkg/messaging"
	"github.com/jcmexdev/ecommerce-orders/internal/pkg/messaging/kafka"
	"github.com/jcmexdev/ecommerce-orders/internal/pkg/telemetry"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cliApp := &cli.App{
		Name:  "order-service",
		Usage: "order lifecycle and pricing gRPC service",
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "run the gRPC server and the outbox relay",
				Action: serve,
			},
			{
				Name:   "seed",
				Usage:  "insert demo orders into an empty database",
				Action: seedDemo,
			},
		},
		DefaultCommand: "serve",
	}

	if err := cliApp.RunContext(ctx, os.Args); err != nil {
		slog.Error("order service stopped", "error", err)
		os.Exit(1)
	}
}

// bootstrap loads configuration, installs the logger and opens the store.
func bootstrap() (config.OrderService, domain.Pricing, *sqlite.Repository, error) {
	cfg, err := config.LoadOrderService()
	if err != nil {
		return cfg, domain.Pricing{}, nil, err
	}
	telemetry.InitLogger(cfg.Telemetry.ServiceName, cfg.Telemetry.LogLevel)

	taxRate, shippingFee, err := cfg.Rates()
	if err != nil {
		return cfg, domain.Pricing{}, nil, err
	}
	pricing := domain.Pricing{TaxRate: taxRate, ShippingFee: shippingFee}

	if dir := filepath.Dir(cfg.DatabasePath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return cfg, pricing, nil, fmt.Errorf("create data dir %q: %w", dir, err)
		}
	}
	repo, err := sqlite.Open(cfg.DatabasePath)
	if err != nil {
		return cfg, pricing, nil, err
	}
	return cfg, pricing, repo, nil
}

func seedDemo(c *cli.Context) error {
	_, pricing, repo, err := bootstrap()
	if err != nil {
		return err
	}
	defer repo.Close()

	n, err := seed.Run(c.Context, repo, pricing, time.Now())
	if err != nil {
		return err
	}
	slog.Info("seed finished", "inserted", n)
	return nil
}

func serve(c *cli.Context) error {
	ctx := c.Context

	cfg, pricing, repo, err := bootstrap()
	if err != nil {
		return err
	}
	defer repo.Close()

	shutdown, err := telemetry.SetupTracer(ctx, cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("initialise tracer: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			slog.Error("tracer shutdown error", "error", err)
		}
	}()

	var opts []app.Option
	if cfg.RedisAddr != "" {
		redisCache, closeCache := cache.NewRedisCache(cfg.RedisAddr, "order")
		defer closeCache()
		opts = append(opts, app.WithCache(redisCache, cfg.IdempotencyTTL))
	} else {
		slog.Warn("REDIS_ADDR not set, idempotent create replay disabled")
	}
	svc := app.NewService(repo, pricing, opts...)

	var publisher messaging.Publisher = messaging.LoggingPublisher{Logger: slog.Default()}
	if len(cfg.KafkaBrokers) > 0 {
		kp := kafka.NewPublisher(cfg.KafkaBrokers)
		defer kp.Close()
		publisher = kp
	} else {
		slog.Warn("KAFKA_BROKERS not set, order events are logged only")
	}
	relay, err := outbox.NewRelay(repo, publisher, outbox.Config{
		Topic:        cfg.EventsTopic,
		PollInterval: cfg.OutboxPollInterval,
		BatchSize:    cfg.OutboxBatchSize,
		MaxAttempts:  cfg.OutboxMaxAttempts,
	})
	if err != nil {
		return err
	}

	addr := ":" + cfg.Port
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", addr, err)
	}

	grpcServer := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.UnaryInterceptor(interceptors.TraceServerInterceptor()),
	)
	orderv1.RegisterOrderServiceServer(grpcServer, grpcadapter.NewServer(svc))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("order service gRPC running", "addr", addr, "database", cfg.DatabasePath)
		if err := grpcServer.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			return fmt.Errorf("serve gRPC: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		return relay.Run(gctx)
	})
	g.Go(func() error {
		<-gctx.Done()
		slog.Info("shutting down order service")
		grpcServer.GracefulStop()
		return nil
	})
	return g.Wait()
}
