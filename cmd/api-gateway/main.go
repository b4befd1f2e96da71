package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/jcmexdev/ecommerce-orders/internal/api-gateway/infra/adapters/service"
	"github.com/jcmexdev/ecommerce-orders/internal/api-gateway/infra/httpx"
	"github.com/jcmexdev/ecommerce-orders/internal/api-gateway/infra/httpx/middlewares"
	orderv1 "github.com/jcmexdev/ecommerce-orders/internal/genproto/order/v1"
	"github.com/jcmexdev/ecommerce-orders/internal/pkg/config"
	"github.com/jcmexdev/ecommerce-orders/internal/pkg/telemetry"
)

func main() {
	cfg, err := config.LoadGateway()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	telemetry.InitLogger(cfg.Telemetry.ServiceName, cfg.Telemetry.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdown, err := telemetry.SetupTracer(ctx, cfg.Telemetry)
	if err != nil {
		slog.Error("failed to initialise tracer", "error", err)
		os.Exit(1)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			slog.Error("tracer shutdown error", "error", err)
		}
	}()

	orderConn := createGRPCConn(cfg.OrderServiceAddr)
	defer orderConn.Close()

	orderService := service.NewGRPCOrderClient(orderv1.NewOrderServiceClient(orderConn))
	handler := httpx.NewHandler(orderService)
	router := httpx.NewRouter(handler, middlewares.HeaderVerifier{
		SubjectHeader: cfg.SubjectHeader,
		RolesHeader:   cfg.RolesHeader,
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           http.TimeoutHandler(router, cfg.RequestTimeout, `{"success":false,"message":"Request timed out"}`),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("http shutdown error", "error", err)
		}
	}()

	slog.Info("API gateway running", "addr", cfg.HTTPAddr, "order_service", cfg.OrderServiceAddr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("http server failed", "error", err)
		os.Exit(1)
	}
}

func createGRPCConn(addr string) *grpc.ClientConn {
	conn, err := grpc.NewClient(addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithStatsHandler(otelgrpc.NewClientHandler()),
	)
	if err != nil {
		slog.Error("could not connect", "addr", addr, "error", err)
		os.Exit(1)
	}
	return conn
}
