package main

import (
	"context"
	"database/sql"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"google.golang.org/grpc"

	"github.com/rl1809/ticket-service/internal/adapter/handler"
	"github.com/rl1809/ticket-service/internal/adapter/handler/ticketrpc"
	"github.com/rl1809/ticket-service/internal/adapter/storage"
	"github.com/rl1809/ticket-service/internal/config"
	"github.com/rl1809/ticket-service/internal/core/service"
)

func main() {
	cfg, err := config.Load(os.Args[1:], os.Getenv)
	if errors.Is(err, pflag.ErrHelp) {
		return
	}
	if err != nil {
		logrus.Fatalf("load config: %v", err)
	}

	logger := cfg.NewLogger()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize MySQL
	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		logger.Fatalf("failed to connect mysql: %v", err)
	}
	db.SetMaxOpenConns(50)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		logger.Fatalf("failed to ping mysql: %v", err)
	}
	logger.Info("connected to mysql")

	// Initialize Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		PoolSize: 100,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Fatalf("failed to connect redis: %v", err)
	}
	logger.Info("connected to redis")

	// Initialize adapters
	seatReservation := storage.NewRedisSeatReservation(rdb)
	paymentGateway := storage.NewMySQLPaymentGateway(db)

	if err := paymentGateway.EnsureSchema(ctx); err != nil {
		logger.Fatalf("failed to create payment schema: %v", err)
	}

	ticketService := service.NewTicketService(seatReservation, paymentGateway, logger)

	// Initialize gRPC server
	grpcServer := grpc.NewServer()
	ticketrpc.RegisterTicketServiceServer(grpcServer, handler.NewGRPCHandler(ticketService, logger))

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		logger.Fatalf("failed to listen: %v", err)
	}

	go func() {
		logger.Infof("gRPC server listening on %s", cfg.GRPCAddr)
		if err := grpcServer.Serve(lis); err != nil {
			logger.WithError(err).Error("gRPC server error")
		}
	}()

	// Initialize HTTP server
	httpServer := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: handler.NewHTTPHandler(ticketService, logger).Routes(),
	}

	go func() {
		logger.Infof("HTTP server listening on %s", cfg.HTTPAddr)
		if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
			logger.WithError(err).Error("HTTP server error")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Warn("HTTP shutdown")
	}
	logger.Info("HTTP server stopped")

	grpcServer.GracefulStop()
	logger.Info("gRPC server stopped")

	rdb.Close()
	db.Close()
	logger.Info("connections closed")
}
