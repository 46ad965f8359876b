package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/LavaJover/shvark-escrow-service/internal/app/background"
	"github.com/LavaJover/shvark-escrow-service/internal/app/setup"
	"github.com/LavaJover/shvark-escrow-service/internal/config"
	"github.com/LavaJover/shvark-escrow-service/internal/delivery/grpcapi"
	"github.com/LavaJover/shvark-escrow-service/internal/delivery/grpcapi/escrowpb"
	"github.com/LavaJover/shvark-escrow-service/internal/delivery/http/handlers"
	"github.com/LavaJover/shvark-escrow-service/internal/infrastructure/logger"
	"github.com/joho/godotenv"
	"google.golang.org/grpc"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	// Reading config
	cfg := config.MustLoad()

	slogger, logCloser := logger.New(cfg.LogConfig)
	defer logCloser.Close()

	deps, err := setup.InitializeDependencies(cfg, slogger)
	if err != nil {
		log.Fatalf("failed to init dependencies: %v", err)
	}
	defer deps.Close()

	useCases := setup.InitializeUseCases(deps)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Фоновые задачи
	background.NewBackgroundTasks(useCases.EscrowUsecase, deps.Metrics, slogger).StartAll(ctx)

	// Creating gRPC server
	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpcapi.LoggingInterceptor(slogger),
			grpcapi.SignerInterceptor(deps.TokenVerifier),
		),
	)
	escrowpb.RegisterEscrowServiceServer(grpcServer, grpcapi.NewEscrowHandler(useCases.EscrowUsecase))

	lis, err := net.Listen("tcp", fmt.Sprintf("%s:%s", cfg.GRPCServer.Host, cfg.GRPCServer.Port))
	if err != nil {
		log.Fatalf("failed to listen: %v", err)
	}

	httpServer := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.HTTPServer.Host, cfg.HTTPServer.Port),
		Handler:           handlers.NewRouter(handlers.NewEscrowHandler(useCases.EscrowUsecase), deps.Registry),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		slogger.Info("http server started", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slogger.Error("http server failed", "error", err.Error())
			stop()
		}
	}()

	go func() {
		slogger.Info("gRPC server started", "addr", lis.Addr().String())
		if err := grpcServer.Serve(lis); err != nil {
			slogger.Error("gRPC server failed", "error", err.Error())
			stop()
		}
	}()

	<-ctx.Done()
	slogger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slogger.Error("http shutdown failed", "error", err.Error())
	}
	grpcServer.GracefulStop()
}
