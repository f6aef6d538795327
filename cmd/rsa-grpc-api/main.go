// Package main is the entry point for the rsa-grpc-api application.
// It serves the key and cipher services over gRPC with graceful shutdown.
package main

import (
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	v1 "github.com/thaikhuong62000/RSA/internal/api/grpc/v1"
	"github.com/thaikhuong62000/RSA/internal/app"
	"github.com/thaikhuong62000/RSA/internal/infrastructure/cryptography"
	"github.com/thaikhuong62000/RSA/internal/infrastructure/persistence"
	"github.com/thaikhuong62000/RSA/internal/pkg/config"
	"github.com/thaikhuong62000/RSA/internal/pkg/logger"
	"google.golang.org/grpc"
	"gorm.io/gorm"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "../../configs/grpc-app.yaml"
	}

	grpcConfig, err := config.InitializeGrpcConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	if err := logger.InitLogger(&grpcConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	deps, err := initializeDependencies(grpcConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	defer func() {
		if err := persistence.CloseDB(deps.db); err != nil {
			log.Warn("Failed to close database: ", err)
		}
	}()

	return startServerWithGracefulShutdown(grpcConfig, deps, log)
}

// appDependencies holds all initialized application components
type appDependencies struct {
	db           *gorm.DB
	keyServer    *v1.KeyServer
	cipherServer *v1.CipherServer
}

// initializeDependencies sets up the database, repository, RSA processor, services and gRPC servers
func initializeDependencies(cfg *config.GrpcConfig, log logger.Logger) (*appDependencies, error) {
	db, err := persistence.NewDBConnection(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	if err := persistence.Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	log.Info("Database migrations completed successfully")

	keyRepo, err := persistence.NewGormKeyRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create key repository: %w", err)
	}

	rsaProcessor, err := cryptography.NewRSAProcessor(&cfg.RSA, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create RSA processor: %w", err)
	}

	keyService, err := app.NewKeyService(keyRepo, rsaProcessor, cfg.RSA.DefaultKeyBits, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create key service: %w", err)
	}

	cipherService, err := app.NewCipherService(keyRepo, rsaProcessor, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher service: %w", err)
	}

	keyServer, err := v1.NewKeyServer(keyService)
	if err != nil {
		return nil, fmt.Errorf("failed to create key server: %w", err)
	}

	cipherServer, err := v1.NewCipherServer(cipherService)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher server: %w", err)
	}

	log.Info("gRPC servers initialized successfully")
	return &appDependencies{
		db:           db,
		keyServer:    keyServer,
		cipherServer: cipherServer,
	}, nil
}

// startServerWithGracefulShutdown serves gRPC until SIGINT/SIGTERM, then drains in-flight calls
func startServerWithGracefulShutdown(cfg *config.GrpcConfig, deps *appDependencies, log logger.Logger) error {
	lis, err := net.Listen("tcp", ":"+cfg.Port)
	if err != nil {
		return fmt.Errorf("failed to listen on port %s: %w", cfg.Port, err)
	}

	srv := v1.NewServer(log, grpc.ConnectionTimeout(10*time.Second))
	v1.RegisterServices(srv, deps.keyServer, deps.cipherServer)

	serverErrors := make(chan error, 1)

	go func() {
		log.Info("Starting gRPC server on port ", cfg.Port)
		if err := srv.Serve(lis); err != nil {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info("Received signal ", sig, ", initiating graceful shutdown")
	}

	stopped := make(chan struct{})
	go func() {
		srv.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
		log.Info("Server stopped gracefully")
	case <-time.After(15 * time.Second):
		srv.Stop()
		log.Warn("Server forced to shutdown")
	}
	return nil
}
