package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/326-T/nft-service/internal/api/http/router"
	"github.com/326-T/nft-service/internal/config"
	"github.com/326-T/nft-service/internal/logger"
	"github.com/326-T/nft-service/internal/password"
	"github.com/326-T/nft-service/internal/repository/postgres"
	"github.com/326-T/nft-service/internal/server"
	"github.com/326-T/nft-service/internal/service"
	storage "github.com/326-T/nft-service/internal/storage/minio"
	"github.com/326-T/nft-service/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer db.Close()

	applicantRepo := postgres.NewApplicantRepository(db)
	companyRepo := postgres.NewCompanyRepository(db)
	resumeRepo := postgres.NewResumeRepository(db)
	offerRepo := postgres.NewOfferRepository(db)

	minioClient, err := minio.New(cfg.Storage.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.Storage.AccessKey, cfg.Storage.SecretKey, ""),
		Secure: cfg.Storage.UseSSL,
	})
	if err != nil {
		logger.Fatal("failed to create minio client", "error", err)
	}
	storageClient, err := storage.NewClient(ctx, minioClient, cfg.Storage.Bucket)
	if err != nil {
		logger.Fatal("failed to initialize storage client", "error", err)
	}

	hasher := password.NewBcrypt()
	codec := token.NewJWT(cfg.JWT.Secret, cfg.JWT.TTL)

	applicantService := service.NewApplicant(applicantRepo, hasher, logger)
	companyService := service.NewCompany(companyRepo, hasher, logger)
	resumeService := service.NewResume(resumeRepo, offerRepo, storageClient, logger)
	offerService := service.NewOffer(offerRepo, logger)

	app := router.New(applicantService, companyService, resumeService, offerService, codec, logger).Register()

	var sl server.SecurityLayer
	if cfg.HTTP.EnableHTTPS {
		sl = server.NewTLSListener(cfg.HTTP.CertFile, cfg.HTTP.KeyFile)
	} else {
		sl = server.NewPlainListener()
	}

	addr := fmt.Sprintf(":%s", cfg.HTTP.Port)
	ln, err := sl.Listen(addr)
	if err != nil {
		logger.Fatal("failed to listen", "address", addr, "error", err)
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		logger.Info("Starting server on", "address", addr)
		if err := app.Listener(ln); err != nil {
			logger.Error("failed to start server", "error", err)
		}
	}()

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		logger.Error("error during server shutdown", "error", err)
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
