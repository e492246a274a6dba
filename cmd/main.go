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

	"google.golang.org/grpc/health"

	grpchealth "github.com/pandey-i/note-taking-app/internal/api/grpc/health"
	grpcrouter "github.com/pandey-i/note-taking-app/internal/api/grpc/router"
	grpcserver "github.com/pandey-i/note-taking-app/internal/api/grpc/server"
	httpctx "github.com/pandey-i/note-taking-app/internal/api/http/context"
	"github.com/pandey-i/note-taking-app/internal/api/http/handler"
	httprouter "github.com/pandey-i/note-taking-app/internal/api/http/router"
	httpserver "github.com/pandey-i/note-taking-app/internal/api/http/server"
	"github.com/pandey-i/note-taking-app/internal/config"
	"github.com/pandey-i/note-taking-app/internal/identity"
	"github.com/pandey-i/note-taking-app/internal/logger"
	"github.com/pandey-i/note-taking-app/internal/mailer"
	"github.com/pandey-i/note-taking-app/internal/model"
	"github.com/pandey-i/note-taking-app/internal/otp"
	"github.com/pandey-i/note-taking-app/internal/password"
	"github.com/pandey-i/note-taking-app/internal/repository"
	"github.com/pandey-i/note-taking-app/internal/server"
	"github.com/pandey-i/note-taking-app/internal/service"
	storage "github.com/pandey-i/note-taking-app/internal/storage/minio"
	"github.com/pandey-i/note-taking-app/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel, cfg.LogFormat)

	stores, err := repository.Open(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize database", "error", err)
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := stores.Close(closeCtx); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	mail, err := newMailer(cfg.SMTP, logger)
	if err != nil {
		logger.Fatal("failed to initialize mailer", "error", err)
	}

	verifier, err := newIdentityVerifier(ctx, cfg.Google.ClientID)
	if err != nil {
		logger.Fatal("failed to initialize google verifier", "error", err)
	}

	sessionService := service.NewSession(token.NewJWT(cfg.JWT.Secret, cfg.JWT.TTL), stores.Users, logger)
	authService := service.NewAuth(
		stores.Users,
		otp.NewIssuer(cfg.OTP.TTL),
		password.NewBcrypt(cfg.Bcrypt.Cost),
		mail,
		verifier,
		sessionService,
		logger,
	)
	noteService := service.NewNote(stores.Notes, logger)

	var exportService handler.ExportService
	if cfg.Storage.Enabled {
		storageClient, err := storage.New(ctx, storage.Config{
			Endpoint:  cfg.Storage.Endpoint,
			AccessKey: cfg.Storage.AccessKey,
			SecretKey: cfg.Storage.SecretKey,
			Bucket:    cfg.Storage.Bucket,
			UseSSL:    cfg.Storage.UseSSL,
		})
		if err != nil {
			logger.Fatal("failed to initialize storage client", "error", err)
		}
		exportService = service.NewExport(stores.Notes, storageClient, logger)
	}

	r := httprouter.New(
		authService,
		sessionService,
		noteService,
		exportService,
		stores,
		httpctx.NewManager(),
		cfg.HTTP.CORSOrigins,
		logger,
	)
	servers := []model.Server{httpserver.NewHTTPServer(r.Register(), fmt.Sprintf(":%s", cfg.HTTP.Port))}

	var wg sync.WaitGroup

	if cfg.GRPC.Enabled {
		healthServer := health.NewServer()
		watcher := grpchealth.NewWatcher(stores, healthServer, cfg.GRPC.Interval, logger)
		wg.Add(1)
		go func() {
			defer wg.Done()
			watcher.Run(ctx)
		}()

		s := grpcrouter.New(healthServer, logger).Register()
		servers = append(servers, grpcserver.NewGRPCServer(s, fmt.Sprintf(":%s", cfg.GRPC.Port)))
	}

	sl := server.NewSecurityLayer(cfg.HTTP.EnableHTTPS, cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)

	for _, s := range servers {
		wg.Add(1)
		go func(s model.Server) {
			defer wg.Done()
			logger.Info("Starting server on", "address", s.Address())
			if err := s.Start(sl); err != nil {
				logger.Error("failed to start server", "error", err, "address", s.Address())
				stop()
			}
		}(s)
	}

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	for _, s := range servers {
		if err := s.Stop(shutdownCtx); err != nil {
			logger.Error("error during server shutdown", "error", err, "address", s.Address())
		}
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

func newMailer(cfg config.SMTP, logger *logger.Logger) (model.Mailer, error) {
	if cfg.Host == "" {
		logger.Warn("SMTP_HOST is not set, OTP emails will only be logged")
		return mailer.NewLog(logger), nil
	}
	return mailer.NewSMTP(mailer.SMTPConfig{
		Host:     cfg.Host,
		Port:     cfg.Port,
		Username: cfg.User,
		Password: cfg.Password,
		From:     cfg.From,
		Timeout:  cfg.Timeout,
	}, logger)
}

func newIdentityVerifier(ctx context.Context, clientID string) (model.IdentityVerifier, error) {
	if clientID == "" {
		return identity.Disabled{}, nil
	}
	return identity.NewGoogle(ctx, clientID)
}
