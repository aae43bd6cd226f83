package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	gomongo "go.mongodb.org/mongo-driver/mongo"

	_ "github.com/souqly/marketplace-api/docs"
	"github.com/souqly/marketplace-api/internal/api"
	"github.com/souqly/marketplace-api/internal/api/middleware"
	"github.com/souqly/marketplace-api/internal/core/domain"
	"github.com/souqly/marketplace-api/internal/core/ports"
	"github.com/souqly/marketplace-api/internal/core/service"
	"github.com/souqly/marketplace-api/internal/infrastructure/config"
	"github.com/souqly/marketplace-api/internal/infrastructure/db/mongo"
	"github.com/souqly/marketplace-api/internal/infrastructure/db/redis"
	"github.com/souqly/marketplace-api/internal/infrastructure/db/relational"
	"github.com/souqly/marketplace-api/internal/infrastructure/http/handlers"
	"github.com/souqly/marketplace-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// @title                       Marketplace API
// @version                     1.0
// @description                 Users, stores and store listings with signed-token sessions.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		l := logger.Init(logger.Options{Service: "marketplace-api"})
		l.Fatal().Err(err).Msg("load config")
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  !cfg.IsProduction(),
		Service: "marketplace-api",
	})

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
	log.Info().Msg("bye")
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	db, err := relational.Connect(ctx, relational.Config{Driver: cfg.DB.Driver, DSN: cfg.DB.DSN()})
	if err != nil {
		return err
	}
	defer func() {
		if err := relational.Close(db); err != nil {
			log.Warn().Err(err).Msg("close database")
		}
	}()
	if err := relational.Migrate(db); err != nil {
		return err
	}
	log.Info().Str("driver", cfg.DB.Driver).Msg("database ready")

	users := relational.NewUserRepository(db)
	stores := relational.NewStoreRepository(db)
	tokens := service.NewTokenService(cfg.JWTSecret, domain.SessionLifetime)
	auth := service.NewAuthService(users, tokens, log)

	if cfg.Admin.Enabled() {
		if err := auth.EnsureAdmin(ctx, cfg.Admin.Username, cfg.Admin.Password, cfg.Admin.Email, "Administrator"); err != nil {
			return err
		}
	}

	var (
		rdb         *goredis.Client
		revocations ports.RevocationStore
	)
	if cfg.Redis.Addr != "" {
		rdb, err = redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
		if err != nil {
			return err
		}
		defer rdb.Close()
		revocations = redis.NewRevocationStore(rdb)
		log.Info().Str("addr", cfg.Redis.Addr).Msg("token revocation enabled")
	}

	var (
		mdb   *gomongo.Database
		audit ports.AuditRepository
	)
	if cfg.Mongo.URI != "" {
		client, database, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database, AppName: "marketplace-api"})
		if err != nil {
			return err
		}
		defer func() {
			disconnectCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			_ = client.Disconnect(disconnectCtx)
		}()
		repo := mongo.NewAuditRepository(database)
		if err := repo.EnsureIndexes(ctx); err != nil {
			return err
		}
		mdb, audit = database, repo
		log.Info().Str("database", cfg.Mongo.Database).Msg("audit trail enabled")
	}

	scheme, err := middleware.ParseScheme(cfg.PublicAuthScheme)
	if err != nil {
		return err
	}

	e := api.NewRouter(api.Services{
		Auth:     auth,
		Sessions: service.NewAuthenticator(tokens, cfg.APIToken, revocations, log),
		Users:    service.NewUserService(users, audit, log),
		Stores:   service.NewStoreService(stores, users, audit, log),
		Products: service.NewListingService[domain.Product, *domain.Product]("product",
			relational.NewListingRepository[domain.Product](db, domain.ErrProductNotFound), stores, audit, log),
		Services: service.NewListingService[domain.Service, *domain.Service]("service",
			relational.NewListingRepository[domain.Service](db, domain.ErrServiceNotFound), stores, audit, log),
		Jobs: service.NewListingService[domain.Job, *domain.Job]("job",
			relational.NewListingRepository[domain.Job](db, domain.ErrJobNotFound), stores, audit, log),
		Announcements: service.NewListingService[domain.Announcement, *domain.Announcement]("announcement",
			relational.NewListingRepository[domain.Announcement](db, domain.ErrAnnouncementNotFound), stores, audit, log),
	}, api.Options{
		PublicScheme: scheme,
		Log:          log,
		Health:       handlers.NewHealthDependenciesHandler(db, rdb, mdb, log),
		Registerer:   prometheus.DefaultRegisterer,
		Gatherer:     prometheus.DefaultGatherer,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           e,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Str("auth_scheme", string(scheme)).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}
	log.Info().Msg("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Warn().Err(err).Msg("http shutdown")
	}
	return nil
}
