package main

import (
	"context"
	"database/sql"
	"log"
	"os/signal"
	"syscall"

	fbauth "firebase.google.com/go/v4/auth"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/plussdev/portfolio-backend/config"
	"github.com/plussdev/portfolio-backend/internal/auth"
	"github.com/plussdev/portfolio-backend/internal/bootstrap"
	"github.com/plussdev/portfolio-backend/internal/contact"
	"github.com/plussdev/portfolio-backend/internal/kv"
	"github.com/plussdev/portfolio-backend/internal/portfolio/repository"
	"github.com/plussdev/portfolio-backend/internal/portfolio/service"
)

const serviceName = "portfolio-backend"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := bootstrap.NewLogger(cfg.App.Environment)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	bootstrap.SetGinMode(cfg.App.Environment)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Optional Redis: card store backend, preference store, or both.
	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := redisClient.Ping(ctx).Err(); err != nil {
			logger.Warn("redis unreachable at startup", zap.Error(err))
		}
	}

	// Card store selection. Missing credentials degrade to the disabled
	// store: the public page shows an empty portfolio and the admin API
	// answers "not configured" instead of attempting calls.
	var (
		store      repository.CardStore
		authClient *fbauth.Client
	)
	switch {
	case cfg.Store.Backend == "redis" && redisClient != nil:
		store = repository.NewRedisStore(redisClient, logger)
		logger.Info("using redis card store")
	case cfg.FirebaseConfigured():
		ac, fsClient, err := auth.InitializeFirebase(ctx, &cfg.Firebase)
		if err != nil {
			logger.Fatal("failed to initialize firebase", zap.Error(err))
		}
		defer func() { _ = fsClient.Close() }()
		authClient = ac
		store = repository.NewFirestoreStore(fsClient, cfg.Store.Collection, logger)
		logger.Info("using firestore card store", zap.String("collection", cfg.Store.Collection))
	default:
		store = repository.Disabled{}
		logger.Warn("no backend configured, data operations disabled")
	}

	if cfg.Admin.Email == "" {
		logger.Warn("ADMIN_EMAIL is empty, every admin request will be denied")
	}

	// Preference store: Redis when available, in-memory otherwise.
	var prefStore kv.Store
	if redisClient != nil {
		prefStore = kv.NewRedisStore(redisClient)
	} else {
		prefStore = kv.NewMemoryStore()
	}

	// Optional Postgres for contact messages.
	var db *sql.DB
	if cfg.Database.DSN != "" {
		db, err = bootstrap.OpenDB(ctx, bootstrap.DBOptions{DSN: cfg.Database.DSN})
		if err != nil {
			logger.Fatal("failed to open database", zap.Error(err))
		}
		defer func() { _ = db.Close() }()

		if err := contact.NewMessageRepository(db).EnsureSchema(ctx); err != nil {
			logger.Fatal("failed to prepare contact schema", zap.Error(err))
		}
	}

	mirror := service.NewMirror(store, logger)
	go mirror.Run(ctx)

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName:  serviceName,
		Version:      cfg.App.Version,
		StoreBackend: cfg.Store.Backend,
		CORSOrigins:  cfg.Server.CORSOrigins,
		AdminEmail:   cfg.Admin.Email,
		AuthClient:   authClient,
		Store:        store,
		Mirror:       mirror,
		Prefs:        prefStore,
		DB:           db,
		Redis:        redisClient,
		Log:          logger,
	})

	logger.Info("listening", zap.String("port", cfg.Server.Port))
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}
