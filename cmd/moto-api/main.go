package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"motocat-backend/internal/alerts"
	"motocat-backend/internal/auth"
	"motocat-backend/internal/cache"
	"motocat-backend/internal/catalog"
	"motocat-backend/internal/community"
	"motocat-backend/internal/httpapi"
	"motocat-backend/internal/kstream"
	"motocat-backend/internal/model"
	"motocat-backend/internal/pricing"
	"motocat-backend/internal/seed"
	"motocat-backend/internal/updatebot"
	"motocat-backend/internal/users"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if getenv("LOG_PRETTY", "") == "true" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// MySQL via gorm. TranslateError maps driver duplicate-key errors onto
	// gorm.ErrDuplicatedKey, which the users store relies on.
	dsn := getenv("MYSQL_DSN", "moto:moto@tcp(mysql:3306)/motocat?charset=utf8mb4&parseTime=True&loc=UTC")
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal().Err(err).Msg("mysql connect failed")
	}
	err = db.AutoMigrate(
		&model.Motorcycle{},
		&model.User{},
		&model.Rating{},
		&model.Comment{},
		&model.Favorite{},
		&model.GarageEntry{},
		&model.PriceAlert{},
	)
	if err != nil {
		log.Fatal().Err(err).Msg("migrate failed")
	}

	rdb := redis.NewClient(&redis.Options{
		Addr: getenv("REDIS_ADDR", "redis:6379"),
	})

	catalogStore := catalog.NewStore(db)
	communityStore := community.NewStore(db)
	alertStore := alerts.NewStore(db)
	userStore := users.NewStore(db)
	listCache := cache.New(rdb)
	engine := pricing.New(pricing.DefaultConfig(), nil)

	if getenv("SEED_CATALOG", "true") == "true" {
		if err := seed.Load(ctx, catalogStore); err != nil {
			log.Fatal().Err(err).Msg("seed failed")
		}
	}

	tokenTTL, err := time.ParseDuration(getenv("TOKEN_TTL", "24h"))
	if err != nil {
		log.Fatal().Err(err).Msg("invalid TOKEN_TTL")
	}
	authManager := auth.NewManager(getenv("JWT_SECRET", "dev-secret-change-me"), tokenTTL)

	// Update pipeline: consumer applies revisions, bot produces them.
	consumer := &kstream.UpdateConsumer{
		Store:  catalogStore,
		Alerts: alertStore,
		Cache:  listCache,
	}
	go func() {
		if err := consumer.Run(ctx); err != nil && ctx.Err() == nil {
			log.Error().Err(err).Msg("update consumer stopped")
		}
	}()

	interval, err := time.ParseDuration(getenv("UPDATE_INTERVAL", "24h"))
	if err != nil {
		log.Fatal().Err(err).Msg("invalid UPDATE_INTERVAL")
	}
	bot := &updatebot.Bot{Store: catalogStore, Interval: interval}
	go bot.Run(ctx)

	r := mux.NewRouter()
	server := &httpapi.Server{
		Catalog:   catalogStore,
		Community: communityStore,
		Alerts:    alertStore,
		Users:     userStore,
		Engine:    engine,
		Auth:      authManager,
		Cache:     listCache,
	}
	server.RegisterRoutes(r)

	addr := getenv("HTTP_ADDR", ":8080")
	httpServer := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		log.Info().Msg("shutting down")
		cancel()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		_ = httpServer.Shutdown(shutdownCtx)
	}()

	log.Info().Str("addr", addr).Msg("moto api listening")
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("server error")
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
