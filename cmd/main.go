package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"modflow/backend/internal/api/handler"
	"modflow/backend/internal/autoflag"
	"modflow/backend/internal/config"
	"modflow/backend/internal/logger"
	"modflow/backend/internal/models"
	"modflow/backend/internal/modhub"
	"modflow/backend/internal/scorer"
	"modflow/backend/internal/storage"
	"modflow/backend/internal/telegram"
	"modflow/backend/internal/tickets"
)

func setupDependencies(cfg *config.Settings) (*gorm.DB, *redis.Client) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		logger.Log.Fatalf("Failed to connect PostgreSQL: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: "",
		DB:       0,
	})

	ctx := context.Background()
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		logger.Log.Fatalf("Failed to connect Redis: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Ticket{},
		&models.Verdict{},
		&models.Advertisement{},
		&models.ArchivedMessage{},
	)
	if err != nil {
		logger.Log.Fatalf("Failed to run migrations: %v", err)
	}

	logger.Log.Info("Database and Redis connections established, migrations complete.")
	return db, rdb
}

// hydrate rebuilds the in-memory case state from postgres so open tickets
// and partial verdict lists survive restarts.
func hydrate(store *tickets.CaseStore, s *storage.Service) {
	open, err := s.OpenTickets()
	if err != nil {
		logger.Log.Fatalf("Failed to load open tickets: %v", err)
	}
	verdicts, err := s.VerdictsByTicket()
	if err != nil {
		logger.Log.Fatalf("Failed to load verdicts: %v", err)
	}
	store.Hydrate(open, verdicts)

	var maxID int64
	for _, t := range open {
		if t.ID > maxID {
			maxID = t.ID
		}
	}
	if err := s.EnsureTicketCounter(maxID); err != nil {
		logger.Log.Fatalf("Failed to sync ticket counter: %v", err)
	}
	logger.Log.Infof("Hydrated %d open tickets.", len(open))
}

func main() {
	if err := godotenv.Load(); err != nil {
		logger.Log.Warn("Error loading .env file")
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Log.Fatalf("Invalid configuration: %v", err)
	}
	logger.Init(cfg.LogLevel, cfg.Env == "production")
	logger.Log.Info("Starting ModFlow Backend...")

	db, rdb := setupDependencies(cfg)
	s := storage.NewStorageService(db, rdb)

	store := tickets.NewCaseStore(cfg.Quorum, s)
	hydrate(store, s)

	resolver := &telegram.Resolver{Storage: s, WatchedChatID: cfg.WatchedChatID}
	hub := modhub.NewManagerService(store, resolver)

	policy := autoflag.NewPolicy(
		scorer.NewClient(cfg.ScorerURL, cfg.ScorerKey),
		cfg.AutoReportThreshold,
		cfg.AutoDeleteThreshold,
	)

	botService, err := telegram.NewBotService(cfg.TelegramToken, hub, s, policy, cfg.WatchedChatID)
	if err != nil {
		logger.Log.Fatalf("Failed to start the Telegram bot: %v", err)
	}

	assigner := modhub.NewAssignerService(
		&telegram.ModTransport{BotAPI: botService.BotAPI, ModChatID: cfg.ModChatID},
		s,
	)
	hub.Assigner = assigner
	hub.Notifier = &telegram.Notifier{BotAPI: botService.BotAPI, Storage: s}
	hub.Actions = &telegram.Actions{BotAPI: botService.BotAPI, Storage: s, WatchedChatID: cfg.WatchedChatID}

	go hub.Run()
	go assigner.RunFeed()
	go botService.Run()

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	h := handler.NewHandler(assigner, s, cfg.JWTSecret)

	r.POST("/api/auth", h.Authenticate)
	r.GET("/api/tickets", h.ListTickets)
	r.GET("/ws", h.ServeWebSocket)

	server := &http.Server{
		Addr:           ":" + cfg.HTTPPort,
		Handler:        r,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	logger.Log.Fatal(server.ListenAndServe())
}
