package main

import (
	"context"
	"log"
	"time"

	"finsim/config"
	authController "finsim/controllers/auth"
	tradingController "finsim/controllers/trading"
	"finsim/database"
	"finsim/quotes"
	authRoutes "finsim/routers/authRoutes"
	tradingRoutes "finsim/routers/tradingRoutes"
	"finsim/session"
	"finsim/store"
	"finsim/utils"

	"github.com/go-redis/redis/v8"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/shopspring/decimal"
)

func main() {
	cfg := config.LoadConfig()

	db, err := database.ConnectDb(cfg)
	if err != nil {
		log.Fatalf("Database setup failed: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get database instance: %v", err)
	}
	defer sqlDB.Close()

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
	}

	sessionTTL := time.Duration(cfg.SessionTTLHours) * time.Hour
	var sessions session.Store
	if rdb != nil {
		sessions = session.NewRedisStore(rdb, sessionTTL)
	} else {
		sessions = session.NewMemoryStore(sessionTTL)
	}

	dataStore := store.NewGormStore(db)

	provider, cache := buildQuoteProvider(cfg, rdb)

	startingCash, err := decimal.NewFromString(cfg.StartingCash)
	if err != nil {
		log.Fatalf("Invalid STARTING_CASH %q: %v", cfg.StartingCash, err)
	}

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	authRoutes.SetupAuthRoutes(app, authController.New(dataStore, sessions, cfg.SaltRound, startingCash), sessions)
	tradingRoutes.SetupTradingRoutes(app, tradingController.New(dataStore, provider), sessions)

	if cache != nil {
		refresher := utils.StartPriceRefresher(dataStore, cache)
		defer refresher.Stop()
	}

	log.Printf("Server is running on port %s", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}

// buildQuoteProvider picks the quote source: the live HTTP client when an
// API key is configured (cached in redis when available), otherwise the
// static table, optionally loaded from QUOTE_SYMBOL_FILE.
func buildQuoteProvider(cfg *config.Config, rdb *redis.Client) (quotes.Provider, *quotes.Cache) {
	if cfg.QuoteAPIKey != "" {
		client := quotes.NewClient(cfg.QuoteAPIURL, cfg.QuoteAPIKey)
		if rdb != nil {
			cache := quotes.NewCache(client, rdb)
			return cache, cache
		}
		return client, nil
	}

	if cfg.QuoteSymbolFile != "" {
		static, err := quotes.FromCSV(cfg.QuoteSymbolFile)
		if err != nil {
			log.Fatalf("Failed to load symbol file: %v", err)
		}
		return static, nil
	}

	return quotes.NewStatic(), nil
}
