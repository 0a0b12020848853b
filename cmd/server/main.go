package main // Entry point package

import (
	"log" // Logging library

	"github.com/joho/godotenv"    // .env loader for local development
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/petmart/petmart-api/internal/config"
	"github.com/petmart/petmart-api/internal/database"
	"github.com/petmart/petmart-api/internal/handler"
	"github.com/petmart/petmart-api/internal/middleware"
	"github.com/petmart/petmart-api/internal/queue"
	"github.com/petmart/petmart-api/internal/repository"
	"github.com/petmart/petmart-api/internal/router"
	"github.com/petmart/petmart-api/internal/service"
)

func main() {
	// Load .env when present; real deployments set the environment directly.
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	// Redis is optional: a nil client degrades the cache and rate limiter
	// to pass-through.
	rdb := config.NewRedisClient()
	cacheCfg := config.LoadCacheConfig()
	rateCfg := config.LoadRateLimitConfig()

	// Repositories.
	accounts := repository.NewAccountRepo(db)
	tokens := repository.NewTokenRepo(db)
	products := repository.NewProductRepo(db)
	carts := repository.NewCartRepo(db)
	reservations := repository.NewReservationRepo(db)
	contacts := repository.NewContactRepo(db)

	// Services.
	invalidator := middleware.NewCacheInvalidator(cacheCfg, rdb)
	cartSvc := service.NewCartService(carts, products)
	resSvc := service.NewReservationService(reservations, products, cartSvc, invalidator)

	// Handlers.
	authH := handler.NewAuthHandler(cfg, accounts, tokens)
	catalogH := handler.NewCatalogHandler(products)
	cartH := handler.NewCartHandler(cartSvc)
	resH := handler.NewReservationHandler(resSvc)
	adminProdH := handler.NewAdminProductHandler(products, invalidator, cfg.UploadDir)
	adminResH := handler.NewAdminReservationHandler(resSvc)
	contactH := handler.NewContactHandler(contacts)

	e := echo.New()
	e.HideBanner = true

	var cacheMW echo.MiddlewareFunc
	if rdb != nil && cacheCfg.Enabled {
		cacheMW = middleware.NewRedisCache(cacheCfg, rdb)
	}
	var limiterMW echo.MiddlewareFunc
	if rdb != nil && rateCfg.Enabled {
		limiterMW = middleware.NewTokenBucket(rateCfg, rdb)
	}

	router.RegisterRoutes(e, cfg.UploadDir)
	router.RegisterAuth(e, authH, cfg.JWTSecret, limiterMW)
	router.RegisterPublic(e, catalogH, contactH, cacheMW)
	router.RegisterCustomer(e, cartH, resH, cfg.JWTSecret)
	router.RegisterAdmin(e, adminProdH, adminResH, contactH, cfg.JWTSecret)

	// Background consumer for reservation.created events. Runs its own
	// reconnect loop for the life of the process.
	go func() {
		if err := queue.StartReservationConsumer(); err != nil {
			log.Printf("reservation consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
