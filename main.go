package main

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"syscall"

	"foodbot/bot"
	"foodbot/configs"
	"foodbot/controllers"
	"foodbot/repository"
	"foodbot/routes"
	"foodbot/services"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()
	if cfg.BotToken == "" {
		log.Fatal("BOT_TOKEN is required")
	}

	db, err := configs.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	if err := configs.SetupDatabase(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}
	if cfg.SeedOnStart {
		if err := configs.SeedSampleData(db); err != nil {
			log.Fatalf("seed: %v", err)
		}
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Services
	userSvc := services.NewUserService(db, userRepo)
	catalogSvc := services.NewCatalogService(db, catalogRepo)
	cartSvc := services.NewCartService(db, cartRepo, catalogRepo)
	orderSvc := services.NewOrderService(db, orderRepo, cartRepo, catalogRepo, userRepo)
	checkoutSvc := services.NewCheckoutService(cartSvc, orderSvc)

	// HTTP API for the mini-webapp
	r := gin.Default()
	routes.RegisterRoutes(
		r,
		cfg.BotToken,
		controllers.NewRestaurantController(catalogSvc),
		controllers.NewCartController(cartSvc, userSvc),
		controllers.NewOrderController(orderSvc, userSvc),
	)
	go func() {
		if err := r.Run(":" + cfg.Port); err != nil {
			log.Fatalf("http server: %v", err)
		}
	}()

	// Telegram bot
	tgBot, err := bot.New(cfg.BotToken, cfg.WebAppBaseURL, cfg.AdminIDs, bot.Deps{
		Users:      userSvc,
		Catalog:    catalogSvc,
		Cart:       cartSvc,
		Orders:     orderSvc,
		Checkout:   checkoutSvc,
		SeedSample: func() error { return configs.SeedSampleData(db) },
	})
	if err != nil {
		log.Fatalf("bot: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := tgBot.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("bot stopped: %v", err)
	}
	log.Println("shutting down")
}
