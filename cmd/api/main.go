package main

import (
	"context"
	"log"
	"time"

	"snack-store/internal/core/config"
	"snack-store/internal/core/logger"
	"snack-store/internal/core/server"
	"snack-store/internal/core/store"
	authadapter "snack-store/internal/features/auth/adapters"
	authhandler "snack-store/internal/features/auth/handler"
	authservice "snack-store/internal/features/auth/service"
	cartadapter "snack-store/internal/features/cart/adapters"
	carthandler "snack-store/internal/features/cart/handler"
	cartservice "snack-store/internal/features/cart/service"
	catalogadapter "snack-store/internal/features/catalog/adapters"
	cataloghandler "snack-store/internal/features/catalog/handler"
	catalogservice "snack-store/internal/features/catalog/service"
	orderadapter "snack-store/internal/features/orders/adapters"
	orderhandler "snack-store/internal/features/orders/handler"
	orderservice "snack-store/internal/features/orders/service"
	shippinghandler "snack-store/internal/features/shipping/handler"
	shippingservice "snack-store/internal/features/shipping/service"

	"go.uber.org/zap"
)

// @title Snack Store API
// @version 1.0
// @description Storefront API for browsing the catalog, managing a cart and placing orders.
// @contact.name API Support
// @contact.email support@snackstore.dev
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
	)

	// Initialize the store and run a health check
	redisStore, err := store.NewRedisAdapter(cfg.Redis.URL)
	if err != nil {
		l.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisStore.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := redisStore.Ping(ctx); err != nil {
		l.Fatal("Redis health check failed", zap.Error(err))
	}
	l.Info("Redis connection verified")

	// Catalog
	productRepo := catalogadapter.NewSeededProductRepository()
	catalogSvc := catalogservice.NewCatalogService(productRepo, cfg.Catalog.PageSize)
	catalogHdl := cataloghandler.NewCatalogHandler(catalogSvc)

	// Shipping
	calculator := shippingservice.NewFlatRateCalculator(cfg.Shipping)
	shippingHdl := shippinghandler.NewShippingHandler(calculator)

	// Cart
	cartRepo := cartadapter.NewRedisCartRepository(redisStore)
	cartSvc := cartservice.NewCartService(cartRepo, catalogSvc)
	cartHdl := carthandler.NewCartHandler(cartSvc, calculator)

	// Orders
	orderRepo := orderadapter.NewRedisOrderRepository(redisStore)
	orderSvc := orderservice.NewOrderService(orderRepo, cartSvc, catalogSvc, calculator)
	orderHdl := orderhandler.NewOrderHandler(orderSvc)

	// Auth
	userRepo := authadapter.NewRedisUserRepository(redisStore)
	tokenRepo := authadapter.NewRedisTokenRepository(redisStore)
	authSvc := authservice.NewAuthService(userRepo, tokenRepo, cfg.Auth)
	authHdl := authhandler.NewAuthHandler(authSvc)
	requireAuth := authhandler.RequireAuth(authSvc)

	srv := server.New(cfg)

	// Register Routes
	srv.App.Get("/products", catalogHdl.ListProducts)
	srv.App.Get("/products/:slug", catalogHdl.GetProduct)
	srv.App.Get("/categories", catalogHdl.ListCategories)

	srv.App.Get("/shipping/quote", shippingHdl.GetQuote)

	srv.App.Get("/cart", cartHdl.GetCart)
	srv.App.Post("/cart/items", cartHdl.AddItem)
	srv.App.Put("/cart/items/:id", cartHdl.UpdateItem)
	srv.App.Delete("/cart/items/:id", cartHdl.RemoveItem)
	srv.App.Delete("/cart", cartHdl.ClearCart)

	srv.App.Post("/auth/register", authHdl.Register)
	srv.App.Post("/auth/login", authHdl.Login)
	srv.App.Post("/auth/logout", authHdl.Logout)
	srv.App.Get("/auth/me", requireAuth, authHdl.Me)
	srv.App.Put("/auth/me", requireAuth, authHdl.UpdateProfile)
	srv.App.Put("/auth/password", requireAuth, authHdl.UpdatePassword)

	srv.App.Post("/checkout", requireAuth, orderHdl.Checkout)
	srv.App.Get("/orders", requireAuth, orderHdl.ListOrders)
	srv.App.Get("/orders/number/:number", requireAuth, orderHdl.GetOrderByNumber)
	srv.App.Get("/orders/:id", requireAuth, orderHdl.GetOrder)
	srv.App.Patch("/orders/:id/status", requireAuth, orderHdl.UpdateStatus)

	if err := srv.Run(); err != nil {
		l.Fatal("Server failed to start", zap.Error(err))
	}
}
