package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"spiderhome-backend/config"
	"spiderhome-backend/controllers"
	"spiderhome-backend/routes"
	"spiderhome-backend/services"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Config error: %v", err)
	}

	if cfg.JWTSecret == config.DefaultJWTSecret {
		log.Println("⚠️  JWT_SECRET not set; using the insecure development default")
	}

	if err := config.ConnectDatabase(cfg); err != nil {
		log.Fatalf("❌ Database connect failed: %v", err)
	}
	db := config.DB
	if db == nil {
		log.Fatal("❌ config.DB is nil after ConnectDatabase()")
	}
	log.Println("✅ Database connection established and migrations applied")

	// Initialize services
	tokenService := services.NewTokenService(cfg.JWTSecret)
	authService := services.NewAuthService(db, tokenService)
	productService := services.NewProductService(db)
	slideService := services.NewSlideService(db)
	blogService := services.NewBlogService(db)
	featureService := services.NewFeatureService(db)

	// Initialize controllers
	authController := controllers.NewAuthController(authService)
	productController := controllers.NewProductController(productService)
	slideController := controllers.NewSlideController(slideService)
	blogController := controllers.NewBlogController(blogService)
	featureController := controllers.NewFeatureController(featureService)
	settingsController := controllers.NewSettingsController(db)

	router := routes.SetupRouter(
		cfg,
		tokenService,
		authController,
		productController,
		slideController,
		blogController,
		featureController,
		settingsController,
	)

	addr := ":" + cfg.Port

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("🚀 Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe(): %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with timeout
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("⚠️  Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
