package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"jubbisoft/config"
	"jubbisoft/internal/database"
	"jubbisoft/internal/router"
	"jubbisoft/pkg/cloudinary"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if os.Getenv("APP_ENV") != "production" {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	cfg := config.Load()
	db, err := database.NewDB(&cfg.Database)
	if err != nil {
		zap.S().Fatalf("database: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		zap.S().Fatalf("migrate: %v", err)
	}

	var cloud cloudinary.Client
	if cfg.Cloudinary.CloudName != "" {
		cloud, err = cloudinary.NewClientFromParams(cfg.Cloudinary.CloudName, cfg.Cloudinary.APIKey, cfg.Cloudinary.APISecret)
		if err != nil {
			zap.S().Fatalf("cloudinary: %v", err)
		}
	} else {
		zap.S().Info("cloudinary not configured, cover uploads disabled")
	}

	engine, treasurySvc := router.Setup(cfg, db, cloud)
	if err := treasurySvc.Bootstrap(); err != nil {
		zap.S().Fatalf("treasury bootstrap: %v", err)
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
	go func() {
		zap.S().Infof("server listening on :%s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zap.S().Fatalf("listen: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zap.S().Info("shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zap.S().Fatalf("server shutdown: %v", err)
	}
	zap.S().Info("server stopped")
}
