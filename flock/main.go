package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"flock/flock/config"
	"flock/flock/controllers"
	"flock/flock/metrics"
	"flock/flock/routes"
	"flock/flock/sources/psql"
	"flock/flock/sources/psql/dao"
	"flock/flock/sources/storage"
	"flock/flock/utils/logging"

	"go.uber.org/zap"
)

func main() {
	logging.InitLogger()
	cfg := config.LoadConfig()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Fail fast: serving without a working store would only turn
	// every request into a 500.
	db, err := psql.NewDatabase(ctx, cfg)
	if err != nil {
		logging.ErrorLogger.Error("database connection error", zap.Error(err))
		os.Exit(1)
	}
	defer db.Close()

	images, err := storage.NewMinIOClient(cfg)
	if err != nil {
		logging.ErrorLogger.Error("minio connection error", zap.Error(err))
		os.Exit(1)
	}

	userDAO := dao.NewUserDAO(db.DB)
	postDAO := dao.NewPostDAO(db.DB)
	notificationDAO := dao.NewNotificationDAO(db.DB)

	ctrl := routes.Controllers{
		Auth:          controllers.NewAuthController(userDAO, cfg),
		Users:         controllers.NewUserController(userDAO, notificationDAO, images),
		Posts:         controllers.NewPostController(postDAO, userDAO, notificationDAO, images),
		Notifications: controllers.NewNotificationController(notificationDAO),
		Health:        controllers.NewHealthController(db),
	}

	collector := metrics.NewCollector()
	limiter := routes.DefaultAuthLimiter()
	defer limiter.Stop()

	r := routes.NewRouter(ctrl, userDAO, collector, limiter, cfg)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}
	go func() {
		logging.AppLogger.Info("server listening", zap.String("port", cfg.Port), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.ErrorLogger.Error("server listen error", zap.Error(err))
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.ErrorLogger.Error("server shutdown error", zap.Error(err))
	}
	logging.AppLogger.Info("server shutdown complete")
}
