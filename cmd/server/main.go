package main

import (
	"log/slog"
	"os"
	"time"

	"hackathon-portal/internal/config"
	"hackathon-portal/internal/db"
	"hackathon-portal/internal/handler"
	"hackathon-portal/internal/logger"
	"hackathon-portal/internal/metrics"
	"hackathon-portal/internal/middleware"
)

func main() {
	cfg := config.Load(config.ParseFlags())
	logger.Init(cfg.Log)

	gdb, err := cfg.OpenGormDB()
	if err != nil {
		slog.Error("db connect failed", "err", err)
		os.Exit(1)
	}
	if err := db.Migrate(gdb); err != nil {
		slog.Error("db migrate failed", "err", err)
		os.Exit(1)
	}
	if cfg.Database.Seed {
		if err := db.Seed(gdb); err != nil {
			slog.Error("db seed failed", "err", err)
			os.Exit(1)
		}
	}

	metrics.Register()
	middleware.JWTSecret = []byte(cfg.Auth.Secret)

	r := handler.Router(gdb, time.Duration(cfg.Auth.TokenTTLHours)*time.Hour)

	slog.Info("server starting", "addr", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		slog.Error("server failed", "err", err)
	}
}
