package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"time"

	_ "healthcare-api/docs"
	"healthcare-api/internal/adapters/storage/postgres"
	"healthcare-api/internal/platform/logger"
	"healthcare-api/internal/router"

	"github.com/joho/godotenv"
)

// @title Healthcare API
// @version 1.0.0
// @description API del front office clínico: pacientes, turnos y recetas.
// @BasePath /
func main() {
	_ = godotenv.Load() // .env opcional

	log := logger.NewFromEnv()

	addr := ":8080"
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}

	var db *sql.DB
	if dsn := os.Getenv("DB_DSN"); dsn != "" {
		opened, err := postgres.Open(dsn)
		if err != nil {
			log.Error("postgres connection failed", map[string]any{"error": err.Error()})
			os.Exit(1)
		}
		db = opened

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		err = postgres.EnsureSchema(ctx, db)
		cancel()
		if err != nil {
			log.Error("schema init failed", map[string]any{"error": err.Error()})
			os.Exit(1)
		}
	} else {
		log.Warn("DB_DSN not set, using in-memory store", nil)
	}

	r := router.NewRouter(router.Options{DB: db, Logger: log})

	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Info("starting server", map[string]any{"addr": addr})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
}
