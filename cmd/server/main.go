package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"polls/internal/config"
	"polls/internal/db"
	"polls/internal/polls"
	"polls/internal/server"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func main() {
	if err := config.LoadDotEnv(".env"); err != nil {
		log.Printf("failed to load .env: %v", err)
	}
	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	var conn *gorm.DB
	var store polls.AdminStore
	if cfg.DatabaseURL == "" {
		log.Printf("DATABASE_URL not set; polls are kept in memory and lost on restart")
		store = polls.NewMemoryStore()
	} else {
		var err error
		conn, err = db.Open(cfg)
		if err != nil {
			log.Fatalf("database connection failed: %v", err)
		}
		if cfg.AutoMigrate {
			if err := db.Migrate(conn); err != nil {
				log.Fatalf("database migration failed: %v", err)
			}
		}
		store = polls.NewGormStore(conn)
	}

	srv := server.New(conn, store, cfg)
	httpServer := &http.Server{
		Addr:              cfg.Addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("polls server listening addr=%s base_path=%q time_zone=%s", cfg.Addr, cfg.BasePath, cfg.TimeZone)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	<-ctx.Done()
	log.Printf("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown failed: %v", err)
	}
}
