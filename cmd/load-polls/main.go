package main

import (
	"flag"
	"log"
	"time"

	"polls/internal/config"
	"polls/internal/db"
)

func main() {
	filePath := flag.String("file", "polls.csv", "path to a question_text,pub_date,choices csv")
	migrate := flag.Bool("migrate", false, "auto-migrate the schema before loading")
	flag.Parse()

	if err := config.LoadDotEnv(".env"); err != nil {
		log.Printf("failed to load .env: %v", err)
	}
	cfg := config.Load()

	conn, err := db.Open(cfg)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	if *migrate || cfg.AutoMigrate {
		if err := db.Migrate(conn); err != nil {
			log.Fatalf("database migration failed: %v", err)
		}
	}

	inserted, err := db.LoadPolls(conn, *filePath, time.Now())
	if err != nil {
		log.Fatalf("failed to load polls file=%s: %v", *filePath, err)
	}
	log.Printf("loaded polls inserted=%d file=%s", inserted, *filePath)
}
