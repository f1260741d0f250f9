// Command setup provisions the database schema and seeds the admin credential
// record. It is idempotent: re-running against an existing database is safe.
package main

import (
	"context"

	"github.com/joho/godotenv"

	"github.com/ieee-kiit/events-api/internal/infrastructure/config"
	"github.com/ieee-kiit/events-api/internal/infrastructure/db/mysql"
	"github.com/ieee-kiit/events-api/pkg/logger"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true})

	ctx := context.Background()
	db, err := mysql.Connect(ctx, mysql.Config{
		Host:     cfg.MySQL.Host,
		Port:     cfg.MySQL.Port,
		User:     cfg.MySQL.User,
		Password: cfg.MySQL.Password,
		Database: cfg.MySQL.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mysql connection failed")
	}
	defer db.Close()

	mysql.Setup(ctx, db, log)

	if cfg.Admin.Email == "" || cfg.Admin.Password == "" {
		log.Warn().Msg("ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping admin seed")
		return
	}
	if err := mysql.SeedAdmin(ctx, db, log, cfg.Admin.Name, cfg.Admin.Email, cfg.Admin.Password); err != nil {
		log.Fatal().Err(err).Msg("admin seed failed")
	}
}
