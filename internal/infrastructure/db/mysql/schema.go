package mysql

import (
	"context"

	"github.com/pocketbase/dbx"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

// schemaStatements are idempotent and safe to re-run on every setup.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS events (
		id INT AUTO_INCREMENT PRIMARY KEY,
		title VARCHAR(255) NOT NULL,
		image_url VARCHAR(512),
		description TEXT,
		start_time DATETIME NOT NULL,
		end_time DATETIME NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		INDEX idx_events_start_time (start_time),
		INDEX idx_events_end_time (end_time)
	)`,
	`CREATE TABLE IF NOT EXISTS societies (
		id INT AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		logo_url VARCHAR(512),
		chair_name VARCHAR(255) NOT NULL DEFAULT '',
		description TEXT,
		faculty_name VARCHAR(255) NOT NULL DEFAULT 'random'
	)`,
	`CREATE TABLE IF NOT EXISTS admins (
		id INT AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		email VARCHAR(255) NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL
	)`,
}

// Setup executes the schema statements one by one. Individual failures are
// logged and skipped so a partially provisioned database can be re-run.
func Setup(ctx context.Context, db *dbx.DB, log zerolog.Logger) {
	for _, stmt := range schemaStatements {
		if _, err := db.NewQuery(stmt).WithContext(ctx).Execute(); err != nil {
			log.Error().Err(err).Msg("schema statement failed, continuing")
			continue
		}
	}
	log.Info().Int("statements", len(schemaStatements)).Msg("schema setup completed")
}

// SeedAdmin inserts the admin credential record unless the email is already
// present. The password is stored as a bcrypt hash.
func SeedAdmin(ctx context.Context, db *dbx.DB, log zerolog.Logger, name, email, password string) error {
	var count int
	err := db.NewQuery("SELECT COUNT(*) FROM admins WHERE email = {:email}").
		Bind(dbx.Params{"email": email}).
		WithContext(ctx).
		Row(&count)
	if err != nil {
		return err
	}
	if count > 0 {
		log.Info().Str("email", email).Msg("admin already seeded, skipping")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = db.Insert("admins", dbx.Params{
		"name":          name,
		"email":         email,
		"password_hash": string(hash),
	}).WithContext(ctx).Execute()
	if err != nil {
		return err
	}

	log.Info().Str("email", email).Msg("admin seeded")
	return nil
}
