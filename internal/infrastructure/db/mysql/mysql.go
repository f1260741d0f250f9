package mysql

import (
	"context"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/pocketbase/dbx"
)

const defaultTimeout = 10 * time.Second

// Config captures the minimal settings required to establish a MySQL connection.
type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	Timeout  time.Duration
}

// DSN renders the go-sql-driver connection string. parseTime makes DATETIME
// columns scan into time.Time, loc pins them to UTC, and clientFoundRows makes
// RowsAffected count matched rows so a same-value update is not mistaken for a
// missing row.
func (c Config) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&loc=UTC&clientFoundRows=true",
		c.User, c.Password, c.Host, c.Port, c.Database)
}

// Connect opens a pooled MySQL handle via dbx, verifies connectivity with a
// ping, and returns it. A default timeout is applied when none is provided.
func Connect(ctx context.Context, cfg Config) (*dbx.DB, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	db, err := dbx.Open("mysql", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("mysql open: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := db.DB().PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("mysql ping: %w", err)
	}

	return db, nil
}
