package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/tortshark/campaign-analyst/internal/config"
)

const (
	pingAttempts = 5
	pingBackoff  = time.Second
	connIdleTime = 5 * time.Minute
)

// Connection envolve o *sql.DB; o serviço apenas lê do banco
type Connection struct {
	*sql.DB
}

func NewConnection(ctx context.Context, cfg config.Database) (*Connection, error) {
	db, err := sql.Open("postgres", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("postgres: open: %w", err)
	}

	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
		db.SetMaxIdleConns(cfg.MaxOpenConns)
	}
	db.SetConnMaxIdleTime(connIdleTime)

	if err := pingWithRetry(ctx, db, pingAttempts, pingBackoff); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Connection{DB: db}, nil
}

// pingWithRetry tolera o banco subindo junto com o serviço (compose, deploy)
func pingWithRetry(ctx context.Context, db *sql.DB, attempts int, backoff time.Duration) error {
	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		if err = db.PingContext(ctx); err == nil {
			return nil
		}

		logrus.WithError(err).WithField("attempt", attempt).Warn("PostgreSQL indisponível, tentando novamente")

		select {
		case <-ctx.Done():
			return fmt.Errorf("postgres: ping: %w", ctx.Err())
		case <-time.After(backoff * time.Duration(attempt)):
		}
	}
	return fmt.Errorf("postgres: ping after %d attempts: %w", attempts, err)
}
