package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// Backend is the set of collaborators the pages talk to, chosen by BACKEND.
type Backend struct {
	Name    string
	Data    DataSource
	Auth    Authenticator
	Gate    SessionGate
	Advisor Advisor
	// db is set for the postgres back end and reported by /health.
	db    *sql.DB
	close func() error
}

func (b *Backend) Close() error {
	if b.close == nil {
		return nil
	}
	return b.close()
}

// Ping checks the backing store when there is one.
func (b *Backend) Ping(ctx context.Context) error {
	if b.db == nil {
		return nil
	}
	return b.db.PingContext(ctx)
}

func newBackend(cfg Config, log zerolog.Logger) (*Backend, error) {
	remote := newCollaboratorClient(cfg.CollaboratorURL, cfg.HTTPTimeout, log)

	switch cfg.Backend {
	case backendRemote:
		b := &Backend{Name: backendRemote, Data: remote, Auth: remote, Gate: remote, Advisor: remote}
		if cfg.JWTSecret != "" {
			b.Gate = newJWTGate(cfg.JWTSecret, cfg.JWTIssuer)
		}
		return b, nil

	case backendPostgres:
		db, err := openDB(cfg.DatabaseURL, dbMaxRetries, log)
		if err != nil {
			return nil, err
		}
		if err := ensureSchema(db); err != nil {
			db.Close()
			return nil, err
		}
		b := &Backend{
			Name:    backendPostgres,
			Data:    newPGSource(db, remote),
			Auth:    remote,
			Gate:    remote,
			Advisor: ruleAdvisor{},
			db:      db,
			close:   db.Close,
		}
		if cfg.JWTSecret != "" {
			b.Gate = newJWTGate(cfg.JWTSecret, cfg.JWTIssuer)
		}
		return b, nil

	case backendMemory:
		m := newMemorySource(time.Now())
		return &Backend{Name: backendMemory, Data: m, Auth: m, Gate: m, Advisor: m}, nil
	}
	return nil, fmt.Errorf("unknown backend %q (want %s, %s or %s)", cfg.Backend, backendRemote, backendPostgres, backendMemory)
}
