package repository

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/limbo/serene/pkg/cleanup"
)

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}

var (
	poolsMu sync.Mutex
	pools   = make(map[string]*pgxpool.Pool)
)

// Connect returns a pool for cfg. Repositories built from the same config share one pool.
func Connect(cfg DBConfig) *pgxpool.Pool {
	poolsMu.Lock()
	defer poolsMu.Unlock()
	connStr := cfg.ConnString()
	if pool, ok := pools[connStr]; ok {
		return pool
	}
	pool, err := pgxpool.New(context.Background(), connStr)
	if err != nil {
		log.Fatal("creating pgxpool error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging pgxpool: " + err.Error())
	}
	pools[connStr] = pool
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			poolsMu.Lock()
			delete(pools, connStr)
			poolsMu.Unlock()
			pool.Close()
			return nil
		},
	})
	return pool
}

func mustPing(conn PgConnection, repoName string) {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for " + repoName + ": " + err.Error())
	}
}
