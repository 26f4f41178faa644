package postgres

import (
	"context"
	"task-service/internal/config"
	"task-service/internal/repository"

	"github.com/jackc/pgx/v5/pgxpool"
)

var _ repository.Store = (*DB)(nil)

type DB struct {
	Pool *pgxpool.Pool

	users *UserRepository
	tasks *TaskRepository
}

func New(ctx context.Context, cfg *config.DatabaseConfig) (*DB, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, errFailedParseDatabaseConfig(err)
	}

	poolConfig.MaxConns = int32(cfg.MaxConns)
	poolConfig.MinConns = int32(cfg.MinConns)
	poolConfig.HealthCheckPeriod = poolHealthCheckPeriod
	poolConfig.MaxConnLifetime = poolMaxConnLifetime
	poolConfig.MaxConnIdleTime = poolMaxConnIdleTime

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, errFailedCreateConnectionPool(err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, dbPingTimeout)
	defer cancel()

	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, errFailedPingDatabase(err)
	}

	db := &DB{Pool: pool}
	db.users = NewUserRepository(db)
	db.tasks = NewTaskRepository(db)
	return db, nil
}

func (db *DB) Users() repository.UserRepository { return db.users }
func (db *DB) Tasks() repository.TaskRepository { return db.tasks }

func (db *DB) Ping(ctx context.Context) error {
	return db.Pool.Ping(ctx)
}

func (db *DB) Close() {
	if db.Pool != nil {
		db.Pool.Close()
	}
}
