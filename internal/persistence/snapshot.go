package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/sokobo/storefront/internal/repository"
)

// Collection names used as snapshot keys.
const (
	snapshotUsers     = "users"
	snapshotProducts  = "products"
	snapshotOrders    = "orders"
	snapshotPortfolio = "portfolio"
)

const snapshotSchema = `
    CREATE TABLE IF NOT EXISTS storefront_snapshots (
        collection TEXT PRIMARY KEY,
        data       JSONB NOT NULL,
        updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
    )`

// SnapshotStore persists whole collections as JSONB rows, one per
// collection, preserving field order and list-typed fields verbatim.
// All methods no-op when postgres is not configured.
type SnapshotStore struct {
	pg     *Postgres
	logger *zap.Logger
}

// Repositories bundles the four snapshot-able collections.
type Repositories struct {
	Users     repository.UserRepository
	Products  repository.ProductRepository
	Orders    repository.OrderRepository
	Portfolio repository.PortfolioRepository
}

// NewSnapshotStore builds the store.
func NewSnapshotStore(pg *Postgres, logger *zap.Logger) *SnapshotStore {
	return &SnapshotStore{pg: pg, logger: logger}
}

// Enabled reports whether snapshots are persisted.
func (s *SnapshotStore) Enabled() bool {
	return s != nil && s.pg.Enabled()
}

// EnsureSchema creates the snapshot table when missing.
func (s *SnapshotStore) EnsureSchema(ctx context.Context) error {
	if !s.Enabled() {
		return nil
	}
	if _, err := s.pg.Pool.Exec(ctx, snapshotSchema); err != nil {
		return fmt.Errorf("ensure snapshot schema: %w", err)
	}
	return nil
}

// RestoreAll loads every persisted collection into its repository.
// Missing rows are not an error; the collection simply starts empty.
func (s *SnapshotStore) RestoreAll(ctx context.Context, repos Repositories) error {
	if !s.Enabled() {
		return nil
	}

	if err := restore(ctx, s, snapshotUsers, repos.Users.Import); err != nil {
		return err
	}
	if err := restore(ctx, s, snapshotProducts, repos.Products.Import); err != nil {
		return err
	}
	if err := restore(ctx, s, snapshotOrders, repos.Orders.Import); err != nil {
		return err
	}
	if err := restore(ctx, s, snapshotPortfolio, repos.Portfolio.Import); err != nil {
		return err
	}

	s.logger.Info("collections restored from snapshots")
	return nil
}

// SaveAll flushes every collection.
func (s *SnapshotStore) SaveAll(ctx context.Context, repos Repositories) error {
	if !s.Enabled() {
		return nil
	}

	if err := s.save(ctx, snapshotUsers, repos.Users.Export()); err != nil {
		return err
	}
	if err := s.save(ctx, snapshotProducts, repos.Products.Export()); err != nil {
		return err
	}
	if err := s.save(ctx, snapshotOrders, repos.Orders.Export()); err != nil {
		return err
	}
	if err := s.save(ctx, snapshotPortfolio, repos.Portfolio.Export()); err != nil {
		return err
	}

	s.logger.Debug("collections snapshotted")
	return nil
}

func (s *SnapshotStore) save(ctx context.Context, collection string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal snapshot %s: %w", collection, err)
	}

	const query = `
        INSERT INTO storefront_snapshots (collection, data, updated_at)
        VALUES ($1, $2, NOW())
        ON CONFLICT (collection) DO UPDATE SET data = EXCLUDED.data, updated_at = NOW()`

	if _, err := s.pg.Pool.Exec(ctx, query, collection, data); err != nil {
		return fmt.Errorf("save snapshot %s: %w", collection, err)
	}
	return nil
}

func (s *SnapshotStore) load(ctx context.Context, collection string, dest any) (bool, error) {
	const query = `SELECT data FROM storefront_snapshots WHERE collection = $1`

	var raw []byte
	if err := s.pg.Pool.QueryRow(ctx, query, collection).Scan(&raw); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("load snapshot %s: %w", collection, err)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, fmt.Errorf("decode snapshot %s: %w", collection, err)
	}
	return true, nil
}

func restore[T any](ctx context.Context, s *SnapshotStore, collection string, apply func([]T)) error {
	var entities []T
	found, err := s.load(ctx, collection, &entities)
	if err != nil {
		return err
	}
	if found {
		apply(entities)
	}
	return nil
}
