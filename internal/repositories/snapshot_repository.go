package repositories

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// SnapshotRepository fans the registry out over the database: one
// collect per table on delete, one replay per table on restore.
type SnapshotRepository interface {
	// CollectAll reads every registry table owned by accountID. The
	// reads run concurrently and are not a single consistent snapshot;
	// rows changing mid-collection land in whichever read saw them.
	CollectAll(ctx context.Context, accountID uuid.UUID) (map[string][]json.RawMessage, error)

	// ReplayAll inserts the archived rows under newAccountID, table by
	// table. It stops at the first failure and reports how far it got;
	// already-replayed rows are not rolled back.
	ReplayAll(ctx context.Context, tables map[string][]json.RawMessage, newAccountID uuid.UUID) (int, error)
}

type snapshotRepository struct {
	db       *gorm.DB
	registry []SnapshotTable
}

func NewSnapshotRepository(db *gorm.DB, registry []SnapshotTable) SnapshotRepository {
	return &snapshotRepository{db: db, registry: registry}
}

func (s *snapshotRepository) CollectAll(ctx context.Context, accountID uuid.UUID) (map[string][]json.RawMessage, error) {
	out := make(map[string][]json.RawMessage, len(s.registry))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	for _, table := range s.registry {
		g.Go(func() error {
			rows, err := table.Collect(gctx, s.db, accountID)
			if err != nil {
				return err
			}
			mu.Lock()
			out[table.Name] = rows
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *snapshotRepository) ReplayAll(ctx context.Context, tables map[string][]json.RawMessage, newAccountID uuid.UUID) (int, error) {
	total := 0
	for _, table := range s.registry {
		rows, ok := tables[table.Name]
		if !ok || len(rows) == 0 {
			continue
		}
		n, err := table.Replay(ctx, s.db, rows, newAccountID)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
