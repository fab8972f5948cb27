package postgresql

import (
	"context"
	"fmt"

	"github.com/ametis-rh/paie-backend-go/internal/domain/compensation"
	"github.com/ametis-rh/paie-backend-go/internal/pkg/database"
)

type txManager struct {
	db *database.DB
}

func NewTxManager(db *database.DB) compensation.TxManager {
	return &txManager{db: db}
}

// WithinTx runs fn inside a database transaction. The transaction rides on
// the context so repositories called from fn join it via GetQuerier.
func (m *txManager) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	tx, err := m.db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(ctx)
			panic(p)
		}
	}()

	if err := fn(database.WithTx(ctx, tx)); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("rollback error: %v (original error: %w)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}

// GetQuerier returns the transaction carried by the context, or the pool.
// Used in repositories to support both transactional and non-transactional
// operations.
func GetQuerier(ctx context.Context, db *database.DB) database.Querier {
	if tx, ok := database.TxFromContext(ctx); ok {
		return tx
	}
	return db.Pool
}
