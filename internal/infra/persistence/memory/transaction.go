package memory

import (
	"context"

	"geofence/internal/domain/repository"
)

type transactionManager struct {
	store *Store
}

type repositoryFactory struct {
	store *Store
}

func (f *repositoryFactory) NewRegionRepository() repository.RegionRepository {
	return NewRegionRepository(f.store)
}

func (f *repositoryFactory) NewLedgerRepository() repository.LedgerRepository {
	return NewLedgerRepository(f.store)
}

// NewTransactionManager serializes transactional work on the store.
// Writes made before a failing callback returns are not rolled back.
func NewTransactionManager(store *Store) repository.TransactionManager {
	return &transactionManager{store: store}
}

func (tm *transactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	tm.store.txMu.Lock()
	defer tm.store.txMu.Unlock()

	return fn(&repositoryFactory{store: tm.store})
}
