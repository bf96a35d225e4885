package lock

import (
	"context"
	"sync"

	"geofence/internal/domain/service"

	"github.com/pkg/errors"
)

type keyedLock struct {
	ch   chan struct{}
	refs int
}

// localLocker is a keyed mutex for single-replica deployments
type localLocker struct {
	mu    sync.Mutex
	locks map[string]*keyedLock
}

// NewLocalLocker creates an in-process per-user lock
func NewLocalLocker() service.UserLocker {
	return &localLocker{locks: make(map[string]*keyedLock)}
}

func (l *localLocker) Lock(ctx context.Context, userID string) (func(), error) {
	if userID == "" {
		return nil, errors.New("lock key is empty")
	}

	l.mu.Lock()
	entry, ok := l.locks[userID]
	if !ok {
		entry = &keyedLock{ch: make(chan struct{}, 1)}
		l.locks[userID] = entry
	}
	entry.refs++
	l.mu.Unlock()

	select {
	case entry.ch <- struct{}{}:
	case <-ctx.Done():
		l.unref(userID, entry)

		return nil, errors.Wrapf(ctx.Err(), "wait for lock %s", userID)
	}

	var once sync.Once

	return func() {
		once.Do(func() {
			<-entry.ch
			l.unref(userID, entry)
		})
	}, nil
}

// unref drops the map entry once nobody holds or waits for it
func (l *localLocker) unref(userID string, entry *keyedLock) {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry.refs--
	if entry.refs == 0 {
		delete(l.locks, userID)
	}
}
