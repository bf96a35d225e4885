package service

import "context"

// UserLocker serializes proximity evaluation per user across goroutines and replicas.
type UserLocker interface {
	// Lock blocks until the user's lock is held or ctx is done. The returned func releases it.
	Lock(ctx context.Context, userID string) (unlock func(), err error)
}
