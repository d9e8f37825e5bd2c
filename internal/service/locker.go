package service

import "sync"

// Locker serializes check-then-act sequences touching one owner's records:
// a category delete must not race a transaction insert referencing the same
// category. Different owners never contend. The category and transaction
// services must share one instance.
type Locker struct {
	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

func NewLocker() *Locker {
	return &Locker{
		locks: make(map[int64]*sync.Mutex),
	}
}

func (l *Locker) Lock(ownerID int64) {
	l.mu.Lock()
	m, ok := l.locks[ownerID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[ownerID] = m
	}
	l.mu.Unlock()
	m.Lock()
}

func (l *Locker) Unlock(ownerID int64) {
	l.mu.Lock()
	m := l.locks[ownerID]
	l.mu.Unlock()
	m.Unlock()
}
