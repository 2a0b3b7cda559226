package app

import "sync"

// playerLocks serializes sweep and lifecycle work on the same player. The
// host can deliver a departure while a sweep is mid-pass; without this the
// two could interleave reads and writes of one player's file and row.
//
// Locks are never removed; the map is bounded by the player population.
type playerLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newPlayerLocks() *playerLocks {
	return &playerLocks{locks: make(map[string]*sync.Mutex)}
}

// acquire locks the per-player mutex and returns its unlock function.
func (l *playerLocks) acquire(playerID string) func() {
	l.mu.Lock()
	m, ok := l.locks[playerID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[playerID] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
