package store

import (
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/HellscythePT/discord-mercy-tracker/internal/mercy"
)

// Snapshot is the persisted layout: userID -> shard type -> summon count.
type Snapshot map[string]map[mercy.ShardType]int

// Store tracks per-user, per-shard summon counts and writes the whole
// snapshot to disk after every mutation, keeping one rotating backup.
// discordgo dispatches handlers on separate goroutines, so every operation
// takes the mutex for the full read-modify-write-save cycle.
type Store struct {
	mu   sync.Mutex
	path string
	data Snapshot
}

// Open loads the store from path, falling back to the backup file and then
// to an empty snapshot. It never fails on unreadable state.
func Open(path string) *Store {
	s := &Store{path: path, data: Snapshot{}}
	if data, ok := load(path); ok {
		s.data = data
		users := len(data)
		log.Info().Str("file", path).Int("users", users).Msg("loaded mercy data")
	}
	return s
}

// Get returns the summon count for a user and shard, 0 when untracked.
func (s *Store) Get(userID string, st mercy.ShardType) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data[userID][st]
}

// Counts returns a copy of one user's counters.
func (s *Store) Counts(userID string) map[mercy.ShardType]int {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[mercy.ShardType]int, len(s.data[userID]))
	for st, n := range s.data[userID] {
		out[st] = n
	}
	return out
}

// Add records n more summons for a user and shard and persists the store.
// It returns the new count; the in-memory update holds even when the save
// fails.
func (s *Store) Add(userID string, st mercy.ShardType, n int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.data[userID] == nil {
		s.data[userID] = map[mercy.ShardType]int{}
	}
	s.data[userID][st] += n
	count := s.data[userID][st]
	return count, s.save()
}

// Increment records a single summon.
func (s *Store) Increment(userID string, st mercy.ShardType) (int, error) {
	return s.Add(userID, st, 1)
}

// Reset zeroes one shard counter for a user and persists the store.
func (s *Store) Reset(userID string, st mercy.ShardType) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.data[userID] == nil {
		return nil
	}
	s.data[userID][st] = 0
	return s.save()
}

// ResetAll clears every counter for a user and persists the store.
func (s *Store) ResetAll(userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.data[userID]; !ok {
		return nil
	}
	s.data[userID] = map[mercy.ShardType]int{}
	return s.save()
}

// HasData reports whether a user has any tracked counters.
func (s *Store) HasData(userID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, n := range s.data[userID] {
		if n > 0 {
			return true
		}
	}
	return false
}

// All returns a copy of the full snapshot.
func (s *Store) All() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(Snapshot, len(s.data))
	for user, counts := range s.data {
		cp := make(map[mercy.ShardType]int, len(counts))
		for st, n := range counts {
			cp[st] = n
		}
		out[user] = cp
	}
	return out
}
