package store

import (
	"sort"
	"sync"
	"time"

	"fleetmeter/internal/types"
)

const (
	// DefaultFreshWindow bounds the age of reports that contribute to
	// aggregation and count as online.
	DefaultFreshWindow = 30 * time.Second

	// DefaultExpiryWindow bounds how long an entry is held at all.
	DefaultExpiryWindow = 300 * time.Second
)

// Config represents the store time windows
type Config struct {
	FreshWindow  time.Duration
	ExpiryWindow time.Duration
}

// Snapshot represents one listed entry: the stored report and its age at
// the time of the List call.
type Snapshot struct {
	ID     string
	Report types.Report
	Age    time.Duration
}

// entry owns one report plus the wall-clock time it was received.
type entry struct {
	report   types.Report
	lastSeen time.Time
}

// Store keeps the latest report per agent id with time-based expiry.
// All operations are mutually exclusive; readers get copies, never views
// into the shared map.
type Store struct {
	mu      sync.RWMutex
	entries map[string]entry
	cfg     Config
	now     func() time.Time
}

// New creates a new store
func New(cfg Config) *Store {
	if cfg.FreshWindow <= 0 {
		cfg.FreshWindow = DefaultFreshWindow
	}
	if cfg.ExpiryWindow <= 0 {
		cfg.ExpiryWindow = DefaultExpiryWindow
	}
	return &Store{
		entries: make(map[string]entry),
		cfg:     cfg,
		now:     time.Now,
	}
}

// Put inserts or replaces the entry for id with report and the current
// time. A later Put for the same id always supersedes an earlier one.
// Expired entries are swept afterwards as a maintenance side effect.
func (s *Store) Put(id string, report types.Report) error {
	if id == "" {
		return types.ErrMissingReportID
	}

	now := s.now()
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[id] = entry{report: report, lastSeen: now}
	s.removeExpired(now)
	return nil
}

// Sweep removes every entry whose age exceeds the expiry window.
// Idempotent; safe to call redundantly.
func (s *Store) Sweep(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeExpired(now)
}

// removeExpired must be called with the lock held.
func (s *Store) removeExpired(now time.Time) {
	for id, e := range s.entries {
		if now.Sub(e.lastSeen) > s.cfg.ExpiryWindow {
			delete(s.entries, id)
		}
	}
}

// List returns a snapshot of every current entry sorted by id. Entries
// past the fresh window still appear here until they expire.
func (s *Store) List() []Snapshot {
	now := s.now()

	s.mu.RLock()
	out := make([]Snapshot, 0, len(s.entries))
	for id, e := range s.entries {
		out = append(out, Snapshot{ID: id, Report: e.report, Age: now.Sub(e.lastSeen)})
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Fresh returns copies of every report whose age is within the fresh
// window, restricted to ids when non-empty. Unknown ids are ignored.
// This is the exclusive input set for aggregation.
func (s *Store) Fresh(ids []string) []types.Report {
	now := s.now()

	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []types.Report
	if len(ids) > 0 {
		seen := make(map[string]struct{}, len(ids))
		for _, id := range ids {
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			if e, ok := s.entries[id]; ok && now.Sub(e.lastSeen) <= s.cfg.FreshWindow {
				out = append(out, e.report)
			}
		}
		return out
	}

	for _, e := range s.entries {
		if now.Sub(e.lastSeen) <= s.cfg.FreshWindow {
			out = append(out, e.report)
		}
	}
	return out
}

// Len returns the number of live entries
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
