// Package progress persists per-title watch positions and rebuilds the
// "Continue Watching" row from them. Storage failures never propagate:
// unreadable values act as absent and failed writes are dropped, so the
// playback session can always proceed.
package progress

import (
	"encoding/json"
	"sort"
	"time"

	"vodkaflix/internal/catalog"
	"vodkaflix/internal/media"
	"vodkaflix/internal/storage"
)

// keyPrefix namespaces progress records within the shared key-value store.
const keyPrefix = "vodkaflix_progress_"

// Store is the typed progress layer over the key-value medium.
type Store struct {
	kv  storage.KV
	now func() int64
}

// New returns a Store over kv.
func New(kv storage.KV) *Store {
	return &Store{
		kv:  kv,
		now: func() int64 { return time.Now().UnixMilli() },
	}
}

// Get returns the stored position for a title, or ok=false if none is
// stored or the stored value cannot be read.
func (s *Store) Get(titleID string) (media.WatchPosition, bool) {
	raw, ok, err := s.kv.Get(keyPrefix + titleID)
	if err != nil || !ok {
		return media.WatchPosition{}, false
	}

	var pos media.WatchPosition
	if err := json.Unmarshal([]byte(raw), &pos); err != nil {
		return media.WatchPosition{}, false
	}
	return pos, true
}

// Set records season/episode for a title, stamped with the current time.
// Last write wins; no history is kept.
func (s *Store) Set(titleID string, season, episode int) {
	s.write(titleID, media.WatchPosition{
		Season:      season,
		Episode:     episode,
		LastWatched: s.now(),
	})
}

func (s *Store) write(titleID string, pos media.WatchPosition) {
	raw, err := json.Marshal(pos)
	if err != nil {
		return
	}
	_ = s.kv.Set(keyPrefix+titleID, string(raw))
}

// Delete removes a title's position ("remove from continue watching").
// Deleting an absent title is a no-op.
func (s *Store) Delete(titleID string) {
	_ = s.kv.Delete(keyPrefix + titleID)
}

// TitleIDs enumerates all titles with a stored position.
func (s *Store) TitleIDs() []string {
	keys, err := s.kv.Keys(keyPrefix)
	if err != nil {
		return nil
	}

	ids := make([]string, 0, len(keys))
	for _, k := range keys {
		ids = append(ids, k[len(keyPrefix):])
	}
	return ids
}

// ContinueWatching resolves every stored position against the catalog and
// returns the titles ordered by most recently watched. Positions whose ID
// no longer resolves are silently dropped.
func (s *Store) ContinueWatching(cat catalog.Provider) []media.Title {
	titles := cat.TitlesByIDs(s.TitleIDs())

	sort.SliceStable(titles, func(i, j int) bool {
		pi, _ := s.Get(titles[i].ID)
		pj, _ := s.Get(titles[j].ID)
		return pi.LastWatched > pj.LastWatched
	})
	return titles
}
