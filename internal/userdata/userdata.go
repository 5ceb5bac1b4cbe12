// Package userdata persists the user's "My List" and liked titles in the
// shared key-value store. Both are small JSON arrays of title IDs; like the
// progress layer, storage failures degrade to empty rather than erroring.
package userdata

import (
	"encoding/json"

	"vodkaflix/internal/storage"
)

const (
	myListKey = "vodkaflix_mylist"
	likedKey  = "vodkaflix_liked"
)

// Lists tracks My List (ordered, insertion order) and likes (a set).
type Lists struct {
	kv storage.KV
}

// New returns Lists over kv.
func New(kv storage.KV) *Lists {
	return &Lists{kv: kv}
}

// MyList returns the saved list in insertion order.
func (l *Lists) MyList() []string {
	return l.readIDs(myListKey)
}

// InMyList reports whether id is on the list.
func (l *Lists) InMyList(id string) bool {
	return contains(l.MyList(), id)
}

// ToggleMyList adds id if absent, removes it if present, and reports the
// new membership.
func (l *Lists) ToggleMyList(id string) bool {
	ids := l.MyList()
	if contains(ids, id) {
		l.writeIDs(myListKey, remove(ids, id))
		return false
	}
	l.writeIDs(myListKey, append(ids, id))
	return true
}

// Liked reports whether id is liked.
func (l *Lists) Liked(id string) bool {
	return contains(l.readIDs(likedKey), id)
}

// ToggleLike flips the liked state of id and reports the new state.
func (l *Lists) ToggleLike(id string) bool {
	ids := l.readIDs(likedKey)
	if contains(ids, id) {
		l.writeIDs(likedKey, remove(ids, id))
		return false
	}
	l.writeIDs(likedKey, append(ids, id))
	return true
}

func (l *Lists) readIDs(key string) []string {
	raw, ok, err := l.kv.Get(key)
	if err != nil || !ok {
		return nil
	}
	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		return nil
	}
	return ids
}

func (l *Lists) writeIDs(key string, ids []string) {
	raw, err := json.Marshal(ids)
	if err != nil {
		return
	}
	_ = l.kv.Set(key, string(raw))
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func remove(ids []string, id string) []string {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
