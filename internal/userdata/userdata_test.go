package userdata

import (
	"errors"
	"testing"

	"vodkaflix/internal/storage"
)

func TestMyListToggle(t *testing.T) {
	l := New(storage.NewMemory())

	if got := l.MyList(); got != nil {
		t.Fatalf("expected empty list, got %v", got)
	}
	if l.InMyList("155") {
		t.Error("expected 155 absent initially")
	}

	if !l.ToggleMyList("155") {
		t.Fatal("first toggle should add")
	}
	if !l.InMyList("155") {
		t.Error("expected 155 present after add")
	}

	if l.ToggleMyList("155") {
		t.Fatal("second toggle should remove")
	}
	if l.InMyList("155") {
		t.Error("expected 155 absent after remove")
	}
}

func TestMyListInsertionOrder(t *testing.T) {
	l := New(storage.NewMemory())

	for _, id := range []string{"c", "a", "b"} {
		l.ToggleMyList(id)
	}
	l.ToggleMyList("a")

	got := l.MyList()
	want := []string{"c", "b"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestLikesIndependentOfMyList(t *testing.T) {
	l := New(storage.NewMemory())

	if !l.ToggleLike("557") {
		t.Fatal("first like toggle should set")
	}
	if !l.Liked("557") {
		t.Error("expected 557 liked")
	}
	if l.InMyList("557") {
		t.Error("like must not touch My List")
	}

	if l.ToggleLike("557") {
		t.Fatal("second like toggle should clear")
	}
	if l.Liked("557") {
		t.Error("expected 557 unliked")
	}
}

func TestMalformedRecordReadsAsEmpty(t *testing.T) {
	kv := storage.NewMemory()
	if err := kv.Set("vodkaflix_mylist", "{broken"); err != nil {
		t.Fatal(err)
	}

	l := New(kv)
	if got := l.MyList(); got != nil {
		t.Fatalf("expected malformed record to read as empty, got %v", got)
	}

	// A toggle over the malformed record starts a fresh list.
	l.ToggleMyList("x")
	if got := l.MyList(); len(got) != 1 || got[0] != "x" {
		t.Fatalf("expected fresh list [x], got %v", got)
	}
}

type failingKV struct{}

func (failingKV) Get(string) (string, bool, error) { return "", false, errors.New("io error") }
func (failingKV) Set(string, string) error         { return errors.New("io error") }
func (failingKV) Delete(string) error              { return errors.New("io error") }
func (failingKV) Keys(string) ([]string, error)    { return nil, errors.New("io error") }
func (failingKV) Close() error                     { return nil }

func TestStorageFailureDegradesToEmpty(t *testing.T) {
	l := New(failingKV{})

	if got := l.MyList(); got != nil {
		t.Errorf("expected empty list on storage failure, got %v", got)
	}
	if l.Liked("x") {
		t.Error("expected unliked on storage failure")
	}
	// Writes are dropped silently; the toggle still reports intent.
	if !l.ToggleMyList("x") {
		t.Error("toggle over a failing store should report the add")
	}
}
