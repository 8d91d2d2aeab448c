package pipeline

import (
	"strings"
	"testing"
	"time"
)

func TestNewULID_Shape(t *testing.T) {
	id := NewULID()
	if len(id) != 26 {
		t.Fatalf("expected 26 characters, got %d (%q)", len(id), id)
	}
	for i := 0; i < len(id); i++ {
		if !strings.ContainsRune(crockford, rune(id[i])) {
			t.Errorf("character %q at index %d is outside the Crockford alphabet", id[i], i)
		}
	}
}

func TestNewULID_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := NewULID()
		if seen[id] {
			t.Fatalf("duplicate ULID %q", id)
		}
		seen[id] = true
	}
}

func TestNewULID_SortableAcrossMilliseconds(t *testing.T) {
	first := NewULID()
	time.Sleep(2 * time.Millisecond)
	second := NewULID()
	if !(first < second) {
		t.Errorf("expected %q < %q", first, second)
	}
}
