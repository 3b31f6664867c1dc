package docid

import (
	"regexp"
	"testing"
	"time"
)

func TestNew(t *testing.T) {
	at := time.Date(2026, 8, 30, 14, 25, 1, 0, time.UTC)

	id := New(at)
	if !regexp.MustCompile(`^QT-260830-142501-[0-9A-F]{6}$`).MatchString(id) {
		t.Fatalf("unexpected id format: %s", id)
	}

	// Two IDs in the same second must still differ.
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		id := New(at)
		if seen[id] {
			t.Fatalf("duplicate id generated: %s", id)
		}
		seen[id] = true
	}
}
