package store

import (
	"sync"
	"testing"
)

func TestNewIDUniqueAndOrdered(t *testing.T) {
	prev := NewID()
	for i := 0; i < 100; i++ {
		id := NewID()
		if len(id) != 26 {
			t.Fatalf("id %q is not a ULID", id)
		}
		if id <= prev {
			t.Fatalf("ids not monotonic: %s then %s", prev, id)
		}
		prev = id
	}
}

func TestNewIDConcurrent(t *testing.T) {
	const n = 50
	ids := make([]string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ids[i] = NewID()
		}(i)
	}
	wg.Wait()

	seen := make(map[string]struct{}, n)
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate id %s", id)
		}
		seen[id] = struct{}{}
	}
}
