package store

import (
	"context"
	"sync"
	"testing"

	"github.com/plmtools/plm-translator/models"
	"github.com/plmtools/plm-translator/testutil"
)

// Concurrent saves must not duplicate ids or corrupt counts; each save
// is one transaction.
func TestConcurrentSaves(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	s := New(conn, "sqlite")

	const writers = 10

	ids := make([]int64, writers)
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			rec := models.TestResult{
				Outcome:  models.OutcomeSuccess,
				Accuracy: float64(50 + i),
			}
			if err := s.Save(context.Background(), &rec); err != nil {
				t.Errorf("Save failed: %v", err)
				return
			}
			ids[i] = rec.ID
		}(i)
	}
	wg.Wait()

	seen := make(map[int64]bool)
	for _, id := range ids {
		if id == 0 {
			t.Fatal("a save did not assign an id")
		}
		if seen[id] {
			t.Errorf("duplicate id %d", id)
		}
		seen[id] = true
	}

	_, page, err := s.List(context.Background(), 1, writers, "")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if page.Total != writers {
		t.Errorf("expected total %d, got %d", writers, page.Total)
	}
}
