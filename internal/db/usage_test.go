package db_test

import (
	"context"
	"testing"

	"tuberank/internal/testutil"
)

func TestIncrementUsage(t *testing.T) {
	db, cleanup := testutil.TestDB(t)
	defer cleanup()

	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if err := db.IncrementUsage(ctx, "tag_suggest", "scored"); err != nil {
			t.Fatalf("IncrementUsage() error = %v", err)
		}
	}
	if err := db.IncrementUsage(ctx, "tag_suggest", "fallback"); err != nil {
		t.Fatalf("IncrementUsage() error = %v", err)
	}

	counts, err := db.GetAllUsageCounts(ctx)
	if err != nil {
		t.Fatalf("GetAllUsageCounts() error = %v", err)
	}
	if len(counts) != 2 {
		t.Fatalf("counts = %v, want 2 rows", counts)
	}

	byOutcome := map[string]int64{}
	for _, c := range counts {
		if c.Endpoint != "tag_suggest" {
			t.Errorf("endpoint = %q, want tag_suggest", c.Endpoint)
		}
		byOutcome[c.Outcome] = c.Count
	}
	if byOutcome["scored"] != 3 || byOutcome["fallback"] != 1 {
		t.Errorf("counts = %v, want scored=3 fallback=1", byOutcome)
	}
}

func TestPing(t *testing.T) {
	db, cleanup := testutil.TestDB(t)
	defer cleanup()

	if err := db.Ping(context.Background()); err != nil {
		t.Errorf("Ping() error = %v", err)
	}
}
