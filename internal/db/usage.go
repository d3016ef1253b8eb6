package db

import (
	"context"
	"fmt"
)

// UsageCount is one per-endpoint, per-outcome request counter. Outcomes
// are "scored", "fallback", "failed", and "cached".
type UsageCount struct {
	Endpoint string
	Outcome  string
	Count    int64
}

// IncrementUsage bumps the counter for an endpoint/outcome pair.
func (d *DB) IncrementUsage(ctx context.Context, endpoint, outcome string) error {
	_, err := d.Pool.Exec(ctx, `
		INSERT INTO usage_counters (endpoint, outcome, count)
		VALUES ($1, $2, 1)
		ON CONFLICT (endpoint, outcome)
		DO UPDATE SET count = usage_counters.count + 1
	`, endpoint, outcome)
	if err != nil {
		return fmt.Errorf("failed to increment usage counter: %w", err)
	}
	return nil
}

// GetAllUsageCounts returns every usage counter. Used by the Prometheus
// collector on each scrape.
func (d *DB) GetAllUsageCounts(ctx context.Context) ([]UsageCount, error) {
	rows, err := d.Pool.Query(ctx, `
		SELECT endpoint, outcome, count
		FROM usage_counters
		ORDER BY endpoint, outcome
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query usage counters: %w", err)
	}
	defer rows.Close()

	var counts []UsageCount
	for rows.Next() {
		var c UsageCount
		if err := rows.Scan(&c.Endpoint, &c.Outcome, &c.Count); err != nil {
			return nil, fmt.Errorf("failed to scan usage counter: %w", err)
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}
