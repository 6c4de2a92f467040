package achievement

import (
	"context"
	"fmt"
	"log"
	"time"

	"cfachievements/internal/database"
)

// WithStats is one rule's evaluation output: its grants plus how widely it
// was awarded.
type WithStats struct {
	Achievement          Achievement
	Grants               []Grant
	UsersAwarded         int
	UsersAwardedFraction float64
}

// Evaluate runs every registered rule in registration order against the
// store snapshot. Rules are trusted code: a failing rule aborts the whole
// run rather than being isolated.
func Evaluate(ctx context.Context, registry *Registry, users *database.UserRepository) ([]WithStats, error) {
	totalUsers, err := users.Count(ctx)
	if err != nil {
		return nil, err
	}
	if totalUsers == 0 {
		return nil, fmt.Errorf("no users in store; ingest users before evaluating")
	}

	achievements := registry.Achievements()
	results := make([]WithStats, 0, len(achievements))
	for _, ach := range achievements {
		started := time.Now()
		grants, err := ach.CalculateGrants()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ach, err)
		}

		awarded := make(map[string]bool, len(grants))
		for _, grant := range grants {
			awarded[grant.Handle] = true
		}

		results = append(results, WithStats{
			Achievement:          ach,
			Grants:               grants,
			UsersAwarded:         len(awarded),
			UsersAwardedFraction: float64(len(awarded)) / float64(totalUsers),
		})
		log.Printf("%s: %d grants, %d users, %.3fs", ach, len(grants), len(awarded), time.Since(started).Seconds())
	}

	return results, nil
}
