package fetcher

import (
	"context"
	"time"

	"cfachievements/internal/database"
	"cfachievements/internal/models"
)

// ContestsFetcher ingests the whole contest list in one call. Contests are
// immutable, so re-runs fall through the unique-key ignore.
type ContestsFetcher struct {
	api      API
	contests *database.ContestRepository
}

func NewContestsFetcher(api API, contests *database.ContestRepository) *ContestsFetcher {
	return &ContestsFetcher{api: api, contests: contests}
}

func (f *ContestsFetcher) Run(ctx context.Context) (*Summary, error) {
	summary := NewSummary("contests")

	list, err := f.api.ContestList(ctx)
	if err != nil {
		return summary, err
	}

	contests := make([]models.Contest, 0, len(list))
	for _, c := range list {
		if c.StartTimeSeconds == 0 {
			// Not scheduled yet; nothing downstream can reference it.
			summary.SkippedContests++
			continue
		}
		contests = append(contests, models.Contest{
			ID:        c.ID,
			Name:      c.Name,
			StartTime: time.Unix(c.StartTimeSeconds, 0).UTC(),
		})
	}

	written, err := f.contests.InsertIgnoringDuplicates(ctx, contests)
	if err != nil {
		return summary, err
	}
	summary.Written = written
	summary.Log()
	return summary, nil
}
