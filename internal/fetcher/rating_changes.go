package fetcher

import (
	"context"
	"fmt"
	"log"
	"time"

	"cfachievements/internal/cfapi"
	"cfachievements/internal/database"
	"cfachievements/internal/models"
)

// RatingChangesFetcher ingests rating changes contest by contest with the
// same completion-marker asymmetry as hacks.
type RatingChangesFetcher struct {
	api   API
	repos *database.Repos
}

func NewRatingChangesFetcher(api API, repos *database.Repos) *RatingChangesFetcher {
	return &RatingChangesFetcher{api: api, repos: repos}
}

func (f *RatingChangesFetcher) Run(ctx context.Context) (*Summary, error) {
	summary := NewSummary("rating-changes")

	contests, err := f.repos.Contests.ListAll(ctx)
	if err != nil {
		return summary, err
	}
	handles, err := f.repos.Users.HandleMap(ctx)
	if err != nil {
		return summary, err
	}

	for _, contest := range contests {
		done, err := f.repos.RatingChanges.HasRows(ctx, contest.ID)
		if err != nil {
			return summary, err
		}
		if done {
			continue
		}

		upstream, err := f.api.RatingChanges(ctx, contest.ID)
		if err != nil {
			if cfapi.IsBenignContestError(err) {
				log.Printf("[rating-changes] contest %d %q: %v", contest.ID, contest.Name, err)
				summary.SkippedContests++
				continue
			}
			return summary, err
		}

		seen := make(map[string]bool)
		changes := make([]models.RatingChange, 0, len(upstream))
		for _, change := range upstream {
			if seen[change.Handle] {
				if knownRatingChangeDuplicates[contestHandle{contest.ID, change.Handle}] {
					summary.SkippedKnownDuplicates++
					continue
				}
				return summary, fmt.Errorf("%w: repeated rating change (%d, %s)", ErrIntegrity, contest.ID, change.Handle)
			}
			seen[change.Handle] = true

			userID, ok := handles[change.Handle]
			if !ok {
				summary.SkippedUnrated++
				continue
			}

			changes = append(changes, models.RatingChange{
				ContestID:  contest.ID,
				UserID:     userID,
				Rank:       change.Rank,
				OldRating:  change.OldRating,
				NewRating:  change.NewRating,
				UpdateTime: time.Unix(change.RatingUpdateTimeSeconds, 0).UTC(),
			})
		}

		written, err := f.repos.RatingChanges.Insert(ctx, changes)
		if err != nil {
			return summary, err
		}
		summary.Written += written
		summary.CompletedContests++
		log.Printf("[rating-changes] contest %d %q: %d changes", contest.ID, contest.Name, written)
	}

	summary.Log()
	return summary, nil
}
