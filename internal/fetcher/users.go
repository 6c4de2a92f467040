package fetcher

import (
	"context"
	"fmt"
	"time"

	"cfachievements/internal/database"
	"cfachievements/internal/models"
)

// UsersFetcher ingests the whole rated-user list in one call. Re-runs merge
// into existing rows keyed by handle.
type UsersFetcher struct {
	api       API
	users     *database.UserRepository
	batchSize int
}

func NewUsersFetcher(api API, users *database.UserRepository, batchSize int) *UsersFetcher {
	return &UsersFetcher{api: api, users: users, batchSize: batchSize}
}

func (f *UsersFetcher) Run(ctx context.Context) (*Summary, error) {
	summary := NewSummary("users")

	list, err := f.api.RatedUsers(ctx, false)
	if err != nil {
		return summary, err
	}

	users := make([]models.User, 0, len(list))
	for _, u := range list {
		rank, err := models.ParseRank(u.Rank)
		if err != nil {
			return summary, fmt.Errorf("user %s: %w", u.Handle, err)
		}
		maxRank, err := models.ParseRank(u.MaxRank)
		if err != nil {
			return summary, fmt.Errorf("user %s: %w", u.Handle, err)
		}
		users = append(users, models.User{
			Handle:           u.Handle,
			Contribution:     u.Contribution,
			Rank:             rank,
			Rating:           u.Rating,
			MaxRank:          maxRank,
			MaxRating:        u.MaxRating,
			LastOnlineTime:   time.Unix(u.LastOnlineTimeSeconds, 0).UTC(),
			RegistrationTime: time.Unix(u.RegistrationTimeSeconds, 0).UTC(),
			FriendOfCount:    u.FriendOfCount,
		})
	}

	inserted, updated, err := f.users.UpsertRatedUsers(ctx, users, f.batchSize)
	if err != nil {
		return summary, err
	}
	summary.Written = inserted
	summary.Updated = updated
	summary.Log()
	return summary, nil
}
