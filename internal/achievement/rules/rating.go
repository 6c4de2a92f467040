package rules

import (
	"context"
	"fmt"

	"cfachievements/internal/achievement"
	"cfachievements/internal/database"
)

func registerRating(ctx context.Context, reg *achievement.Registry, ratingChanges *database.RatingChangeRepository) {
	reg.Register(achievement.Achievement{
		Title:       "Perfectly balanced",
		Brief:       "Got zero delta in a rated contest",
		Description: "Get zero delta in a rated contest",
		CalculateGrants: func() ([]achievement.Grant, error) {
			changes, err := ratingChanges.ZeroDelta(ctx)
			if err != nil {
				return nil, err
			}
			grants := make([]achievement.Grant, 0, len(changes))
			for _, change := range changes {
				grants = append(grants, achievement.Grant{
					Handle: change.User.Handle,
					Info:   fmt.Sprintf("Awarded for contest %d", change.ContestID),
				})
			}
			return grants, nil
		},
	})
}
