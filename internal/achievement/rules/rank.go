package rules

import (
	"context"
	"fmt"

	"cfachievements/internal/achievement"
	"cfachievements/internal/database"
	"cfachievements/internal/models"
)

func registerRanks(ctx context.Context, reg *achievement.Registry, users *database.UserRepository) {
	for _, rank := range models.Ranks() {
		rank := rank
		reg.Register(achievement.Achievement{
			Title:       rank.Title(),
			Brief:       fmt.Sprintf("I'm a %s!", rank.Title()),
			Description: fmt.Sprintf("Have rank %s", rank.Title()),
			CalculateGrants: func() ([]achievement.Grant, error) {
				matched, err := users.ByRank(ctx, rank)
				if err != nil {
					return nil, err
				}
				grants := make([]achievement.Grant, 0, len(matched))
				for _, user := range matched {
					grants = append(grants, achievement.Grant{
						Handle: user.Handle,
						Info:   rank.Title(),
					})
				}
				return grants, nil
			},
		})
	}
}
