package rules

import (
	"context"
	"fmt"
	"time"

	"cfachievements/internal/achievement"
	"cfachievements/internal/database"
)

func registerProfile(ctx context.Context, reg *achievement.Registry, users *database.UserRepository) {
	reg.Register(achievement.Achievement{
		Title: "Hello, world!",
		Brief: "Created your account in the last 2 months",
		CalculateGrants: func() ([]achievement.Grant, error) {
			now := time.Now()
			matched, err := users.RegisteredAfter(ctx, now.AddDate(0, 0, -60))
			if err != nil {
				return nil, err
			}
			grants := make([]achievement.Grant, 0, len(matched))
			for _, user := range matched {
				days := int(now.Sub(user.RegistrationTime).Hours() / 24)
				grants = append(grants, achievement.Grant{
					Handle: user.Handle,
					Info:   fmt.Sprintf("Account created %d days ago", days),
				})
			}
			return grants, nil
		},
	})

	reg.Register(achievement.Achievement{
		Title: "Veteran",
		Brief: "Created your account at least 10 years ago",
		CalculateGrants: func() ([]achievement.Grant, error) {
			now := time.Now()
			matched, err := users.RegisteredBefore(ctx, now.AddDate(0, 0, -10*365))
			if err != nil {
				return nil, err
			}
			grants := make([]achievement.Grant, 0, len(matched))
			for _, user := range matched {
				years := now.Sub(user.RegistrationTime).Hours() / 24 / 365
				grants = append(grants, achievement.Grant{
					Handle: user.Handle,
					Info:   fmt.Sprintf("Account created %.1f years ago", years),
				})
			}
			return grants, nil
		},
	})

	reg.Register(achievement.Achievement{
		Title: "Celebrity",
		Brief: "Friend of 1000 or more users",
		CalculateGrants: func() ([]achievement.Grant, error) {
			matched, err := users.ByMinFriendOfCount(ctx, 1000)
			if err != nil {
				return nil, err
			}
			grants := make([]achievement.Grant, 0, len(matched))
			for _, user := range matched {
				grants = append(grants, achievement.Grant{
					Handle: user.Handle,
					Info:   fmt.Sprintf("Friend of %d users", user.FriendOfCount),
				})
			}
			return grants, nil
		},
	})

	reg.Register(achievement.Achievement{
		Title:       "At my best",
		Brief:       "Currently at peak rating",
		Description: "Participated in a rated contest in the last 6 months and currently at peak rating",
		CalculateGrants: func() ([]achievement.Grant, error) {
			matched, err := users.AtPeakRatingActiveSince(ctx, time.Now().AddDate(0, -6, 0))
			if err != nil {
				return nil, err
			}
			grants := make([]achievement.Grant, 0, len(matched))
			for _, user := range matched {
				grants = append(grants, achievement.Grant{
					Handle: user.Handle,
					Info:   fmt.Sprintf("Currently rated %d", user.Rating),
				})
			}
			return grants, nil
		},
	})
}
