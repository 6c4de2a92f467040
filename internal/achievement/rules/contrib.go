package rules

import (
	"context"
	"fmt"

	"cfachievements/internal/achievement"
	"cfachievements/internal/database"
)

func registerContribution(ctx context.Context, reg *achievement.Registry, users *database.UserRepository) {
	tiers := []struct {
		title        string
		brief        string
		description  string
		min          int
		maxExclusive int
	}{
		{
			title:        "Contributor I",
			brief:        "Have at least 1 contribution",
			description:  "Have between 1 and 4 contribution",
			min:          1,
			maxExclusive: 5,
		},
		{
			title:        "Contributor II",
			brief:        "Have at least 5 contribution",
			description:  "Have between 5 and 24 contribution",
			min:          5,
			maxExclusive: 25,
		},
		{
			title:        "Contributor III",
			brief:        "Have at least 25 contribution",
			description:  "Have between 25 and 99 contribution",
			min:          25,
			maxExclusive: 100,
		},
		{
			title: "Contributor IV",
			brief: "Have at least 100 contribution",
			min:   100,
		},
	}

	for _, tier := range tiers {
		tier := tier
		reg.Register(achievement.Achievement{
			Title:       tier.title,
			Brief:       tier.brief,
			Description: tier.description,
			CalculateGrants: func() ([]achievement.Grant, error) {
				matched, err := users.ByContributionRange(ctx, tier.min, tier.maxExclusive)
				if err != nil {
					return nil, err
				}
				grants := make([]achievement.Grant, 0, len(matched))
				for _, user := range matched {
					grants = append(grants, achievement.Grant{
						Handle: user.Handle,
						Info:   fmt.Sprintf("Contribution %d", user.Contribution),
					})
				}
				return grants, nil
			},
		})
	}
}
