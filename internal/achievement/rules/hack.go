package rules

import (
	"context"
	"fmt"

	"cfachievements/internal/achievement"
	"cfachievements/internal/database"
	"cfachievements/internal/models"
)

const touristHandle = "tourist"

func registerHacks(ctx context.Context, reg *achievement.Registry, hacks *database.HackRepository) {
	reg.Register(achievement.Achievement{
		Title: "You didn't even scratch me!",
		Brief: "Defended a submission against a hack attempt by tourist",
		Description: "Have one of your submissions unsuccessfully challenged by tourist. There " +
			"should be no other successful hack attempts from tourist of your submissions for this " +
			"problem.",
		CalculateGrants: func() ([]achievement.Grant, error) {
			successful, err := hacks.ByHackerAndVerdict(ctx, touristHandle, models.HackSuccessful)
			if err != nil {
				return nil, err
			}
			cracked := make(map[[2]uint]bool, len(successful))
			for _, h := range successful {
				cracked[[2]uint{h.ContestProblemID, h.DefenderID}] = true
			}

			failed, err := hacks.ByHackerAndVerdict(ctx, touristHandle, models.HackUnsuccessful)
			if err != nil {
				return nil, err
			}

			var grants []achievement.Grant
			for _, h := range failed {
				if cracked[[2]uint{h.ContestProblemID, h.DefenderID}] {
					continue
				}
				grants = append(grants, achievement.Grant{
					Handle: h.Defender.Handle,
					Info:   fmt.Sprintf("Awarded for problem %d%s", h.ContestID, h.ContestProblem.Index),
				})
			}
			return grants, nil
		},
	})

	reg.Register(achievement.Achievement{
		Title:       "Congratulations, you played yourself",
		Brief:       "Successfully hacked your own submission",
		Description: "Successfully hack your own submission",
		CalculateGrants: func() ([]achievement.Grant, error) {
			selfHacks, err := hacks.SuccessfulSelfHacks(ctx)
			if err != nil {
				return nil, err
			}
			grants := make([]achievement.Grant, 0, len(selfHacks))
			for _, h := range selfHacks {
				grants = append(grants, achievement.Grant{
					Handle: h.Hacker.Handle,
					Info:   fmt.Sprintf("Awarded for hack %d on problem %d%s", h.ID, h.ContestID, h.ContestProblem.Index),
				})
			}
			return grants, nil
		},
	})
}
