package rules

import (
	"context"
	"fmt"

	"cfachievements/internal/achievement"
	"cfachievements/internal/database"
)

func registerSystests(ctx context.Context, reg *achievement.Registry, submissions *database.SubmissionRepository) {
	reg.Register(achievement.Achievement{
		Title:       "RIP",
		Brief:       "Failed systests in a contest",
		Description: "Have a submission pass pretests in a contest but fail systests",
		CalculateGrants: func() ([]achievement.Grant, error) {
			// Contests without any pretest submission are treated as having
			// no pretests; educational rounds fall in this bucket even
			// though they do have them.
			failed, err := submissions.FailedSystests(ctx)
			if err != nil {
				return nil, err
			}
			grants := make([]achievement.Grant, 0, len(failed))
			for _, sub := range failed {
				grants = append(grants, achievement.Grant{
					Handle: sub.Author.Handle,
					Info:   fmt.Sprintf("Awarded for submission %d in contest %d", sub.ID, sub.ContestID),
				})
			}
			return grants, nil
		},
	})
}
