package rules

import (
	"context"
	"fmt"

	"cfachievements/internal/achievement"
	"cfachievements/internal/database"
)

// maxWinners caps how many rank-1 rows a contest may have before the contest
// is considered unranked and excluded from winner achievements.
const maxWinners = 10

func registerWinners(ctx context.Context, reg *achievement.Registry, standings *database.StandingsRepository) {
	grantsForRank := func(rank int) ([]achievement.Grant, error) {
		rows, err := standings.RowsAtRank(ctx, rank, maxWinners)
		if err != nil {
			return nil, err
		}
		grants := make([]achievement.Grant, 0, len(rows))
		for _, row := range rows {
			grants = append(grants, achievement.Grant{
				Handle: row.User.Handle,
				Info:   fmt.Sprintf("Awarded for contest %d", row.ContestID),
			})
		}
		return grants, nil
	}

	reg.Register(achievement.Achievement{
		Title: "Winner",
		Brief: "Won a Codeforces contest",
		Description: "Win a Codeforces contest. Team participation is ignored. Out of " +
			fmt.Sprintf("competition participation is ignored. Contests with more than %d ", maxWinners) +
			"winners are ignored.",
		CalculateGrants: func() ([]achievement.Grant, error) {
			return grantsForRank(1)
		},
	})

	reg.Register(achievement.Achievement{
		Title: "Runner-up",
		Brief: "Ranked second in a Codeforces contest",
		Description: "Rank second in any Codeforces contest. Team participation is ignored. Out of " +
			fmt.Sprintf("competition participation is ignored. Contests with more than %d ", maxWinners) +
			"winners are ignored.",
		CalculateGrants: func() ([]achievement.Grant, error) {
			return grantsForRank(2)
		},
	})
}
