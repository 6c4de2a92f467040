package fetcher

import (
	"context"
	"fmt"
	"log"
	"strings"

	"cfachievements/internal/cfapi"
	"cfachievements/internal/database"
	"cfachievements/internal/models"
)

// StandingsFetcher ingests problems, contest problems, ranklist rows and
// problem results contest by contest. A contest is complete once its contest
// problems are committed; complete contests are skipped on re-runs.
type StandingsFetcher struct {
	api       API
	repos     *database.Repos
	batchSize int
}

func NewStandingsFetcher(api API, repos *database.Repos, batchSize int) *StandingsFetcher {
	return &StandingsFetcher{api: api, repos: repos, batchSize: batchSize}
}

func (f *StandingsFetcher) Run(ctx context.Context) (*Summary, error) {
	summary := NewSummary("standings")

	contests, err := f.repos.Contests.ListAll(ctx)
	if err != nil {
		return summary, err
	}
	handles, err := f.repos.Users.HandleMap(ctx)
	if err != nil {
		return summary, err
	}

	for _, contest := range contests {
		done, err := f.repos.Problems.HasContestProblems(ctx, contest.ID)
		if err != nil {
			return summary, err
		}
		if done {
			continue
		}

		standings, err := f.api.Standings(ctx, contest.ID)
		if err != nil {
			if cfapi.IsBenignContestError(err) {
				log.Printf("[standings] contest %d %q: %v", contest.ID, contest.Name, err)
				summary.SkippedContests++
				continue
			}
			return summary, err
		}

		insert, err := f.decode(contest, standings, handles, summary)
		if err != nil {
			return summary, err
		}

		counts, err := f.repos.Standings.SaveContestStandings(ctx, *insert, f.batchSize)
		if err != nil {
			return summary, err
		}
		summary.Written += counts.Problems + counts.ContestProblems + counts.RanklistRows + counts.ProblemResults
		summary.CompletedContests++
		log.Printf("[standings] contest %d %q: %d problems, %d rows, %d results",
			contest.ID, contest.Name, counts.ContestProblems, counts.RanklistRows, counts.ProblemResults)
	}

	summary.Log()
	return summary, nil
}

func (f *StandingsFetcher) decode(contest models.Contest, standings *cfapi.Standings, handles map[string]uint, summary *Summary) (*database.StandingsInsert, error) {
	insert := &database.StandingsInsert{Contest: contest}

	for _, p := range standings.Problems {
		insert.Problems = append(insert.Problems, database.IndexedProblem{
			Problem: models.Problem{
				Name:             p.Name,
				ContestStartTime: contest.StartTime,
				Rating:           p.Rating,
				Tags:             strings.Join(p.Tags, ","),
			},
			Index: p.Index,
		})
	}

	seen := make(map[string]bool)
	for _, row := range standings.Rows {
		members := row.Party.Members
		if len(members) > 1 {
			summary.SkippedTeams++
			continue
		}
		if len(members) == 0 {
			summary.SkippedGhosts++
			continue
		}
		handle := members[0].Handle
		if knownStandingsDuplicates[contestHandle{contest.ID, handle}] {
			summary.SkippedKnownDuplicates++
			continue
		}
		if seen[handle] {
			return nil, fmt.Errorf("%w: repeated ranklist entry (%d, %s)", ErrIntegrity, contest.ID, handle)
		}
		seen[handle] = true

		userID, ok := handles[handle]
		if !ok {
			// Participated in an unrated contest only; out of scope.
			summary.SkippedUnrated++
			continue
		}

		participantType, err := models.ParseParticipantType(row.Party.ParticipantType)
		if err != nil {
			return nil, fmt.Errorf("contest %d row %s: %w", contest.ID, handle, err)
		}
		// The official ranklist carries contestants only; anything else means
		// the fetch got the wrong ranklist.
		if participantType != models.ParticipantContestant {
			return nil, fmt.Errorf("%w: participant type %s on official ranklist (%d, %s)",
				ErrIntegrity, row.Party.ParticipantType, contest.ID, handle)
		}

		insert.Rows = append(insert.Rows, models.RanklistRow{
			ContestID:             contest.ID,
			UserID:                userID,
			ParticipantType:       participantType,
			Rank:                  row.Rank,
			Points:                row.Points,
			Penalty:               row.Penalty,
			SuccessfulHackCount:   row.SuccessfulHackCount,
			UnsuccessfulHackCount: row.UnsuccessfulHackCount,
		})

		for i, pr := range row.ProblemResults {
			if i >= len(standings.Problems) {
				break
			}
			if pr.Points == 0 && pr.RejectedAttemptCount == 0 {
				summary.SkippedNoAttempt++
				continue
			}
			insert.Results = append(insert.Results, models.ProblemResult{
				ContestID:                 contest.ID,
				UserID:                    userID,
				ProblemIndex:              standings.Problems[i].Index,
				Points:                    pr.Points,
				Penalty:                   pr.Penalty,
				RejectedAttemptCount:      pr.RejectedAttemptCount,
				BestSubmissionTimeSeconds: pr.BestSubmissionTimeSeconds,
			})
		}
	}

	return insert, nil
}
