package fetcher

import (
	"context"
	"fmt"
	"log"

	"cfachievements/internal/cfapi"
	"cfachievements/internal/database"
	"cfachievements/internal/models"
)

// HacksFetcher ingests hacks contest by contest. Completion marker is the
// presence of at least one hack row, so contests with no hacks at all are
// re-attempted on every run.
type HacksFetcher struct {
	api   API
	repos *database.Repos
}

func NewHacksFetcher(api API, repos *database.Repos) *HacksFetcher {
	return &HacksFetcher{api: api, repos: repos}
}

func (f *HacksFetcher) Run(ctx context.Context) (*Summary, error) {
	summary := NewSummary("hacks")

	contests, err := f.repos.Contests.ListAll(ctx)
	if err != nil {
		return summary, err
	}
	handles, err := f.repos.Users.HandleMap(ctx)
	if err != nil {
		return summary, err
	}

	for _, contest := range contests {
		done, err := f.repos.Hacks.HasRows(ctx, contest.ID)
		if err != nil {
			return summary, err
		}
		if done {
			continue
		}

		upstream, err := f.api.Hacks(ctx, contest.ID)
		if err != nil {
			if cfapi.IsBenignContestError(err) {
				log.Printf("[hacks] contest %d %q: %v", contest.ID, contest.Name, err)
				summary.SkippedContests++
				continue
			}
			return summary, err
		}

		problems, err := f.repos.Problems.ContestProblemIndexMap(ctx, contest.ID)
		if err != nil {
			return summary, err
		}

		hacks := make([]models.Hack, 0, len(upstream))
		for _, h := range upstream {
			if len(h.Hacker.Members) > 1 || len(h.Defender.Members) > 1 {
				summary.SkippedTeams++
				continue
			}
			if len(h.Hacker.Members) == 0 || len(h.Defender.Members) == 0 {
				summary.SkippedGhosts++
				continue
			}

			hackerID, hackerKnown := handles[h.Hacker.Members[0].Handle]
			defenderID, defenderKnown := handles[h.Defender.Members[0].Handle]
			if !hackerKnown || !defenderKnown {
				// Hacker or defender never rated; out of scope.
				summary.SkippedUnrated++
				continue
			}

			problemID, ok := problems[h.Problem.Index]
			if !ok {
				summary.SkippedUnknownProblems++
				continue
			}

			verdict, err := models.ParseHackVerdict(h.Verdict)
			if err != nil {
				return summary, fmt.Errorf("contest %d hack %d: %w", contest.ID, h.ID, err)
			}

			hacks = append(hacks, models.Hack{
				ID:               h.ID,
				ContestID:        contest.ID,
				ContestProblemID: problemID,
				HackerID:         hackerID,
				DefenderID:       defenderID,
				Verdict:          verdict,
			})
		}

		written, err := f.repos.Hacks.Insert(ctx, hacks)
		if err != nil {
			return summary, err
		}
		summary.Written += written
		summary.CompletedContests++
		log.Printf("[hacks] contest %d %q: %d hacks", contest.ID, contest.Name, written)
	}

	summary.Log()
	return summary, nil
}
