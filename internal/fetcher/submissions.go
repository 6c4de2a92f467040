package fetcher

import (
	"context"
	"fmt"
	"log"

	"cfachievements/internal/cfapi"
	"cfachievements/internal/database"
	"cfachievements/internal/models"
	"cfachievements/internal/staging"
)

// SubmissionsFetcher ingests the highest-volume entity family with
// mid-contest crash safety. Pages are appended to durable staging as they
// arrive; only a staged contest carrying the done marker is committed to the
// relational store. Partial staging is wiped and the contest restarts from
// offset zero, because page-boundary skew makes partial resumption unsafe.
type SubmissionsFetcher struct {
	api            API
	repos          *database.Repos
	staging        staging.Store
	pageSize       int
	storeBatchSize int
}

func NewSubmissionsFetcher(api API, repos *database.Repos, store staging.Store, pageSize, storeBatchSize int) *SubmissionsFetcher {
	return &SubmissionsFetcher{
		api:            api,
		repos:          repos,
		staging:        store,
		pageSize:       pageSize,
		storeBatchSize: storeBatchSize,
	}
}

func (f *SubmissionsFetcher) Run(ctx context.Context) (*Summary, error) {
	summary := NewSummary("submissions")

	contests, err := f.repos.Contests.ListAll(ctx)
	if err != nil {
		return summary, err
	}
	handles, err := f.repos.Users.HandleMap(ctx)
	if err != nil {
		return summary, err
	}

	for _, contest := range contests {
		staged, err := f.staging.Done(ctx, contest.ID)
		if err != nil {
			return summary, err
		}
		if !staged {
			committed, err := f.repos.Submissions.HasRows(ctx, contest.ID)
			if err != nil {
				return summary, err
			}
			if committed {
				// Fully committed on an earlier run. Stray staged rows can
				// remain if that run crashed between its commit and its
				// staging wipe; drop them so the keys do not leak.
				if err := f.staging.Wipe(ctx, contest.ID); err != nil {
					return summary, err
				}
				continue
			}

			count, err := f.staging.Count(ctx, contest.ID)
			if err != nil {
				return summary, err
			}
			if count > 0 {
				if err := f.staging.Wipe(ctx, contest.ID); err != nil {
					return summary, err
				}
			}

			skip, err := f.fetchContest(ctx, contest, handles, summary)
			if err != nil {
				return summary, err
			}
			if skip {
				summary.SkippedContests++
				continue
			}
		}

		// A done buffer is committed from scratch. A crash between commit
		// chunks leaves some of the contest's rows behind; those are dropped
		// first so the re-commit never trusts partial batch state.
		if err := f.repos.Submissions.DeleteByContest(ctx, contest.ID); err != nil {
			return summary, err
		}

		rows, err := f.staging.Load(ctx, contest.ID)
		if err != nil {
			return summary, err
		}
		written, err := f.repos.Submissions.InsertChunked(ctx, rows, f.storeBatchSize)
		if err != nil {
			return summary, err
		}
		if err := f.staging.Wipe(ctx, contest.ID); err != nil {
			return summary, err
		}
		summary.Written += written
		summary.CompletedContests++
		log.Printf("[submissions] contest %d %q: %d submissions", contest.ID, contest.Name, written)
	}

	summary.Log()
	return summary, nil
}

// fetchContest pages through one contest's submissions into staging. Returns
// skip=true when the contest has no data to give (benign upstream error).
func (f *SubmissionsFetcher) fetchContest(ctx context.Context, contest models.Contest, handles map[string]uint, summary *Summary) (skip bool, err error) {
	problems, err := f.repos.Problems.ContestProblemIndexMap(ctx, contest.ID)
	if err != nil {
		return false, err
	}

	// IDs seen in the previous page. Upstream offsets shift while we
	// paginate, so adjacent pages can overlap; a repeated ID is dropped.
	prevIDs := make(map[int64]bool)

	from := 1
	for {
		page, err := f.api.Status(ctx, contest.ID, from, f.pageSize)
		if err != nil {
			if cfapi.IsBenignContestError(err) {
				log.Printf("[submissions] contest %d %q: %v", contest.ID, contest.Name, err)
				if wipeErr := f.staging.Wipe(ctx, contest.ID); wipeErr != nil {
					return false, wipeErr
				}
				return true, nil
			}
			return false, err
		}

		currentIDs := make(map[int64]bool, len(page))
		rows := make([]models.Submission, 0, len(page))
		for _, sub := range page {
			currentIDs[sub.ID] = true
			if prevIDs[sub.ID] {
				continue
			}

			row, ok, err := f.decode(contest, sub, problems, handles, summary)
			if err != nil {
				return false, err
			}
			if !ok {
				continue
			}
			rows = append(rows, *row)
		}

		if err := f.staging.Append(ctx, contest.ID, rows); err != nil {
			return false, err
		}

		if len(page) < f.pageSize {
			if err := f.staging.MarkDone(ctx, contest.ID); err != nil {
				return false, err
			}
			return false, nil
		}

		prevIDs = currentIDs
		from += f.pageSize
	}
}

func (f *SubmissionsFetcher) decode(contest models.Contest, sub cfapi.Submission, problems map[string]uint, handles map[string]uint, summary *Summary) (*models.Submission, bool, error) {
	members := sub.Author.Members
	if len(members) > 1 {
		summary.SkippedTeams++
		return nil, false, nil
	}
	if len(members) == 0 {
		summary.SkippedGhosts++
		return nil, false, nil
	}

	authorID, ok := handles[members[0].Handle]
	if !ok {
		summary.SkippedUnrated++
		return nil, false, nil
	}

	problemID, ok := problems[sub.Problem.Index]
	if !ok {
		summary.SkippedUnknownProblems++
		return nil, false, nil
	}

	participantType, err := models.ParseParticipantType(sub.Author.ParticipantType)
	if err != nil {
		return nil, false, fmt.Errorf("contest %d submission %d: %w", contest.ID, sub.ID, err)
	}
	verdict, err := models.ParseVerdict(sub.Verdict)
	if err != nil {
		return nil, false, fmt.Errorf("contest %d submission %d: %w", contest.ID, sub.ID, err)
	}
	testset, err := models.ParseTestset(sub.Testset)
	if err != nil {
		return nil, false, fmt.Errorf("contest %d submission %d: %w", contest.ID, sub.ID, err)
	}

	return &models.Submission{
		ID:                  sub.ID,
		ContestID:           contest.ID,
		ContestProblemID:    problemID,
		AuthorID:            authorID,
		ParticipantType:     participantType,
		ProgrammingLanguage: sub.ProgrammingLanguage,
		Verdict:             verdict,
		Testset:             testset,
		PassedTestCount:     sub.PassedTestCount,
		TimeConsumedMillis:  sub.TimeConsumedMillis,
		MemoryConsumedBytes: sub.MemoryConsumedBytes,
	}, true, nil
}
