package fetcher

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"cfachievements/internal/cfapi"
	"cfachievements/internal/database"
	"cfachievements/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAPI satisfies API with per-method function hooks. Unset hooks return
// empty results.
type fakeAPI struct {
	ratedUsers    func() ([]cfapi.RatedUser, error)
	contestList   func() ([]cfapi.Contest, error)
	standings     func(contestID int) (*cfapi.Standings, error)
	hacks         func(contestID int) ([]cfapi.Hack, error)
	ratingChanges func(contestID int) ([]cfapi.RatingChange, error)
	status        func(contestID, from, count int) ([]cfapi.Submission, error)

	statusCalls int
}

func (f *fakeAPI) RatedUsers(ctx context.Context, activeOnly bool) ([]cfapi.RatedUser, error) {
	if f.ratedUsers == nil {
		return nil, nil
	}
	return f.ratedUsers()
}

func (f *fakeAPI) ContestList(ctx context.Context) ([]cfapi.Contest, error) {
	if f.contestList == nil {
		return nil, nil
	}
	return f.contestList()
}

func (f *fakeAPI) Standings(ctx context.Context, contestID int) (*cfapi.Standings, error) {
	if f.standings == nil {
		return &cfapi.Standings{}, nil
	}
	return f.standings(contestID)
}

func (f *fakeAPI) Hacks(ctx context.Context, contestID int) ([]cfapi.Hack, error) {
	if f.hacks == nil {
		return nil, nil
	}
	return f.hacks(contestID)
}

func (f *fakeAPI) RatingChanges(ctx context.Context, contestID int) ([]cfapi.RatingChange, error) {
	if f.ratingChanges == nil {
		return nil, nil
	}
	return f.ratingChanges(contestID)
}

func (f *fakeAPI) Status(ctx context.Context, contestID, from, count int) ([]cfapi.Submission, error) {
	f.statusCalls++
	if f.status == nil {
		return nil, nil
	}
	return f.status(contestID, from, count)
}

// memStore is an in-memory staging.Store for fetcher tests.
type memStore struct {
	rows map[int][]models.Submission
	done map[int]bool
}

func newMemStore() *memStore {
	return &memStore{rows: make(map[int][]models.Submission), done: make(map[int]bool)}
}

func (s *memStore) Append(ctx context.Context, contestID int, rows []models.Submission) error {
	s.rows[contestID] = append(s.rows[contestID], rows...)
	return nil
}

func (s *memStore) Count(ctx context.Context, contestID int) (int64, error) {
	return int64(len(s.rows[contestID])), nil
}

func (s *memStore) Load(ctx context.Context, contestID int) ([]models.Submission, error) {
	return s.rows[contestID], nil
}

func (s *memStore) MarkDone(ctx context.Context, contestID int) error {
	s.done[contestID] = true
	return nil
}

func (s *memStore) Done(ctx context.Context, contestID int) (bool, error) {
	return s.done[contestID], nil
}

func (s *memStore) Wipe(ctx context.Context, contestID int) error {
	delete(s.rows, contestID)
	delete(s.done, contestID)
	return nil
}

func newTestRepos(t *testing.T) (*database.GormDB, *database.Repos) {
	t.Helper()
	db, err := database.NewGormConnection(database.Config{
		Driver: "sqlite",
		Path:   filepath.Join(t.TempDir(), "test.db"),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate())
	t.Cleanup(func() { db.Close() })
	return db, database.NewRepos(db)
}

func seedUsers(t *testing.T, repos *database.Repos, handles ...string) map[string]uint {
	t.Helper()
	users := make([]models.User, 0, len(handles))
	for _, h := range handles {
		users = append(users, models.User{Handle: h})
	}
	_, _, err := repos.Users.UpsertRatedUsers(context.Background(), users, 100)
	require.NoError(t, err)
	m, err := repos.Users.HandleMap(context.Background())
	require.NoError(t, err)
	return m
}

func seedContest(t *testing.T, repos *database.Repos, id int, name string) {
	t.Helper()
	_, err := repos.Contests.InsertIgnoringDuplicates(context.Background(), []models.Contest{
		{ID: id, Name: name, StartTime: time.Unix(int64(id)*1000, 0).UTC()},
	})
	require.NoError(t, err)
}

func seedContestProblem(t *testing.T, db *database.GormDB, contestID int, index string) uint {
	t.Helper()
	p := models.Problem{Name: "Problem " + index, ContestStartTime: time.Unix(int64(contestID)*1000, 0).UTC()}
	require.NoError(t, db.DB.Create(&p).Error)
	cp := models.ContestProblem{ContestID: contestID, ProblemID: p.ID, Index: index}
	require.NoError(t, db.DB.Create(&cp).Error)
	return cp.ID
}

func TestUsersFetcherReRunMerges(t *testing.T) {
	_, repos := newTestRepos(t)
	api := &fakeAPI{
		ratedUsers: func() ([]cfapi.RatedUser, error) {
			return []cfapi.RatedUser{
				{Handle: "alice", Rank: "expert", MaxRank: "expert", Rating: 1700, MaxRating: 1700},
				{Handle: "bob", Rank: "newbie", MaxRank: "pupil", Rating: 900, MaxRating: 1250},
			}, nil
		},
	}
	f := NewUsersFetcher(api, repos.Users, 100)

	summary, err := f.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), summary.Written)
	assert.Equal(t, int64(0), summary.Updated)

	summary, err = f.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), summary.Written)
	assert.Equal(t, int64(2), summary.Updated)
}

func TestUsersFetcherUnknownRankFatal(t *testing.T) {
	_, repos := newTestRepos(t)
	api := &fakeAPI{
		ratedUsers: func() ([]cfapi.RatedUser, error) {
			return []cfapi.RatedUser{{Handle: "alice", Rank: "demigod", MaxRank: "demigod"}}, nil
		},
	}
	_, err := NewUsersFetcher(api, repos.Users, 100).Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "demigod")
}

func TestContestsFetcherSkipsUnscheduled(t *testing.T) {
	_, repos := newTestRepos(t)
	api := &fakeAPI{
		contestList: func() ([]cfapi.Contest, error) {
			return []cfapi.Contest{
				{ID: 1, Name: "Round 1", StartTimeSeconds: 1000},
				{ID: 2, Name: "Unscheduled"},
				{ID: 3, Name: "Round 3", StartTimeSeconds: 3000},
			}, nil
		},
	}
	f := NewContestsFetcher(api, repos.Contests)

	summary, err := f.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), summary.Written)
	assert.Equal(t, 1, summary.SkippedContests)

	// Contests are immutable; a re-run writes nothing.
	summary, err = f.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), summary.Written)
}

func TestStandingsFetcherSkipPolicy(t *testing.T) {
	_, repos := newTestRepos(t)
	seedUsers(t, repos, "alice", "bob")
	seedContest(t, repos, 158, "Round 158")

	api := &fakeAPI{
		standings: func(contestID int) (*cfapi.Standings, error) {
			return &cfapi.Standings{
				Problems: []cfapi.Problem{{Index: "A", Name: "Alpha", Tags: []string{"dp", "math"}}},
				Rows: []cfapi.RanklistRow{
					{Party: cfapi.Party{Members: []cfapi.Member{{Handle: "alice"}, {Handle: "bob"}}, ParticipantType: "CONTESTANT"}, Rank: 1},
					{Party: cfapi.Party{Members: nil, ParticipantType: "CONTESTANT", Ghost: true}, Rank: 2},
					{Party: cfapi.Party{Members: []cfapi.Member{{Handle: "r_hero"}}, ParticipantType: "CONTESTANT"}, Rank: 3},
					{Party: cfapi.Party{Members: []cfapi.Member{{Handle: "stranger"}}, ParticipantType: "CONTESTANT"}, Rank: 4},
					{
						Party:          cfapi.Party{Members: []cfapi.Member{{Handle: "alice"}}, ParticipantType: "CONTESTANT"},
						Rank:           5,
						ProblemResults: []cfapi.ProblemResult{{Points: 0, RejectedAttemptCount: 0}},
					},
				},
			}, nil
		},
	}
	f := NewStandingsFetcher(api, repos, 100)

	summary, err := f.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, summary.SkippedTeams)
	assert.Equal(t, 1, summary.SkippedGhosts)
	assert.Equal(t, 1, summary.SkippedKnownDuplicates)
	assert.Equal(t, 1, summary.SkippedUnrated)
	assert.Equal(t, 1, summary.SkippedNoAttempt)
	assert.Equal(t, 1, summary.CompletedContests)

	rowCount, err := repos.Standings.CountRows(context.Background(), 158)
	require.NoError(t, err)
	assert.Equal(t, int64(1), rowCount)

	// Contest problems committed, so the contest is complete and the
	// upstream is not consulted again.
	api.standings = func(contestID int) (*cfapi.Standings, error) {
		t.Fatal("standings fetched for a completed contest")
		return nil, nil
	}
	summary, err = f.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, summary.CompletedContests)
}

func TestStandingsFetcherUnexpectedDuplicateFatal(t *testing.T) {
	_, repos := newTestRepos(t)
	seedUsers(t, repos, "alice")
	seedContest(t, repos, 500, "Round 500")

	api := &fakeAPI{
		standings: func(contestID int) (*cfapi.Standings, error) {
			return &cfapi.Standings{
				Rows: []cfapi.RanklistRow{
					{Party: cfapi.Party{Members: []cfapi.Member{{Handle: "alice"}}, ParticipantType: "CONTESTANT"}, Rank: 1},
					{Party: cfapi.Party{Members: []cfapi.Member{{Handle: "alice"}}, ParticipantType: "VIRTUAL"}, Rank: 2},
				},
			}, nil
		},
	}
	_, err := NewStandingsFetcher(api, repos, 100).Run(context.Background())
	require.ErrorIs(t, err, ErrIntegrity)
}

func TestStandingsFetcherNonContestantRowFatal(t *testing.T) {
	_, repos := newTestRepos(t)
	seedUsers(t, repos, "alice")
	seedContest(t, repos, 501, "Round 501")

	api := &fakeAPI{
		standings: func(contestID int) (*cfapi.Standings, error) {
			return &cfapi.Standings{
				Rows: []cfapi.RanklistRow{
					{Party: cfapi.Party{Members: []cfapi.Member{{Handle: "alice"}}, ParticipantType: "VIRTUAL"}, Rank: 1},
				},
			}, nil
		},
	}
	_, err := NewStandingsFetcher(api, repos, 100).Run(context.Background())
	require.ErrorIs(t, err, ErrIntegrity)
	assert.Contains(t, err.Error(), "VIRTUAL")
}

func TestStandingsFetcherBenignErrorSkipsContest(t *testing.T) {
	_, repos := newTestRepos(t)
	seedContest(t, repos, 9, "Round 9")

	api := &fakeAPI{
		standings: func(contestID int) (*cfapi.Standings, error) {
			return nil, &cfapi.UpstreamError{Method: "contest.standings", Comment: "contestId: Contest with id 9 has not started"}
		},
	}
	summary, err := NewStandingsFetcher(api, repos, 100).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, summary.SkippedContests)
	assert.Equal(t, 0, summary.CompletedContests)
}

func TestHacksFetcherSkipPolicy(t *testing.T) {
	db, repos := newTestRepos(t)
	seedUsers(t, repos, "alice", "bob")
	seedContest(t, repos, 20, "Round 20")
	seedContestProblem(t, db, 20, "A")

	api := &fakeAPI{
		hacks: func(contestID int) ([]cfapi.Hack, error) {
			return []cfapi.Hack{
				{
					ID:       1,
					Hacker:   cfapi.Party{Members: []cfapi.Member{{Handle: "alice"}}},
					Defender: cfapi.Party{Members: []cfapi.Member{{Handle: "bob"}}},
					Verdict:  "HACK_SUCCESSFUL",
					Problem:  cfapi.Problem{Index: "A"},
				},
				{
					ID:       2,
					Hacker:   cfapi.Party{Members: []cfapi.Member{{Handle: "alice"}}},
					Defender: cfapi.Party{Members: []cfapi.Member{{Handle: "stranger"}}},
					Verdict:  "HACK_UNSUCCESSFUL",
					Problem:  cfapi.Problem{Index: "A"},
				},
				{
					ID:       3,
					Hacker:   cfapi.Party{Members: []cfapi.Member{{Handle: "alice"}}},
					Defender: cfapi.Party{Members: []cfapi.Member{{Handle: "bob"}}},
					Verdict:  "HACK_UNSUCCESSFUL",
					Problem:  cfapi.Problem{Index: "Z"},
				},
			}, nil
		},
	}
	summary, err := NewHacksFetcher(api, repos).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), summary.Written)
	assert.Equal(t, 1, summary.SkippedUnrated)
	assert.Equal(t, 1, summary.SkippedUnknownProblems)
}

func TestRatingChangesFetcherKnownDuplicate(t *testing.T) {
	_, repos := newTestRepos(t)
	seedUsers(t, repos, "kasim", "alice")
	seedContest(t, repos, 447, "Round 447")

	api := &fakeAPI{
		ratingChanges: func(contestID int) ([]cfapi.RatingChange, error) {
			return []cfapi.RatingChange{
				{ContestID: 447, Handle: "kasim", OldRating: 1500, NewRating: 1550},
				{ContestID: 447, Handle: "kasim", OldRating: 1500, NewRating: 1550},
				{ContestID: 447, Handle: "alice", OldRating: 1600, NewRating: 1600},
				{ContestID: 447, Handle: "stranger", OldRating: 0, NewRating: 1400},
			}, nil
		},
	}
	summary, err := NewRatingChangesFetcher(api, repos).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), summary.Written)
	assert.Equal(t, 1, summary.SkippedKnownDuplicates)
	assert.Equal(t, 1, summary.SkippedUnrated)
}

func TestRatingChangesFetcherUnexpectedDuplicateFatal(t *testing.T) {
	_, repos := newTestRepos(t)
	seedUsers(t, repos, "alice")
	seedContest(t, repos, 900, "Round 900")

	api := &fakeAPI{
		ratingChanges: func(contestID int) ([]cfapi.RatingChange, error) {
			return []cfapi.RatingChange{
				{ContestID: 900, Handle: "alice"},
				{ContestID: 900, Handle: "alice"},
			}, nil
		},
	}
	_, err := NewRatingChangesFetcher(api, repos).Run(context.Background())
	require.ErrorIs(t, err, ErrIntegrity)
}

func submissionPage(ids ...int64) []cfapi.Submission {
	page := make([]cfapi.Submission, 0, len(ids))
	for _, id := range ids {
		page = append(page, cfapi.Submission{
			ID:      id,
			Problem: cfapi.Problem{Index: "A"},
			Author:  cfapi.Party{Members: []cfapi.Member{{Handle: "alice"}}, ParticipantType: "CONTESTANT"},
			Verdict: "OK",
			Testset: "TESTS",
		})
	}
	return page
}

func TestSubmissionsFetcherPageOverlapDedup(t *testing.T) {
	db, repos := newTestRepos(t)
	seedUsers(t, repos, "alice")
	seedContest(t, repos, 42, "Round 42")
	seedContestProblem(t, db, 42, "A")

	// Offsets shift upstream while paginating, so page two re-serves ID 2.
	pages := map[int][]cfapi.Submission{
		1: submissionPage(1, 2),
		3: submissionPage(2, 3),
		5: submissionPage(4),
	}
	api := &fakeAPI{
		status: func(contestID, from, count int) ([]cfapi.Submission, error) {
			return pages[from], nil
		},
	}
	store := newMemStore()
	f := NewSubmissionsFetcher(api, repos, store, 2, 100)

	summary, err := f.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(4), summary.Written)
	assert.Equal(t, 1, summary.CompletedContests)
	assert.Equal(t, 3, api.statusCalls)

	count, err := repos.Submissions.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(4), count)

	// Staging is drained after the commit.
	staged, err := store.Count(context.Background(), 42)
	require.NoError(t, err)
	assert.Zero(t, staged)

	// Committed contests are skipped without touching the upstream.
	api.statusCalls = 0
	_, err = f.Run(context.Background())
	require.NoError(t, err)
	assert.Zero(t, api.statusCalls)
}

func TestSubmissionsFetcherWipesPartialStaging(t *testing.T) {
	db, repos := newTestRepos(t)
	seedUsers(t, repos, "alice")
	seedContest(t, repos, 42, "Round 42")
	cpID := seedContestProblem(t, db, 42, "A")

	store := newMemStore()
	// Staged rows without a done marker are from an interrupted run and
	// cannot be trusted.
	stale := models.Submission{
		ID: 999, ContestID: 42, ContestProblemID: cpID, AuthorID: 1,
		ParticipantType: models.ParticipantContestant,
		Verdict:         models.VerdictOK, Testset: models.TestsetTests,
	}
	require.NoError(t, store.Append(context.Background(), 42, []models.Submission{stale}))

	api := &fakeAPI{
		status: func(contestID, from, count int) ([]cfapi.Submission, error) {
			return submissionPage(1), nil
		},
	}
	f := NewSubmissionsFetcher(api, repos, store, 2, 100)

	summary, err := f.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), summary.Written)

	count, err := repos.Submissions.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	has, err := repos.Submissions.HasRows(context.Background(), 42)
	require.NoError(t, err)
	assert.True(t, has)
}

func TestSubmissionsFetcherCommitsDoneStaging(t *testing.T) {
	db, repos := newTestRepos(t)
	seedUsers(t, repos, "alice")
	seedContest(t, repos, 42, "Round 42")
	cpID := seedContestProblem(t, db, 42, "A")

	store := newMemStore()
	staged := models.Submission{
		ID: 7, ContestID: 42, ContestProblemID: cpID, AuthorID: 1,
		ParticipantType: models.ParticipantContestant,
		Verdict:         models.VerdictOK, Testset: models.TestsetTests,
	}
	require.NoError(t, store.Append(context.Background(), 42, []models.Submission{staged}))
	require.NoError(t, store.MarkDone(context.Background(), 42))

	f := NewSubmissionsFetcher(&fakeAPI{}, repos, store, 2, 100)
	summary, err := f.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), summary.Written)

	count, err := repos.Submissions.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestSubmissionsFetcherRecommitsAfterPartialCommit(t *testing.T) {
	db, repos := newTestRepos(t)
	seedUsers(t, repos, "alice")
	seedContest(t, repos, 42, "Round 42")
	cpID := seedContestProblem(t, db, 42, "A")

	// A previous run crashed between commit chunks: one row landed in the
	// store, the full done buffer is still staged.
	staged := []models.Submission{
		{ID: 7, ContestID: 42, ContestProblemID: cpID, AuthorID: 1,
			ParticipantType: models.ParticipantContestant,
			Verdict:         models.VerdictOK, Testset: models.TestsetTests},
		{ID: 8, ContestID: 42, ContestProblemID: cpID, AuthorID: 1,
			ParticipantType: models.ParticipantContestant,
			Verdict:         models.VerdictWrongAnswer, Testset: models.TestsetTests},
	}
	store := newMemStore()
	require.NoError(t, store.Append(context.Background(), 42, staged))
	require.NoError(t, store.MarkDone(context.Background(), 42))

	partial := staged[:1]
	_, err := repos.Submissions.InsertChunked(context.Background(), partial, 100)
	require.NoError(t, err)

	api := &fakeAPI{}
	f := NewSubmissionsFetcher(api, repos, store, 2, 100)
	summary, err := f.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), summary.Written)
	assert.Zero(t, api.statusCalls)

	count, err := repos.Submissions.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	remaining, err := store.Count(context.Background(), 42)
	require.NoError(t, err)
	assert.Zero(t, remaining)
}

func TestSubmissionsFetcherDrainsStrayStagingOfCommittedContest(t *testing.T) {
	db, repos := newTestRepos(t)
	seedUsers(t, repos, "alice")
	seedContest(t, repos, 42, "Round 42")
	cpID := seedContestProblem(t, db, 42, "A")

	committed := models.Submission{
		ID: 7, ContestID: 42, ContestProblemID: cpID, AuthorID: 1,
		ParticipantType: models.ParticipantContestant,
		Verdict:         models.VerdictOK, Testset: models.TestsetTests,
	}
	_, err := repos.Submissions.InsertChunked(context.Background(), []models.Submission{committed}, 100)
	require.NoError(t, err)

	// Stray rows without a done marker, left by a run that crashed after
	// its commit. The contest stays committed; the keys must not leak.
	store := newMemStore()
	require.NoError(t, store.Append(context.Background(), 42, []models.Submission{committed}))

	api := &fakeAPI{}
	summary, err := NewSubmissionsFetcher(api, repos, store, 2, 100).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), summary.Written)
	assert.Zero(t, api.statusCalls)

	count, err := repos.Submissions.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	remaining, err := store.Count(context.Background(), 42)
	require.NoError(t, err)
	assert.Zero(t, remaining)
}

func TestSubmissionsFetcherBenignErrorMidFetch(t *testing.T) {
	db, repos := newTestRepos(t)
	seedUsers(t, repos, "alice")
	seedContest(t, repos, 42, "Round 42")
	seedContestProblem(t, db, 42, "A")

	store := newMemStore()
	api := &fakeAPI{
		status: func(contestID, from, count int) ([]cfapi.Submission, error) {
			if from == 1 {
				return submissionPage(1, 2), nil
			}
			return nil, &cfapi.UpstreamError{Method: "contest.status", Comment: "contestId: Contest with id 42 not found"}
		},
	}
	f := NewSubmissionsFetcher(api, repos, store, 2, 100)

	summary, err := f.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, summary.SkippedContests)
	assert.Equal(t, int64(0), summary.Written)

	staged, err := store.Count(context.Background(), 42)
	require.NoError(t, err)
	assert.Zero(t, staged)
}

func TestSubmissionsFetcherSkipCounters(t *testing.T) {
	db, repos := newTestRepos(t)
	seedUsers(t, repos, "alice")
	seedContest(t, repos, 42, "Round 42")
	seedContestProblem(t, db, 42, "A")

	api := &fakeAPI{
		status: func(contestID, from, count int) ([]cfapi.Submission, error) {
			return []cfapi.Submission{
				{ID: 1, Problem: cfapi.Problem{Index: "A"}, Author: cfapi.Party{Members: []cfapi.Member{{Handle: "alice"}, {Handle: "bob"}}, ParticipantType: "CONTESTANT"}, Verdict: "OK", Testset: "TESTS"},
				{ID: 2, Problem: cfapi.Problem{Index: "A"}, Author: cfapi.Party{ParticipantType: "CONTESTANT", Ghost: true}, Verdict: "OK", Testset: "TESTS"},
				{ID: 3, Problem: cfapi.Problem{Index: "A"}, Author: cfapi.Party{Members: []cfapi.Member{{Handle: "stranger"}}, ParticipantType: "CONTESTANT"}, Verdict: "OK", Testset: "TESTS"},
				{ID: 4, Problem: cfapi.Problem{Index: "Z"}, Author: cfapi.Party{Members: []cfapi.Member{{Handle: "alice"}}, ParticipantType: "CONTESTANT"}, Verdict: "OK", Testset: "TESTS"},
				{ID: 5, Problem: cfapi.Problem{Index: "A"}, Author: cfapi.Party{Members: []cfapi.Member{{Handle: "alice"}}, ParticipantType: "PRACTICE"}, Verdict: "WRONG_ANSWER", Testset: "PRETESTS"},
			}, nil
		},
	}
	store := newMemStore()
	summary, err := NewSubmissionsFetcher(api, repos, store, 100, 100).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), summary.Written)
	assert.Equal(t, 1, summary.SkippedTeams)
	assert.Equal(t, 1, summary.SkippedGhosts)
	assert.Equal(t, 1, summary.SkippedUnrated)
	assert.Equal(t, 1, summary.SkippedUnknownProblems)
}
