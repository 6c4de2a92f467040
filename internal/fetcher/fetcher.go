// Package fetcher implements the resumable ingestion routines, one per
// entity family. Every fetcher is idempotent when re-invoked: completed work
// is detected through the store and skipped, anything partial is redone.
package fetcher

import (
	"context"
	"errors"
	"log"

	"cfachievements/internal/cfapi"

	"github.com/google/uuid"
)

// API is the slice of the upstream client the fetchers consume.
type API interface {
	RatedUsers(ctx context.Context, activeOnly bool) ([]cfapi.RatedUser, error)
	ContestList(ctx context.Context) ([]cfapi.Contest, error)
	Standings(ctx context.Context, contestID int) (*cfapi.Standings, error)
	Hacks(ctx context.Context, contestID int) ([]cfapi.Hack, error)
	RatingChanges(ctx context.Context, contestID int) ([]cfapi.RatingChange, error)
	Status(ctx context.Context, contestID, from, count int) ([]cfapi.Submission, error)
}

// ErrIntegrity marks an unexpected duplicate key that is not on the known
// allow-list. It is fatal to the entity family's run and never coerced.
var ErrIntegrity = errors.New("integrity violation")

// Summary counts rows written and rows skipped per reason for one ingestion
// phase. Logged once at the end of the phase.
type Summary struct {
	RunID                  uuid.UUID
	Phase                  string
	Written                int64
	Updated                int64
	SkippedTeams           int
	SkippedGhosts          int
	SkippedUnrated         int
	SkippedKnownDuplicates int
	SkippedNoAttempt       int
	SkippedUnknownProblems int
	SkippedContests        int
	CompletedContests      int
}

func NewSummary(phase string) *Summary {
	return &Summary{RunID: uuid.New(), Phase: phase}
}

func (s *Summary) Log() {
	log.Printf("[%s] run %s: written=%d updated=%d contests done=%d skipped=%d | rows skipped: teams=%d ghosts=%d unrated=%d known-dups=%d no-attempt=%d unknown-problem=%d",
		s.Phase, s.RunID, s.Written, s.Updated, s.CompletedContests, s.SkippedContests,
		s.SkippedTeams, s.SkippedGhosts, s.SkippedUnrated, s.SkippedKnownDuplicates,
		s.SkippedNoAttempt, s.SkippedUnknownProblems)
}

type contestHandle struct {
	contestID int
	handle    string
}

// knownStandingsDuplicates lists (contest, handle) pairs that appear twice
// in upstream ranklists. A real data quirk, tolerated; any other duplicate
// is an integrity violation.
var knownStandingsDuplicates = map[contestHandle]bool{
	{158, "r_hero"}:        true,
	{158, "hashlife"}:      true,
	{172, "pepela"}:        true,
	{447, "kasim"}:         true,
	{472, "yuki2006"}:      true,
	{472, "a00920"}:        true,
	{615, "InnocentFool"}:  true,
	{615, "elgris"}:        true,
	{615, "mohamedazab"}:   true,
	{615, "Altitude"}:      true,
	{616, "shankhs"}:       true,
}

// knownRatingChangeDuplicates is the same quirk in rating change listings.
var knownRatingChangeDuplicates = map[contestHandle]bool{
	{447, "kasim"}:        true,
	{472, "a00920"}:       true,
	{472, "yuki2006"}:     true,
	{615, "Altitude"}:     true,
	{615, "InnocentFool"}: true,
	{615, "bohuss"}:       true,
	{615, "elgris"}:       true,
	{615, "mohamedazab"}:  true,
}
