package database

import (
	"context"
	"fmt"

	"cfachievements/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type StandingsRepository struct {
	db *GormDB
}

func NewStandingsRepository(db *GormDB) *StandingsRepository {
	return &StandingsRepository{db: db}
}

// IndexedProblem pairs a problem with its contest-local index label.
type IndexedProblem struct {
	Problem models.Problem
	Index   string
}

// StandingsInsert is one contest's worth of standings rows, decoded and
// filtered by the fetcher.
type StandingsInsert struct {
	Contest  models.Contest
	Problems []IndexedProblem
	Rows     []models.RanklistRow
	Results  []models.ProblemResult
}

type StandingsCounts struct {
	Problems        int64
	ContestProblems int64
	RanklistRows    int64
	ProblemResults  int64
}

// SaveContestStandings commits one contest's problems, contest problems,
// ranklist rows and problem results in a single transaction. Problems are
// de-duplicated on (name, contest start time) across mirrored contests.
func (r *StandingsRepository) SaveContestStandings(ctx context.Context, ins StandingsInsert, batchSize int) (StandingsCounts, error) {
	var counts StandingsCounts

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range ins.Problems {
			p := ins.Problems[i].Problem
			res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&p)
			if res.Error != nil {
				return fmt.Errorf("insert problem %q: %w", p.Name, res.Error)
			}
			counts.Problems += res.RowsAffected
		}

		for i := range ins.Problems {
			var problem models.Problem
			err := tx.First(&problem,
				"name = ? AND contest_start_time = ?",
				ins.Problems[i].Problem.Name, ins.Problems[i].Problem.ContestStartTime).Error
			if err != nil {
				return fmt.Errorf("resolve problem %q: %w", ins.Problems[i].Problem.Name, err)
			}

			cp := models.ContestProblem{
				ContestID: ins.Contest.ID,
				Index:     ins.Problems[i].Index,
				ProblemID: problem.ID,
			}
			if err := tx.Create(&cp).Error; err != nil {
				return fmt.Errorf("insert contest problem %s: %w", cp.Index, err)
			}
			counts.ContestProblems++
		}

		if len(ins.Rows) > 0 {
			res := tx.CreateInBatches(ins.Rows, batchSize)
			if res.Error != nil {
				return fmt.Errorf("insert ranklist rows: %w", res.Error)
			}
			counts.RanklistRows = res.RowsAffected
		}

		if len(ins.Results) > 0 {
			res := tx.CreateInBatches(ins.Results, batchSize)
			if res.Error != nil {
				return fmt.Errorf("insert problem results: %w", res.Error)
			}
			counts.ProblemResults = res.RowsAffected
		}

		return nil
	})
	if err != nil {
		return StandingsCounts{}, err
	}
	return counts, nil
}

// RowsAtRank returns every ranklist row at the given rank, with users
// preloaded, in insertion order. Contests where more than maxWinners rows
// share rank 1 are excluded entirely.
func (r *StandingsRepository) RowsAtRank(ctx context.Context, rank, maxWinners int) ([]models.RanklistRow, error) {
	wideTies := r.db.DB.Model(&models.RanklistRow{}).
		Select("contest_id").
		Where("rank = ?", 1).
		Group("contest_id").
		Having("COUNT(1) > ?", maxWinners)

	var rows []models.RanklistRow
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("rank = ?", rank).
		Where("contest_id NOT IN (?)", wideTies).
		Order("id").
		Find(&rows).Error
	return rows, err
}

func (r *StandingsRepository) CountRows(ctx context.Context, contestID int) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.RanklistRow{}).
		Where("contest_id = ?", contestID).
		Count(&count).Error
	return count, err
}
