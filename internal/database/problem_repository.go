package database

import (
	"context"

	"cfachievements/internal/models"
)

type ProblemRepository struct {
	db *GormDB
}

func NewProblemRepository(db *GormDB) *ProblemRepository {
	return &ProblemRepository{db: db}
}

// HasContestProblems reports whether standings ingestion already committed
// rows for the contest. Serves as the contest-level completion marker.
func (r *ProblemRepository) HasContestProblems(ctx context.Context, contestID int) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.ContestProblem{}).
		Where("contest_id = ?", contestID).
		Limit(1).
		Count(&count).Error
	return count > 0, err
}

// ContestProblemIndexMap returns index label -> contest problem ID for one
// contest. Hack and submission ingestion resolve problem references with it.
func (r *ProblemRepository) ContestProblemIndexMap(ctx context.Context, contestID int) (map[string]uint, error) {
	var rows []models.ContestProblem
	err := r.db.WithContext(ctx).
		Where("contest_id = ?", contestID).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	m := make(map[string]uint, len(rows))
	for _, row := range rows {
		m[row.Index] = row.ID
	}
	return m, nil
}

func (r *ProblemRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Problem{}).Count(&count).Error
	return count, err
}
