package database

import (
	"context"

	"cfachievements/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ContestRepository struct {
	db *GormDB
}

func NewContestRepository(db *GormDB) *ContestRepository {
	return &ContestRepository{db: db}
}

// InsertIgnoringDuplicates inserts contests that are not yet present.
// Contests are immutable once written, so re-runs are no-ops.
func (r *ContestRepository) InsertIgnoringDuplicates(ctx context.Context, contests []models.Contest) (int64, error) {
	if len(contests) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&contests)
	return res.RowsAffected, res.Error
}

func (r *ContestRepository) ListAll(ctx context.Context) ([]models.Contest, error) {
	var contests []models.Contest
	err := r.db.WithContext(ctx).Order("id").Find(&contests).Error
	return contests, err
}

func (r *ContestRepository) Get(ctx context.Context, id int) (*models.Contest, error) {
	var contest models.Contest
	err := r.db.WithContext(ctx).First(&contest, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &contest, nil
}

func (r *ContestRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Contest{}).Count(&count).Error
	return count, err
}
