package database

import (
	"context"

	"cfachievements/internal/models"
)

type RatingChangeRepository struct {
	db *GormDB
}

func NewRatingChangeRepository(db *GormDB) *RatingChangeRepository {
	return &RatingChangeRepository{db: db}
}

// HasRows is the contest-level completion marker for rating change
// ingestion; same retry asymmetry as hacks for contests with no changes.
func (r *RatingChangeRepository) HasRows(ctx context.Context, contestID int) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.RatingChange{}).
		Where("contest_id = ?", contestID).
		Limit(1).
		Count(&count).Error
	return count > 0, err
}

func (r *RatingChangeRepository) Insert(ctx context.Context, changes []models.RatingChange) (int64, error) {
	if len(changes) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).Create(&changes)
	return res.RowsAffected, res.Error
}

// ZeroDelta returns rating changes where the rating did not move, users
// preloaded, in insertion order.
func (r *RatingChangeRepository) ZeroDelta(ctx context.Context) ([]models.RatingChange, error) {
	var changes []models.RatingChange
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("old_rating = new_rating").
		Order("id").
		Find(&changes).Error
	return changes, err
}
