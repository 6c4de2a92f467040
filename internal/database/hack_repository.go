package database

import (
	"context"

	"cfachievements/internal/models"
)

type HackRepository struct {
	db *GormDB
}

func NewHackRepository(db *GormDB) *HackRepository {
	return &HackRepository{db: db}
}

// HasRows is the contest-level completion marker for hack ingestion. A
// contest with genuinely zero hacks never gets marked complete and is
// re-attempted on every run; that asymmetry is intentional.
func (r *HackRepository) HasRows(ctx context.Context, contestID int) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Hack{}).
		Where("contest_id = ?", contestID).
		Limit(1).
		Count(&count).Error
	return count > 0, err
}

func (r *HackRepository) Insert(ctx context.Context, hacks []models.Hack) (int64, error) {
	if len(hacks) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).Create(&hacks)
	return res.RowsAffected, res.Error
}

// ByHackerAndVerdict returns hacks made by the given handle with the given
// verdict, defenders and problems preloaded, in insertion order.
func (r *HackRepository) ByHackerAndVerdict(ctx context.Context, hackerHandle string, verdict models.HackVerdict) ([]models.Hack, error) {
	hacker := r.db.DB.Model(&models.User{}).
		Select("id").
		Where("handle = ?", hackerHandle)

	var hacks []models.Hack
	err := r.db.WithContext(ctx).
		Preload("Defender").
		Preload("ContestProblem").
		Where("hacker_id IN (?)", hacker).
		Where("verdict = ?", verdict).
		Order("id").
		Find(&hacks).Error
	return hacks, err
}

// SuccessfulSelfHacks returns hacks where the hacker successfully hacked
// their own submission.
func (r *HackRepository) SuccessfulSelfHacks(ctx context.Context) ([]models.Hack, error) {
	var hacks []models.Hack
	err := r.db.WithContext(ctx).
		Preload("Hacker").
		Preload("ContestProblem").
		Where("hacker_id = defender_id").
		Where("verdict = ?", models.HackSuccessful).
		Order("id").
		Find(&hacks).Error
	return hacks, err
}
