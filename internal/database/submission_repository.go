package database

import (
	"context"
	"fmt"

	"cfachievements/internal/models"

	"gorm.io/gorm"
)

type SubmissionRepository struct {
	db *GormDB
}

func NewSubmissionRepository(db *GormDB) *SubmissionRepository {
	return &SubmissionRepository{db: db}
}

// HasRows is the contest-level completion marker for submission ingestion.
func (r *SubmissionRepository) HasRows(ctx context.Context, contestID int) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Submission{}).
		Where("contest_id = ?", contestID).
		Limit(1).
		Count(&count).Error
	return count > 0, err
}

// InsertChunked writes submissions in chunks, one transaction per chunk.
// Chunks bound peak memory on very large contests; a crash between chunks is
// recovered by wiping and restarting the contest, not by resuming.
func (r *SubmissionRepository) InsertChunked(ctx context.Context, subs []models.Submission, chunkSize int) (int64, error) {
	var written int64
	for start := 0; start < len(subs); start += chunkSize {
		end := start + chunkSize
		if end > len(subs) {
			end = len(subs)
		}
		chunk := subs[start:end]
		err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			res := tx.Create(&chunk)
			if res.Error != nil {
				return res.Error
			}
			written += res.RowsAffected
			return nil
		})
		if err != nil {
			return written, fmt.Errorf("insert submissions chunk [%d:%d]: %w", start, end, err)
		}
	}
	return written, nil
}

// DeleteByContest wipes a contest's submissions so a partially ingested
// contest can restart from offset zero.
func (r *SubmissionRepository) DeleteByContest(ctx context.Context, contestID int) error {
	return r.db.WithContext(ctx).
		Where("contest_id = ?", contestID).
		Delete(&models.Submission{}).Error
}

// FailedSystests returns CONTESTANT submissions that failed the TESTS
// testset in contests that have PRETESTS submissions, authors preloaded, in
// insertion order. Contests without any pretest submissions are assumed to
// have no pretests at all.
func (r *SubmissionRepository) FailedSystests(ctx context.Context) ([]models.Submission, error) {
	withPretests := r.db.DB.Model(&models.Submission{}).
		Select("contest_id").
		Where("testset = ?", models.TestsetPretests)

	var subs []models.Submission
	err := r.db.WithContext(ctx).
		Preload("Author").
		Where("contest_id IN (?)", withPretests).
		Where("participant_type = ?", models.ParticipantContestant).
		Where("verdict <> ?", models.VerdictOK).
		Where("testset = ?", models.TestsetTests).
		Order("id").
		Find(&subs).Error
	return subs, err
}

func (r *SubmissionRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Submission{}).Count(&count).Error
	return count, err
}
