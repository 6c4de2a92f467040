package database

import (
	"context"
	"time"

	"cfachievements/internal/models"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *GormDB
}

func NewUserRepository(db *GormDB) *UserRepository {
	return &UserRepository{db: db}
}

// UpsertRatedUsers inserts users whose handle is new and updates the mutable
// fields of users already present. Runs as a single transaction so a failed
// run leaves the user table untouched.
func (r *UserRepository) UpsertRatedUsers(ctx context.Context, users []models.User, batchSize int) (inserted, updated int64, err error) {
	existing, err := r.HandleMap(ctx)
	if err != nil {
		return 0, 0, err
	}

	var toInsert []models.User
	var toUpdate []models.User
	for _, u := range users {
		if id, ok := existing[u.Handle]; ok {
			u.ID = id
			toUpdate = append(toUpdate, u)
		} else {
			toInsert = append(toInsert, u)
		}
	}

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(toInsert) > 0 {
			res := tx.CreateInBatches(toInsert, batchSize)
			if res.Error != nil {
				return res.Error
			}
			inserted = res.RowsAffected
		}
		for i := range toUpdate {
			u := &toUpdate[i]
			res := tx.Model(&models.User{}).Where("id = ?", u.ID).Updates(map[string]interface{}{
				"contribution":      u.Contribution,
				"rank":              u.Rank,
				"rating":            u.Rating,
				"max_rank":          u.MaxRank,
				"max_rating":        u.MaxRating,
				"last_online_time":  u.LastOnlineTime,
				"registration_time": u.RegistrationTime,
				"friend_of_count":   u.FriendOfCount,
			})
			if res.Error != nil {
				return res.Error
			}
			updated += res.RowsAffected
		}
		return nil
	})
	if err != nil {
		return 0, 0, err
	}
	return inserted, updated, nil
}

// HandleMap returns handle -> user ID for every known user. Fetchers use it
// to resolve authors without one query per row.
func (r *UserRepository) HandleMap(ctx context.Context) (map[string]uint, error) {
	var users []models.User
	err := r.db.WithContext(ctx).Select("id", "handle").Find(&users).Error
	if err != nil {
		return nil, err
	}
	m := make(map[string]uint, len(users))
	for _, u := range users {
		m[u.Handle] = u.ID
	}
	return m, nil
}

func (r *UserRepository) GetByHandle(ctx context.Context, handle string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).First(&user, "handle = ?", handle).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.User{}).Count(&count).Error
	return count, err
}

// ByContributionRange returns users with min <= contribution < maxExclusive.
// A maxExclusive of zero or less means no upper bound.
func (r *UserRepository) ByContributionRange(ctx context.Context, min, maxExclusive int) ([]models.User, error) {
	query := r.db.WithContext(ctx).Where("contribution >= ?", min)
	if maxExclusive > 0 {
		query = query.Where("contribution < ?", maxExclusive)
	}
	var users []models.User
	err := query.Order("id").Find(&users).Error
	return users, err
}

func (r *UserRepository) RegisteredAfter(ctx context.Context, t time.Time) ([]models.User, error) {
	var users []models.User
	err := r.db.WithContext(ctx).
		Where("registration_time > ?", t).
		Order("id").
		Find(&users).Error
	return users, err
}

func (r *UserRepository) RegisteredBefore(ctx context.Context, t time.Time) ([]models.User, error) {
	var users []models.User
	err := r.db.WithContext(ctx).
		Where("registration_time < ?", t).
		Order("id").
		Find(&users).Error
	return users, err
}

func (r *UserRepository) ByMinFriendOfCount(ctx context.Context, min int) ([]models.User, error) {
	var users []models.User
	err := r.db.WithContext(ctx).
		Where("friend_of_count >= ?", min).
		Order("id").
		Find(&users).Error
	return users, err
}

func (r *UserRepository) ByRank(ctx context.Context, rank models.Rank) ([]models.User, error) {
	var users []models.User
	err := r.db.WithContext(ctx).
		Where("rank = ?", rank).
		Order("id").
		Find(&users).Error
	return users, err
}

// AtPeakRatingActiveSince returns users currently at their peak rating that
// have a rating change newer than the given time.
func (r *UserRepository) AtPeakRatingActiveSince(ctx context.Context, since time.Time) ([]models.User, error) {
	active := r.db.DB.Model(&models.RatingChange{}).
		Select("user_id").
		Where("update_time > ?", since)

	var users []models.User
	err := r.db.WithContext(ctx).
		Where("rating = max_rating").
		Where("id IN (?)", active).
		Order("id").
		Find(&users).Error
	return users, err
}
