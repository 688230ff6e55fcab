package repository

import (
	"context"

	"kehilla/internal/cache"
	"kehilla/internal/models"

	"gorm.io/gorm"
)

// FollowRepository defines persistence operations for the follow graph.
type FollowRepository interface {
	Toggle(ctx context.Context, followerID, followingID uint) (bool, error)
	IsFollowing(ctx context.Context, followerID, followingID uint) (bool, error)
}

type followRepository struct {
	db *gorm.DB
}

// NewFollowRepository returns a new FollowRepository implementation.
func NewFollowRepository(db *gorm.DB) FollowRepository {
	return &followRepository{db: db}
}

// Toggle flips the follow edge and returns the resulting state. Both users'
// counters move with the edge inside one transaction.
func (r *followRepository) Toggle(ctx context.Context, followerID, followingID uint) (bool, error) {
	var following bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Exec(
			`INSERT INTO follows (follower_id, following_id, created_at)
			 VALUES (?, ?, CURRENT_TIMESTAMP)
			 ON CONFLICT (follower_id, following_id) DO NOTHING`,
			followerID, followingID,
		)
		if res.Error != nil {
			return res.Error
		}

		delta := 1
		following = res.RowsAffected > 0
		if !following {
			delta = -1
			del := tx.Exec(
				`DELETE FROM follows WHERE follower_id = ? AND following_id = ?`,
				followerID, followingID,
			)
			if del.Error != nil {
				return del.Error
			}
			// A zero-row delete means a concurrent toggle removed the edge
			// after our insert saw it. That transaction owns the counter
			// move; touching the counters here would double-decrement.
			if del.RowsAffected == 0 {
				return nil
			}
		}

		if err := tx.Model(&models.User{}).
			Where("id = ?", followingID).
			UpdateColumn("followers", gorm.Expr("followers + ?", delta)).Error; err != nil {
			return err
		}
		return tx.Model(&models.User{}).
			Where("id = ?", followerID).
			UpdateColumn("following", gorm.Expr("following + ?", delta)).Error
	})
	if err != nil {
		return false, models.NewInternalError(err)
	}
	cache.Delete(ctx, cache.UserKey(followerID), cache.UserKey(followingID))
	return following, nil
}

func (r *followRepository) IsFollowing(ctx context.Context, followerID, followingID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Follow{}).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}
