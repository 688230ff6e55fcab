// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"
	"errors"

	"kehilla/internal/cache"
	"kehilla/internal/models"

	"gorm.io/gorm"
)

// PostRepository defines the interface for post data operations
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id uint) (*models.Post, error)
	ListFeed(ctx context.Context, authorID uint, limit, offset int) ([]*models.Post, error)
	ToggleLike(ctx context.Context, userID, postID uint) (bool, error)
	IsLiked(ctx context.Context, userID, postID uint) (bool, error)
}

// postRepository implements PostRepository
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

// Create inserts the post and bumps the author's posts_count inside one
// transaction so the counter never drifts from the row count.
func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(post).Error; err != nil {
			return err
		}
		return tx.Model(&models.User{}).
			Where("id = ?", post.UserID).
			UpdateColumn("posts_count", gorm.Expr("posts_count + ?", 1)).Error
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	cache.Delete(ctx, cache.FeedKey, cache.UserKey(post.UserID))
	return nil
}

func (r *postRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	if err := r.db.WithContext(ctx).First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post")
		}
		return nil, models.NewInternalError(err)
	}
	return &post, nil
}

// ListFeed returns posts newest first with author and ordered comments
// attached via batch preloads. authorID of zero means all authors.
func (r *postRepository) ListFeed(ctx context.Context, authorID uint, limit, offset int) ([]*models.Post, error) {
	var posts []*models.Post
	q := r.db.WithContext(ctx).
		Preload("User").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("comments.created_at ASC")
		}).
		Preload("Comments.User").
		Order("posts.created_at DESC").
		Limit(limit).
		Offset(offset)
	if authorID != 0 {
		q = q.Where("user_id = ?", authorID)
	}
	if err := q.Find(&posts).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

// ToggleLike flips the (post, user) like membership and returns the resulting
// state. The insert uses ON CONFLICT DO NOTHING so concurrent toggles for the
// same pair cannot produce duplicates; the likes counter moves in the same
// transaction as the row.
func (r *postRepository) ToggleLike(ctx context.Context, userID, postID uint) (bool, error) {
	var liked bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Exec(
			`INSERT INTO likes (post_id, user_id, created_at)
			 VALUES (?, ?, CURRENT_TIMESTAMP)
			 ON CONFLICT (post_id, user_id) DO NOTHING`,
			postID, userID,
		)
		if res.Error != nil {
			return res.Error
		}

		if res.RowsAffected > 0 {
			liked = true
			return tx.Model(&models.Post{}).
				Where("id = ?", postID).
				UpdateColumn("likes", gorm.Expr("likes + ?", 1)).Error
		}

		liked = false
		del := tx.Exec(
			`DELETE FROM likes WHERE post_id = ? AND user_id = ?`,
			postID, userID,
		)
		if del.Error != nil {
			return del.Error
		}
		// A zero-row delete means a concurrent unlike won the race after our
		// insert saw the row. That transaction owns the counter move.
		if del.RowsAffected == 0 {
			return nil
		}
		return tx.Model(&models.Post{}).
			Where("id = ?", postID).
			UpdateColumn("likes", gorm.Expr("likes - ?", 1)).Error
	})
	if err != nil {
		return false, models.NewInternalError(err)
	}
	cache.Delete(ctx, cache.FeedKey)
	return liked, nil
}

func (r *postRepository) IsLiked(ctx context.Context, userID, postID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Like{}).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}
