package service

import (
	"context"
	"strings"

	"kehilla/internal/cache"
	"kehilla/internal/models"
	"kehilla/internal/observability"
	"kehilla/internal/repository"
	"kehilla/internal/validation"
)

// PostService handles post creation, the feed, and like toggles.
type PostService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
}

// CreatePostInput carries the payload for a new post.
type CreatePostInput struct {
	UserID   uint
	Content  string
	Category string
}

// ListFeedInput controls feed pagination and the optional author filter.
type ListFeedInput struct {
	AuthorID uint
	Limit    int
	Offset   int
}

func NewPostService(postRepo repository.PostRepository, userRepo repository.UserRepository) *PostService {
	return &PostService{postRepo: postRepo, userRepo: userRepo}
}

func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	content := strings.TrimSpace(in.Content)
	if content == "" || in.Category == "" {
		return nil, models.NewValidationError("Content and category are required")
	}
	if !validation.ContentLength(content) {
		return nil, models.NewValidationError("Content too long")
	}
	if !validation.ValidCategory(in.Category) {
		return nil, models.NewValidationError("Invalid category")
	}

	post := &models.Post{
		UserID:   in.UserID,
		Content:  content,
		Category: in.Category,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	// Attach the author so the response shape matches feed entries.
	if author, err := s.userRepo.GetByID(ctx, in.UserID); err == nil {
		post.User = *author
	}
	post.Comments = []models.Comment{}
	return post, nil
}

// feedCachePageSize is the only page shape stored under the global feed key.
// The cached entry carries no limit/offset of its own, so serving it for any
// other page size would hand back the wrong number of posts.
const feedCachePageSize = 100

// ListFeed returns the reverse-chronological feed. An AuthorID of zero means
// every author. The default first page of the global feed is served through
// the short lived feed cache; author pages, deeper pages and non-default
// page sizes go straight to the database.
func (s *PostService) ListFeed(ctx context.Context, in ListFeedInput) ([]*models.Post, error) {
	if in.AuthorID != 0 {
		// Author pages for unknown users are a 404, not an empty list.
		if _, err := s.userRepo.GetByID(ctx, in.AuthorID); err != nil {
			return nil, err
		}
	}

	if in.AuthorID != 0 || in.Offset != 0 || in.Limit != feedCachePageSize {
		observability.FeedCacheRequests.WithLabelValues("bypass").Inc()
		return s.postRepo.ListFeed(ctx, in.AuthorID, in.Limit, in.Offset)
	}

	var posts []*models.Post
	if found, err := cache.GetJSON(ctx, cache.FeedKey, &posts); err == nil && found {
		observability.FeedCacheRequests.WithLabelValues("hit").Inc()
		return posts, nil
	}
	observability.FeedCacheRequests.WithLabelValues("miss").Inc()

	posts, err := s.postRepo.ListFeed(ctx, 0, in.Limit, in.Offset)
	if err != nil {
		return nil, err
	}
	_ = cache.SetJSON(ctx, cache.FeedKey, posts, cache.FeedTTL)
	return posts, nil
}

// ToggleLike flips the caller's like on a post and reports the new state.
func (s *PostService) ToggleLike(ctx context.Context, userID, postID uint) (bool, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return false, err
	}
	liked, err := s.postRepo.ToggleLike(ctx, userID, postID)
	if err != nil {
		return false, err
	}
	observability.RecordToggle("like", liked)
	return liked, nil
}
