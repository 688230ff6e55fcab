package service

import (
	"context"

	"kehilla/internal/models"
	"kehilla/internal/observability"
	"kehilla/internal/repository"
)

// UserService handles the member directory and the follow graph.
type UserService struct {
	userRepo   repository.UserRepository
	followRepo repository.FollowRepository
}

func NewUserService(userRepo repository.UserRepository, followRepo repository.FollowRepository) *UserService {
	return &UserService{userRepo: userRepo, followRepo: followRepo}
}

// ListUsers returns the directory ordered by follower count.
func (s *UserService) ListUsers(ctx context.Context, limit, offset int) ([]models.User, error) {
	return s.userRepo.List(ctx, limit, offset)
}

func (s *UserService) GetUser(ctx context.Context, id uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// ToggleFollow flips the caller's follow on the target and reports the new
// state. Self-follows are rejected before any row is touched.
func (s *UserService) ToggleFollow(ctx context.Context, followerID, followingID uint) (bool, error) {
	if followerID == followingID {
		return false, models.NewValidationError("Cannot follow yourself")
	}
	if _, err := s.userRepo.GetByID(ctx, followingID); err != nil {
		return false, err
	}
	following, err := s.followRepo.Toggle(ctx, followerID, followingID)
	if err != nil {
		return false, err
	}
	observability.RecordToggle("follow", following)
	return following, nil
}

// FollowStatus reports whether the caller follows the target.
func (s *UserService) FollowStatus(ctx context.Context, followerID, followingID uint) (bool, error) {
	if _, err := s.userRepo.GetByID(ctx, followingID); err != nil {
		return false, err
	}
	return s.followRepo.IsFollowing(ctx, followerID, followingID)
}
