// Package service contains the application's business logic.
package service

import (
	"context"

	"kehilla/internal/models"
	"kehilla/internal/repository"
	"kehilla/internal/validation"

	"golang.org/x/crypto/bcrypt"
)

// AuthService handles registration and credential checks.
type AuthService struct {
	userRepo repository.UserRepository
}

// RegisterInput carries the signup payload.
type RegisterInput struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Title     string `json:"title"`
	Expertise string `json:"expertise"`
	Bio       string `json:"bio"`
}

// LoginInput carries the login payload.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func NewAuthService(userRepo repository.UserRepository) *AuthService {
	return &AuthService{userRepo: userRepo}
}

// Register creates a new account with a bcrypt-hashed password.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return nil, models.NewValidationError("Name, email, and password are required")
	}

	email := validation.NormalizeEmail(in.Email)
	if !validation.ValidEmail(email) {
		return nil, models.NewValidationError("Invalid email format")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	user := &models.User{
		Name:      in.Name,
		Email:     email,
		Password:  string(hash),
		Title:     in.Title,
		Expertise: in.Expertise,
		Bio:       in.Bio,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies credentials. An unknown email and a wrong password return
// the same error so the response does not reveal which part failed.
func (s *AuthService) Login(ctx context.Context, in LoginInput) (*models.User, error) {
	if in.Email == "" || in.Password == "" {
		return nil, models.NewValidationError("Email and password are required")
	}

	user, err := s.userRepo.GetByEmail(ctx, validation.NormalizeEmail(in.Email))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.NewUnauthorizedError("Invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(in.Password)); err != nil {
		return nil, models.NewUnauthorizedError("Invalid credentials")
	}
	return user, nil
}
