package service

import (
	"context"
	"strings"
	"time"

	"kehilla/internal/models"
	"kehilla/internal/observability"
	"kehilla/internal/repository"
	"kehilla/internal/validation"
)

// SessionService handles study session scheduling and registration.
type SessionService struct {
	sessionRepo repository.SessionRepository
}

// CreateSessionInput carries the payload for a new study session.
type CreateSessionInput struct {
	SpeakerID       uint
	Title           string
	Description     string
	DateTime        time.Time
	DurationMinutes int
	MaxParticipants int
	Category        string
}

func NewSessionService(sessionRepo repository.SessionRepository) *SessionService {
	return &SessionService{sessionRepo: sessionRepo}
}

func (s *SessionService) CreateSession(ctx context.Context, in CreateSessionInput) (*models.StudySession, error) {
	if strings.TrimSpace(in.Title) == "" || in.DateTime.IsZero() {
		return nil, models.NewValidationError("Title and date_time are required")
	}
	if in.MaxParticipants < 0 {
		return nil, models.NewValidationError("max_participants cannot be negative")
	}
	if in.Category != "" && !validation.ValidCategory(in.Category) {
		return nil, models.NewValidationError("Invalid category")
	}

	session := &models.StudySession{
		SpeakerID:       in.SpeakerID,
		Title:           strings.TrimSpace(in.Title),
		Description:     in.Description,
		DateTime:        in.DateTime,
		DurationMinutes: in.DurationMinutes,
		MaxParticipants: in.MaxParticipants,
		Category:        in.Category,
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, err
	}
	return s.sessionRepo.GetByID(ctx, session.ID)
}

// ListSessions returns all sessions, soonest first.
func (s *SessionService) ListSessions(ctx context.Context, limit, offset int) ([]*models.StudySession, error) {
	return s.sessionRepo.List(ctx, limit, offset)
}

// ToggleRegistration flips the caller's registration and reports the new
// state along with the participant count after the change.
func (s *SessionService) ToggleRegistration(ctx context.Context, sessionID, userID uint) (bool, int, error) {
	if _, err := s.sessionRepo.GetByID(ctx, sessionID); err != nil {
		return false, 0, err
	}
	registered, participants, err := s.sessionRepo.ToggleRegistration(ctx, sessionID, userID)
	if err != nil {
		if appErr, ok := err.(*models.AppError); ok && appErr.Code == models.CodeValidation {
			observability.SessionCapacityRejections.Inc()
		}
		return false, 0, err
	}
	observability.RecordToggle("registration", registered)
	return registered, participants, nil
}

// RegistrationStatus reports whether the caller is registered for a session.
func (s *SessionService) RegistrationStatus(ctx context.Context, sessionID, userID uint) (bool, error) {
	if _, err := s.sessionRepo.GetByID(ctx, sessionID); err != nil {
		return false, err
	}
	return s.sessionRepo.IsRegistered(ctx, sessionID, userID)
}

// RegisteredSessions lists the sessions the caller is registered for.
func (s *SessionService) RegisteredSessions(ctx context.Context, userID uint) ([]*models.StudySession, error) {
	return s.sessionRepo.ListRegisteredByUser(ctx, userID)
}
