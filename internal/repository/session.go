package repository

import (
	"context"
	"errors"

	"kehilla/internal/models"

	"gorm.io/gorm"
)

// SessionRepository defines persistence operations for study sessions.
type SessionRepository interface {
	Create(ctx context.Context, session *models.StudySession) error
	List(ctx context.Context, limit, offset int) ([]*models.StudySession, error)
	GetByID(ctx context.Context, id uint) (*models.StudySession, error)
	ToggleRegistration(ctx context.Context, sessionID, userID uint) (bool, int, error)
	IsRegistered(ctx context.Context, sessionID, userID uint) (bool, error)
	ListRegisteredByUser(ctx context.Context, userID uint) ([]*models.StudySession, error)
}

type sessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository returns a new SessionRepository implementation.
func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Create(ctx context.Context, session *models.StudySession) error {
	if err := r.db.WithContext(ctx).Create(session).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// List returns upcoming-first ordering: soonest scheduled session leads.
func (r *sessionRepository) List(ctx context.Context, limit, offset int) ([]*models.StudySession, error) {
	var sessions []*models.StudySession
	if err := r.db.WithContext(ctx).
		Preload("Speaker").
		Order("date_time ASC").
		Limit(limit).
		Offset(offset).
		Find(&sessions).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return sessions, nil
}

func (r *sessionRepository) GetByID(ctx context.Context, id uint) (*models.StudySession, error) {
	var session models.StudySession
	if err := r.db.WithContext(ctx).Preload("Speaker").First(&session, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Session")
		}
		return nil, models.NewInternalError(err)
	}
	return &session, nil
}

// ToggleRegistration flips the (session, user) registration and returns the
// resulting state plus the participant count after the change.
//
// Capacity is enforced on the way in only: the participant increment carries
// the capacity predicate, so a full session rejects the insert and the whole
// transaction rolls back. Leaving a full session always works. A
// max_participants of zero means unlimited.
func (r *sessionRepository) ToggleRegistration(ctx context.Context, sessionID, userID uint) (bool, int, error) {
	var registered bool
	var participants int

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Exec(
			`INSERT INTO session_registrations (session_id, user_id, created_at)
			 VALUES (?, ?, CURRENT_TIMESTAMP)
			 ON CONFLICT (session_id, user_id) DO NOTHING`,
			sessionID, userID,
		)
		if res.Error != nil {
			return res.Error
		}

		if res.RowsAffected > 0 {
			registered = true
			inc := tx.Exec(
				`UPDATE study_sessions
				 SET current_participants = current_participants + 1
				 WHERE id = ? AND (max_participants = 0 OR current_participants < max_participants)`,
				sessionID,
			)
			if inc.Error != nil {
				return inc.Error
			}
			if inc.RowsAffected == 0 {
				return models.NewValidationError("Session is full")
			}
		} else {
			registered = false
			del := tx.Exec(
				`DELETE FROM session_registrations WHERE session_id = ? AND user_id = ?`,
				sessionID, userID,
			)
			if del.Error != nil {
				return del.Error
			}
			// A zero-row delete means a concurrent unregister won the race
			// after our insert saw the row. That transaction owns the
			// participant decrement.
			if del.RowsAffected > 0 {
				if err := tx.Exec(
					`UPDATE study_sessions
					 SET current_participants = current_participants - 1
					 WHERE id = ?`,
					sessionID,
				).Error; err != nil {
					return err
				}
			}
		}

		return tx.Raw(
			`SELECT current_participants FROM study_sessions WHERE id = ?`,
			sessionID,
		).Scan(&participants).Error
	})
	if err != nil {
		var appErr *models.AppError
		if errors.As(err, &appErr) {
			return false, 0, appErr
		}
		return false, 0, models.NewInternalError(err)
	}
	return registered, participants, nil
}

func (r *sessionRepository) IsRegistered(ctx context.Context, sessionID, userID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.SessionRegistration{}).
		Where("session_id = ? AND user_id = ?", sessionID, userID).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

// ListRegisteredByUser returns the sessions a user is registered for, soonest
// first.
func (r *sessionRepository) ListRegisteredByUser(ctx context.Context, userID uint) ([]*models.StudySession, error) {
	var sessions []*models.StudySession
	if err := r.db.WithContext(ctx).
		Joins("JOIN session_registrations ON session_registrations.session_id = study_sessions.id").
		Where("session_registrations.user_id = ?", userID).
		Preload("Speaker").
		Order("date_time ASC").
		Find(&sessions).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return sessions, nil
}
