package models

import (
	"time"
)

// StudySession is a scheduled shiur hosted by one speaker.
//
// CurrentParticipants mirrors the cardinality of session_registrations and is
// bounded by MaxParticipants when that is set (> 0). A zero MaxParticipants
// means unlimited capacity.
type StudySession struct {
	ID                  uint      `gorm:"primaryKey" json:"id"`
	Title               string    `gorm:"not null" json:"title"`
	Description         string    `gorm:"type:text" json:"description"`
	SpeakerID           uint      `gorm:"not null;index" json:"speaker_id"`
	Speaker             User      `gorm:"foreignKey:SpeakerID" json:"speaker"`
	DateTime            time.Time `gorm:"not null;index" json:"date_time"`
	DurationMinutes     int       `json:"duration"`
	MaxParticipants     int       `json:"max_participants"`
	CurrentParticipants int       `gorm:"not null;default:0" json:"current_participants"`
	Category            string    `json:"category"`
	CreatedAt           time.Time `json:"created_at"`
}

// SessionRegistration is a join row over (session, user) with a unique pair
// constraint; presence is the "registered" boolean.
type SessionRegistration struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	SessionID uint      `gorm:"not null;uniqueIndex:idx_session_user" json:"session_id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_session_user" json:"user_id"`
	CreatedAt time.Time `json:"registered_at"`

	// Relationships
	Session StudySession `gorm:"foreignKey:SessionID" json:"-"`
	User    User         `gorm:"foreignKey:UserID" json:"-"`
}
