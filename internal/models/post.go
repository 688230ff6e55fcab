// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// Post categories form a closed set.
const (
	CategoryTorah     = "torah"
	CategoryHalacha   = "halacha"
	CategoryChassidus = "chassidus"
	CategoryMussar    = "mussar"
	CategoryGeneral   = "general"
)

// Categories lists every valid post/session category.
var Categories = []string{
	CategoryTorah,
	CategoryHalacha,
	CategoryChassidus,
	CategoryMussar,
	CategoryGeneral,
}

// Post represents a short teaching authored by a user.
//
// Likes and CommentsCount are denormalized counters with the same maintenance
// rule as the user counters: only the like toggle and comment creation
// transactions may touch them.
type Post struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	UserID        uint      `gorm:"not null;index" json:"user_id"`
	User          User      `gorm:"foreignKey:UserID" json:"author"`
	Content       string    `gorm:"type:text;not null" json:"content"`
	Category      string    `gorm:"not null;index" json:"category"`
	Likes         int       `gorm:"not null;default:0" json:"likes"`
	CommentsCount int       `gorm:"not null;default:0" json:"comments_count"`
	Comments      []Comment `gorm:"foreignKey:PostID" json:"comments"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
