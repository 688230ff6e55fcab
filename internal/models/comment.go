package models

import (
	"time"
)

// Comment belongs to exactly one post and one author. Comments are ordered
// ascending by creation time within a post; that ordering is part of the API
// contract, not an accident of storage.
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PostID    uint      `gorm:"not null;index" json:"post_id"`
	UserID    uint      `gorm:"not null" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID" json:"author"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
