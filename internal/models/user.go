// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// User represents a teacher in the Kehilla community.
//
// Followers, Following and PostsCount are denormalized counters mirroring the
// cardinality of the follows and posts relations. They are mutated only inside
// the transactions that mutate their source-of-truth rows; no direct setter
// exists anywhere in the API.
type User struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Name       string    `gorm:"not null" json:"name"`
	Email      string    `gorm:"unique;not null" json:"email"`
	Password   string    `gorm:"not null" json:"-"`
	Title      string    `json:"title"`
	Expertise  string    `json:"expertise"`
	Bio        string    `json:"bio"`
	Avatar     string    `json:"avatar"`
	Followers  int       `gorm:"not null;default:0" json:"followers"`
	Following  int       `gorm:"not null;default:0" json:"following"`
	PostsCount int       `gorm:"not null;default:0" json:"posts_count"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	Posts      []Post    `gorm:"foreignKey:UserID" json:"posts,omitempty"`
}
