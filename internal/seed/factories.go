package seed

import (
	"fmt"
	"math/rand"
	"time"

	"kehilla/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Factory builds domain entities and persists them. Used by seed presets and
// tests that need volume beyond the canonical sample data.
type Factory struct {
	db *gorm.DB
	r  *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{
		db: db,
		r:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// CreateUser constructs and persists a sample user. Optional override
// functions may modify the generated user before saving.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:      gofakeit.Name(),
		Email:     gofakeit.Email(),
		Password:  string(hash),
		Title:     gofakeit.JobTitle(),
		Expertise: models.Categories[f.r.Intn(len(models.Categories))],
		Bio:       gofakeit.Sentence(10),
		Avatar:    fmt.Sprintf("https://i.pravatar.cc/150?u=%s", gofakeit.UUID()),
	}
	for _, override := range overrides {
		override(user)
	}
	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreatePost constructs and persists a post by the given user with a
// realistic created_at spread over the last 90 days.
func (f *Factory) CreatePost(user *models.User, overrides ...func(*models.Post)) (*models.Post, error) {
	post := &models.Post{
		UserID:   user.ID,
		Content:  gofakeit.Paragraph(1, 3, 5, "\n"),
		Category: models.Categories[f.r.Intn(len(models.Categories))],
	}
	daysBack := f.r.Intn(90)
	hoursBack := f.r.Intn(24)
	post.CreatedAt = time.Now().
		Add(-time.Duration(daysBack)*24*time.Hour - time.Duration(hoursBack)*time.Hour)

	for _, override := range overrides {
		override(post)
	}
	if err := f.db.Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// CreateComment constructs and persists a comment on the given post.
func (f *Factory) CreateComment(user *models.User, post *models.Post) (*models.Comment, error) {
	comment := &models.Comment{
		UserID:  user.ID,
		PostID:  post.ID,
		Content: gofakeit.Sentence(12),
	}
	if err := f.db.Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

// CreateSession constructs and persists an upcoming study session hosted by
// the given speaker.
func (f *Factory) CreateSession(speaker *models.User, overrides ...func(*models.StudySession)) (*models.StudySession, error) {
	session := &models.StudySession{
		SpeakerID:       speaker.ID,
		Title:           gofakeit.Sentence(4),
		Description:     gofakeit.Paragraph(1, 2, 8, " "),
		DateTime:        time.Now().Add(time.Duration(1+f.r.Intn(30)) * 24 * time.Hour),
		DurationMinutes: 30 + f.r.Intn(90),
		MaxParticipants: f.r.Intn(50),
		Category:        models.Categories[f.r.Intn(len(models.Categories))],
	}
	for _, override := range overrides {
		override(session)
	}
	if err := f.db.Create(session).Error; err != nil {
		return nil, err
	}
	return session, nil
}
