// Package seed provides helpers to create demo and test data for the
// application database. Intended for development and testing only.
package seed

import (
	"kehilla/internal/middleware"
	"kehilla/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type sampleUser struct {
	Name       string
	Email      string
	Title      string
	Expertise  string
	Bio        string
	Avatar     string
	Followers  int
	Following  int
	PostsCount int
}

type samplePost struct {
	UserIndex int
	Content   string
	Category  string
	Likes     int
	Comments  int
}

// The canonical demo community.
var sampleUsers = []sampleUser{
	{"הרב ישראל מאיר לאו", "rabbi.lau@example.com", "הרב הראשי לישראל", "הלכה", "רב ראשי ודיין, מחבר ספרים רבים", "י", 1500, 50, 247},
	{"הרב דוד לאו", "rabbi.david@example.com", "ראש ישיבה", "תורה", "ראש ישיבת תפארת ירושלים", "ד", 800, 30, 156},
	{"הרב שלמה משה עמאר", "rabbi.amar@example.com", "הראשון לציון", "הלכה", "הראשון לציון והרב הראשי לישראל לשעבר", "ש", 1200, 40, 189},
	{"הרב יצחק יוסף", "rabbi.yosef@example.com", "הרב הראשי לישראל", "הלכה", "הרב הראשי לישראל וראש מועצת הרבנות הראשית", "י", 2000, 60, 312},
	{"הרב יעקב שאגא", "rabbi.shaga@example.com", "דיין", "מוסר", "דיין בבית הדין הרבני הגדול", "י", 600, 25, 98},
}

var samplePosts = []samplePost{
	{0, "בשעה טובה! היום נדון בנושא החשוב של הלכות שבת בעולם המודרני. כיצד אנו מתמודדים עם אתגרים טכנולוגיים תוך שמירה על קדושת השבת? מוזמנים לשתף את דעתכם וחוויות אישיות.", models.CategoryHalacha, 45, 12},
	{1, "שיעור חדש בפרשת השבוע: פרשת וישלח. נלמד על כוחה של התפילה והמשמעות העמוקה של המאבק בין יעקב למלאך. השיעור יתקיים היום בשעה 19:00 בישיבה.", models.CategoryTorah, 32, 8},
	{2, "שאלה לדיון: מהי הגישה הנכונה ללימוד מוסר בדורנו? האם עלינו להדגיש את הפחד מהעונש או את האהבה למצוות? אשמח לשמוע דעות שונות מהרבנים והתלמידים.", models.CategoryMussar, 28, 15},
	{3, "התרגשות גדולה! הספר החדש שלי \"שולחן ערוך המודרני\" יוצא לאור השבוע. הספר עוסק ביישום הלכות השולחן ערוך בחיים העכשוויים, עם דוגמאות והנחיות מעשיות.", models.CategoryHalacha, 67, 23},
	{4, "מחשבה ליום: התורה אינה רק ספר לימוד, אלא דרך חיים. כל יום מציב בפנינו הזדמנות חדשה לגדול ולהתקרב לבורא עולם דרך לימוד ומעשים טובים.", models.CategoryChassidus, 41, 9},
}

// Seed inserts the canonical demo users and posts. It is a no-op when the
// users table already has rows, so repeated startups stay idempotent.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		middleware.Logger.Info("seed skipped, users already present", "count", count)
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	users := make([]*models.User, 0, len(sampleUsers))
	for _, su := range sampleUsers {
		users = append(users, &models.User{
			Name:       su.Name,
			Email:      su.Email,
			Password:   string(hash),
			Title:      su.Title,
			Expertise:  su.Expertise,
			Bio:        su.Bio,
			Avatar:     su.Avatar,
			Followers:  su.Followers,
			Following:  su.Following,
			PostsCount: su.PostsCount,
		})
	}
	if err := db.Create(&users).Error; err != nil {
		return err
	}

	posts := make([]*models.Post, 0, len(samplePosts))
	for _, sp := range samplePosts {
		posts = append(posts, &models.Post{
			UserID:        users[sp.UserIndex].ID,
			Content:       sp.Content,
			Category:      sp.Category,
			Likes:         sp.Likes,
			CommentsCount: sp.Comments,
		})
	}
	if err := db.Create(&posts).Error; err != nil {
		return err
	}

	middleware.Logger.Info("seed complete", "users", len(users), "posts", len(posts))
	return nil
}
