package testutils

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"newsbangla24/portal/internal/locale"
	"newsbangla24/portal/internal/model/article"
	"newsbangla24/portal/internal/model/category"
	"newsbangla24/portal/internal/model/comment"
	"newsbangla24/portal/internal/model/user"
)

// CreateTestUser creates a test user with unique name/email
func CreateTestUser(db *gorm.DB, opts ...UserOption) *user.User {
	uniqueID := uuid.New().String()

	testUser := &user.User{
		Name:         fmt.Sprintf("test_user_%s", uniqueID[:8]),
		Email:        fmt.Sprintf("test_%s@example.com", uniqueID),
		PasswordHash: "not-a-real-hash",
		Role:         user.RoleReporter,
		Status:       user.StatusActive,
	}

	for _, opt := range opts {
		opt(testUser)
	}

	if err := db.Create(testUser).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test user: %v", err))
	}

	return testUser
}

// UserOption configures test user
type UserOption func(*user.User)

// WithEmail sets the email
func WithEmail(email string) UserOption {
	return func(u *user.User) {
		u.Email = email
	}
}

// WithRole sets the role
func WithRole(role string) UserOption {
	return func(u *user.User) {
		u.Role = role
	}
}

// WithStatus sets the status
func WithStatus(status string) UserOption {
	return func(u *user.User) {
		u.Status = status
	}
}

// CreateTestCategory creates an active category with a unique slug
func CreateTestCategory(db *gorm.DB, opts ...CategoryOption) *category.Category {
	uniqueID := uuid.New().String()[:8]

	testCategory := &category.Category{
		Name:     locale.Localized{Bn: "বিভাগ " + uniqueID, En: "Category " + uniqueID},
		Slug:     "category-" + uniqueID,
		IsActive: true,
	}

	for _, opt := range opts {
		opt(testCategory)
	}

	if err := db.Create(testCategory).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test category: %v", err))
	}

	return testCategory
}

// CategoryOption configures test category
type CategoryOption func(*category.Category)

// WithParent sets the parent category
func WithParent(parentID uint) CategoryOption {
	return func(c *category.Category) {
		c.ParentID = &parentID
	}
}

// WithSlug sets the slug
func WithSlug(slug string) CategoryOption {
	return func(c *category.Category) {
		c.Slug = slug
	}
}

// CreateTestArticle creates a published article
func CreateTestArticle(db *gorm.DB, authorID, categoryID uint, opts ...ArticleOption) *article.Article {
	uniqueID := uuid.New().String()[:8]
	now := time.Now()

	testArticle := &article.Article{
		Slug:           "article-" + uniqueID,
		Title:          locale.Localized{Bn: "শিরোনাম " + uniqueID, En: "Headline " + uniqueID},
		Excerpt:        locale.Localized{Bn: "সারাংশ", En: "Summary"},
		Content:        locale.Localized{Bn: "<p>বিস্তারিত</p>", En: "<p>Details</p>"},
		CategoryID:     categoryID,
		AuthorID:       authorID,
		Status:         article.StatusPublished,
		ReadingMinutes: 1,
		PublishedAt:    &now,
	}

	for _, opt := range opts {
		opt(testArticle)
	}

	if err := db.Create(testArticle).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test article: %v", err))
	}

	return testArticle
}

// ArticleOption configures test article
type ArticleOption func(*article.Article)

// WithArticleStatus sets the status; non-published articles get no published_at
func WithArticleStatus(status string) ArticleOption {
	return func(a *article.Article) {
		a.Status = status
		if status != article.StatusPublished {
			a.PublishedAt = nil
		}
	}
}

// WithTitle sets the bilingual title
func WithTitle(bn, en string) ArticleOption {
	return func(a *article.Article) {
		a.Title = locale.Localized{Bn: bn, En: en}
	}
}

// WithViews sets the view count
func WithViews(views int64) ArticleOption {
	return func(a *article.Article) {
		a.ViewCount = views
	}
}

// WithFeatured marks the article as featured
func WithFeatured() ArticleOption {
	return func(a *article.Article) {
		a.IsFeatured = true
	}
}

// CreateTestComment creates a comment on an article
func CreateTestComment(db *gorm.DB, articleID uint, status string, parentID *uint) *comment.Comment {
	c := &comment.Comment{
		ArticleID:  articleID,
		ParentID:   parentID,
		AuthorName: "Reader",
		Content:    "test comment " + uuid.New().String()[:8],
		Status:     status,
	}
	if err := db.Create(c).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test comment: %v", err))
	}
	return c
}
