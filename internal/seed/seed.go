// Package seed 在空数据库中写入演示数据
package seed

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"newsbangla24/portal/internal/article"
	"newsbangla24/portal/internal/locale"
	articlemodel "newsbangla24/portal/internal/model/article"
	"newsbangla24/portal/internal/model/category"
	"newsbangla24/portal/internal/model/comment"
	"newsbangla24/portal/internal/model/notification"
	usermodel "newsbangla24/portal/internal/model/user"
	"newsbangla24/portal/internal/user"

	"github.com/jonboulle/clockwork"
	"gorm.io/gorm"
)

// viewDays 每篇已发布文章最多生成的浏览记录天数
const viewDays = 7

// Run users 表为空时写入演示数据，返回是否写入；全部写入在一个事务中完成
func Run(ctx context.Context, db *gorm.DB, clock clockwork.Clock) (bool, error) {
	var count int64
	if err := db.WithContext(ctx).Model(&usermodel.User{}).Count(&count).Error; err != nil {
		return false, fmt.Errorf("count users: %w", err)
	}
	if count > 0 {
		return false, nil
	}

	now := clock.Now().UTC()
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		s := &seeder{tx: tx, now: now}
		steps := []func() error{s.users, s.categories, s.tags, s.articles, s.comments, s.notifications}
		for _, step := range steps {
			if err := step(); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return false, err
	}

	slog.InfoContext(ctx, "demo data seeded",
		"users", len(demoUsers), "categories", len(demoCategories), "articles", len(demoArticles))
	return true, nil
}

type seeder struct {
	tx  *gorm.DB
	now time.Time

	byRole     map[string]*usermodel.User
	categoryOf map[string]uint
	tagOf      map[string]articlemodel.Tag
	created    []*articlemodel.Article
}

func (s *seeder) users() error {
	s.byRole = make(map[string]*usermodel.User, len(demoUsers))
	for _, du := range demoUsers {
		hash, err := user.HashPassword(du.Password)
		if err != nil {
			return fmt.Errorf("hash password for %s: %w", du.Email, err)
		}
		u := &usermodel.User{
			Name:         du.Name,
			Email:        du.Email,
			PasswordHash: hash,
			Role:         du.Role,
			Status:       usermodel.StatusActive,
			Bio:          du.Bio,
		}
		if err := s.tx.Create(u).Error; err != nil {
			return fmt.Errorf("create user %s: %w", du.Email, err)
		}
		s.byRole[du.Role] = u
	}
	return nil
}

func (s *seeder) categories() error {
	s.categoryOf = make(map[string]uint, len(demoCategories))
	for i, dc := range demoCategories {
		c := &category.Category{
			Name:        dc.Name,
			Slug:        dc.Slug,
			Description: dc.Desc,
			Color:       dc.Color,
			SortOrder:   i + 1,
			IsActive:    true,
		}
		if err := s.tx.Create(c).Error; err != nil {
			return fmt.Errorf("create category %s: %w", dc.Slug, err)
		}
		s.categoryOf[dc.Slug] = c.ID
	}
	return nil
}

func (s *seeder) tags() error {
	s.tagOf = make(map[string]articlemodel.Tag, len(demoTags))
	for _, dt := range demoTags {
		t := articlemodel.Tag{Name: dt.Name, Slug: dt.Slug}
		if err := s.tx.Create(&t).Error; err != nil {
			return fmt.Errorf("create tag %s: %w", dt.Slug, err)
		}
		s.tagOf[dt.Slug] = t
	}
	return nil
}

func day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func (s *seeder) articles() error {
	reporter := s.byRole[usermodel.RoleReporter]
	editor := s.byRole[usermodel.RoleEditor]

	for i, da := range demoArticles {
		author := reporter
		if i%4 == 3 {
			author = editor
		}
		slug := article.Slugify(da.Title.En)
		if slug == "" {
			slug = fmt.Sprintf("article-%d", i+1)
		}

		a := &articlemodel.Article{
			Slug:  slug,
			Title: da.Title,
			Excerpt: locale.Localized{
				Bn: article.Excerpt(da.Body.Bn),
				En: article.Excerpt(da.Body.En),
			},
			Content:        da.Body,
			CategoryID:     s.categoryOf[da.Category],
			AuthorID:       author.ID,
			Status:         da.Status,
			IsFeatured:     da.Featured,
			IsBreaking:     da.Breaking,
			ReadingMinutes: article.ReadingMinutes(da.Body.Bn, da.Body.En),
			ReviewNote:     da.Note,
		}
		for _, tagSlug := range da.Tags {
			a.Tags = append(a.Tags, s.tagOf[tagSlug])
		}
		at := s.now.Add(-time.Duration(da.AgeHours) * time.Hour)
		switch da.Status {
		case articlemodel.StatusPublished:
			a.PublishedAt = &at
		case articlemodel.StatusScheduled:
			a.ScheduledAt = &at
		}

		var views []articlemodel.ArticleView
		if a.PublishedAt != nil {
			views = viewsFor(i, *a.PublishedAt, s.now)
			for _, v := range views {
				a.ViewCount += v.Views
			}
		}

		if err := s.tx.Create(a).Error; err != nil {
			return fmt.Errorf("create article %s: %w", slug, err)
		}
		for j := range views {
			views[j].ArticleID = a.ID
		}
		if len(views) > 0 {
			if err := s.tx.Create(&views).Error; err != nil {
				return fmt.Errorf("create views for %s: %w", slug, err)
			}
		}
		s.created = append(s.created, a)
	}
	return nil
}

// viewsFor 从发布当天到今天（最多 7 天）的浏览记录，越靠前的文章浏览越多
func viewsFor(index int, publishedAt, now time.Time) []articlemodel.ArticleView {
	first := day(publishedAt)
	if earliest := day(now).AddDate(0, 0, -(viewDays - 1)); first.Before(earliest) {
		first = earliest
	}
	weight := int64(len(demoArticles) - index)

	var views []articlemodel.ArticleView
	for d := first; !d.After(day(now)); d = d.AddDate(0, 0, 1) {
		views = append(views, articlemodel.ArticleView{
			Day:   d,
			Views: weight * int64(10+d.Day()%5*3),
		})
	}
	return views
}

func (s *seeder) comments() error {
	saved := make([]*comment.Comment, len(demoComments))
	approved := make(map[uint]int64)

	for i, dc := range demoComments {
		a := s.created[dc.Article]
		c := &comment.Comment{
			ArticleID:   a.ID,
			AuthorName:  dc.Name,
			AuthorEmail: dc.Email,
			Content:     dc.Content,
			Status:      dc.Status,
		}
		if dc.ReplyTo >= 0 {
			c.ParentID = &saved[dc.ReplyTo].ID
		}
		if err := s.tx.Create(c).Error; err != nil {
			return fmt.Errorf("create comment: %w", err)
		}
		saved[i] = c
		if c.Status == comment.StatusApproved {
			approved[a.ID]++
		}
	}

	for id, n := range approved {
		if err := s.tx.Model(&articlemodel.Article{}).Where("id = ?", id).
			Update("comment_count", n).Error; err != nil {
			return fmt.Errorf("update comment count: %w", err)
		}
	}
	return nil
}

func (s *seeder) notifications() error {
	reporter := s.byRole[usermodel.RoleReporter]
	first := s.created[0]

	var rejected *articlemodel.Article
	for _, a := range s.created {
		if a.Status == articlemodel.StatusRejected {
			rejected = a
			break
		}
	}

	items := []notification.Notification{
		{
			UserID:  reporter.ID,
			Type:    notification.TypeArticlePublished,
			Title:   "Article published",
			Message: fmt.Sprintf("\"%s\" is now live", first.Title.En),
			Link:    "/news/" + first.Slug,
		},
		{
			UserID:  reporter.ID,
			Type:    notification.TypeNewComment,
			Title:   "New comment",
			Message: fmt.Sprintf("Rahim Uddin commented on \"%s\"", first.Title.En),
			Link:    "/news/" + first.Slug,
		},
		{
			UserID:  s.byRole[usermodel.RoleEditor].ID,
			Type:    notification.TypeSystem,
			Title:   "Welcome",
			Message: "Articles waiting for review appear in the admin queue",
			IsRead:  true,
		},
	}
	if rejected != nil {
		items = append(items, notification.Notification{
			UserID:  reporter.ID,
			Type:    notification.TypeArticleRejected,
			Title:   "Article needs changes",
			Message: rejected.ReviewNote,
			Link:    fmt.Sprintf("/reporter/articles/%d", rejected.ID),
		})
	}
	return s.tx.Create(&items).Error
}
