package seed

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	articlemodel "newsbangla24/portal/internal/model/article"
	"newsbangla24/portal/internal/model/category"
	"newsbangla24/portal/internal/model/comment"
	usermodel "newsbangla24/portal/internal/model/user"
	"newsbangla24/portal/internal/testutils"
	"newsbangla24/portal/internal/user"
)

var now = time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC)

func TestViewsFor(t *testing.T) {
	t.Run("recent article covers publish day to today", func(t *testing.T) {
		views := viewsFor(0, now.Add(-50*time.Hour), now)
		require.Len(t, views, 3)
		assert.Equal(t, time.Date(2026, 10, 12, 0, 0, 0, 0, time.UTC), views[0].Day)
		assert.Equal(t, time.Date(2026, 10, 14, 0, 0, 0, 0, time.UTC), views[2].Day)
	})

	t.Run("older article is capped to the window", func(t *testing.T) {
		views := viewsFor(0, now.AddDate(0, 0, -20), now)
		require.Len(t, views, viewDays)
		assert.Equal(t, time.Date(2026, 10, 8, 0, 0, 0, 0, time.UTC), views[0].Day)
	})

	t.Run("earlier articles are weighted higher", func(t *testing.T) {
		a := viewsFor(0, now, now)
		b := viewsFor(5, now, now)
		assert.Greater(t, a[0].Views, b[0].Views)
	})
}

func TestDemoData(t *testing.T) {
	assert.Len(t, demoCategories, 7)
	assert.GreaterOrEqual(t, len(demoArticles), 10)

	statuses := map[string]bool{}
	for _, a := range demoArticles {
		statuses[a.Status] = true
		assert.False(t, a.Title.IsEmpty())
	}
	for _, s := range articlemodel.Statuses {
		if s == articlemodel.StatusArchived {
			continue
		}
		assert.True(t, statuses[s], "missing %s article", s)
	}

	for i, c := range demoComments {
		if c.ReplyTo >= 0 {
			assert.Less(t, c.ReplyTo, i)
			assert.Equal(t, demoComments[c.ReplyTo].Article, c.Article)
		}
	}
}

func TestRun(t *testing.T) {
	db := testutils.SetupTestDB(t)
	ctx := context.Background()
	for _, table := range []string{"notifications", "comments", "article_views", "article_tags", "bookmarks", "articles", "tags", "categories", "media_items", "users"} {
		require.NoError(t, db.Exec("DELETE FROM "+table).Error)
	}

	seeded, err := Run(ctx, db, clockwork.NewFakeClockAt(now))
	require.NoError(t, err)
	require.True(t, seeded)

	var admin usermodel.User
	require.NoError(t, db.Where("email = ?", "admin@newsbangla24.com").First(&admin).Error)
	assert.Equal(t, usermodel.RoleAdmin, admin.Role)
	assert.True(t, user.CheckPassword(admin.PasswordHash, "admin123"))

	var cats int64
	db.Model(&category.Category{}).Count(&cats)
	assert.Equal(t, int64(7), cats)

	var flood articlemodel.Article
	require.NoError(t, db.Where("slug = ?", "flood-worsens-in-sylhet-hundreds-of-thousands-stranded").First(&flood).Error)
	var approved int64
	db.Model(&comment.Comment{}).Where("article_id = ? AND status = ?", flood.ID, comment.StatusApproved).Count(&approved)
	assert.Equal(t, approved, flood.CommentCount)

	var viewSum int64
	db.Model(&articlemodel.ArticleView{}).Where("article_id = ?", flood.ID).Select("COALESCE(SUM(views), 0)").Scan(&viewSum)
	assert.Equal(t, flood.ViewCount, viewSum)

	again, err := Run(ctx, db, clockwork.NewFakeClockAt(now))
	require.NoError(t, err)
	assert.False(t, again)
}
