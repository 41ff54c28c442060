package article

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsbangla24/portal/internal/model/article"
	"newsbangla24/portal/internal/testutils"
)

func TestRepositoryIntegration(t *testing.T) {
	db := testutils.SetupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	author := testutils.CreateTestUser(db)
	parent := testutils.CreateTestCategory(db)
	child := testutils.CreateTestCategory(db, testutils.WithParent(parent.ID))

	hit := testutils.CreateTestArticle(db, author.ID, child.ID, testutils.WithTitle("পদ্মা সেতু", "Padma Bridge traffic"))
	testutils.CreateTestArticle(db, author.ID, parent.ID, testutils.WithArticleStatus(article.StatusDraft))

	t.Run("category slug includes children", func(t *testing.T) {
		ids, err := repo.CategoryIDsBySlug(ctx, parent.Slug)
		require.NoError(t, err)
		assert.ElementsMatch(t, []uint{parent.ID, child.ID}, ids)

		_, err = repo.CategoryIDsBySlug(ctx, "no-such-category")
		assert.ErrorIs(t, err, ErrCategoryNotFound)
	})

	t.Run("list searches both languages", func(t *testing.T) {
		items, total, err := repo.List(ctx, Query{Statuses: []string{article.StatusPublished}, Q: "padma bridge", Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, items, 1)
		assert.Equal(t, hit.ID, items[0].ID)

		items, _, err = repo.List(ctx, Query{Statuses: []string{article.StatusPublished}, Q: "পদ্মা", Limit: 10})
		require.NoError(t, err)
		require.Len(t, items, 1)
	})

	t.Run("record view upserts the daily row", func(t *testing.T) {
		day := time.Date(2026, 10, 14, 0, 0, 0, 0, time.UTC)
		require.NoError(t, repo.RecordView(ctx, hit.ID, day))
		require.NoError(t, repo.RecordView(ctx, hit.ID, day))

		var view article.ArticleView
		require.NoError(t, db.Where("article_id = ?", hit.ID).First(&view).Error)
		assert.Equal(t, int64(2), view.Views)

		reloaded, err := repo.FindByID(ctx, hit.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(2), reloaded.ViewCount)

		rows, err := repo.Trending(ctx, day, 5)
		require.NoError(t, err)
		assert.Contains(t, rows, TrendingRow{ArticleID: hit.ID, Views: 2})
	})

	t.Run("bookmark toggles", func(t *testing.T) {
		on, err := repo.ToggleBookmark(ctx, author.ID, hit.ID)
		require.NoError(t, err)
		assert.True(t, on)

		ids, err := repo.BookmarkedIDs(ctx, author.ID)
		require.NoError(t, err)
		assert.Equal(t, []uint{hit.ID}, ids)

		on, err = repo.ToggleBookmark(ctx, author.ID, hit.ID)
		require.NoError(t, err)
		assert.False(t, on)
	})

	t.Run("slug exists ignores the excluded id", func(t *testing.T) {
		exists, err := repo.SlugExists(ctx, hit.Slug, 0)
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = repo.SlugExists(ctx, hit.Slug, hit.ID)
		require.NoError(t, err)
		assert.False(t, exists)
	})
}

func TestRepositoryListEscapesSearchWildcards(t *testing.T) {
	db, queries := testutils.SetupDryRunDB(t)
	repo := NewRepository(db)

	_, _, err := repo.List(context.Background(), Query{Statuses: []string{article.StatusPublished}, Q: "a_b", Limit: 10})
	require.NoError(t, err)

	i := queries.Find("ILIKE")
	require.GreaterOrEqual(t, i, 0, "search should filter with ILIKE")
	assert.Contains(t, queries.SQL[i], `ESCAPE '\'`)

	patterns := 0
	for _, v := range queries.Vars[i] {
		if s, ok := v.(string); ok && s != article.StatusPublished {
			assert.Equal(t, `%a\_b%`, s)
			patterns++
		}
	}
	assert.Equal(t, 6, patterns, "every title, excerpt and content column is searched")
}
