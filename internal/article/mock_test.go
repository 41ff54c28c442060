package article

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"newsbangla24/portal/internal/event"
	"newsbangla24/portal/internal/model/article"
	"newsbangla24/portal/internal/model/category"
	notifmodel "newsbangla24/portal/internal/model/notification"
	"newsbangla24/portal/internal/model/user"
	"newsbangla24/portal/pkg/email"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) FindByID(ctx context.Context, id uint) (*article.Article, error) {
	args := m.Called(ctx, id)
	a, _ := args.Get(0).(*article.Article)
	return a, args.Error(1)
}

func (m *mockRepository) FindBySlug(ctx context.Context, slug string) (*article.Article, error) {
	args := m.Called(ctx, slug)
	a, _ := args.Get(0).(*article.Article)
	return a, args.Error(1)
}

func (m *mockRepository) List(ctx context.Context, q Query) ([]article.Article, int64, error) {
	args := m.Called(ctx, q)
	items, _ := args.Get(0).([]article.Article)
	return items, args.Get(1).(int64), args.Error(2)
}

func (m *mockRepository) ListByAuthor(ctx context.Context, authorID uint) ([]article.Article, error) {
	args := m.Called(ctx, authorID)
	items, _ := args.Get(0).([]article.Article)
	return items, args.Error(1)
}

func (m *mockRepository) ListByIDs(ctx context.Context, ids []uint) ([]article.Article, error) {
	args := m.Called(ctx, ids)
	items, _ := args.Get(0).([]article.Article)
	return items, args.Error(1)
}

func (m *mockRepository) Create(ctx context.Context, a *article.Article, tagIDs []uint) error {
	args := m.Called(ctx, a, tagIDs)
	if a.ID == 0 {
		a.ID = 100
	}
	return args.Error(0)
}

func (m *mockRepository) Update(ctx context.Context, a *article.Article, tagIDs []uint) error {
	return m.Called(ctx, a, tagIDs).Error(0)
}

func (m *mockRepository) UpdateFields(ctx context.Context, id uint, fields map[string]any) error {
	return m.Called(ctx, id, fields).Error(0)
}

func (m *mockRepository) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockRepository) SlugExists(ctx context.Context, slug string, excludeID uint) (bool, error) {
	args := m.Called(ctx, slug, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *mockRepository) DueScheduled(ctx context.Context, now time.Time) ([]article.Article, error) {
	args := m.Called(ctx, now)
	items, _ := args.Get(0).([]article.Article)
	return items, args.Error(1)
}

func (m *mockRepository) RecordView(ctx context.Context, id uint, day time.Time) error {
	return m.Called(ctx, id, day).Error(0)
}

func (m *mockRepository) Trending(ctx context.Context, since time.Time, limit int) ([]TrendingRow, error) {
	args := m.Called(ctx, since, limit)
	rows, _ := args.Get(0).([]TrendingRow)
	return rows, args.Error(1)
}

func (m *mockRepository) ToggleBookmark(ctx context.Context, userID, articleID uint) (bool, error) {
	args := m.Called(ctx, userID, articleID)
	return args.Bool(0), args.Error(1)
}

func (m *mockRepository) BookmarkedIDs(ctx context.Context, userID uint) ([]uint, error) {
	args := m.Called(ctx, userID)
	ids, _ := args.Get(0).([]uint)
	return ids, args.Error(1)
}

func (m *mockRepository) CategoryExists(ctx context.Context, id uint) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockRepository) CategoryIDsBySlug(ctx context.Context, slug string) ([]uint, error) {
	args := m.Called(ctx, slug)
	ids, _ := args.Get(0).([]uint)
	return ids, args.Error(1)
}

func (m *mockRepository) TopCategories(ctx context.Context) ([]category.Category, error) {
	args := m.Called(ctx)
	cats, _ := args.Get(0).([]category.Category)
	return cats, args.Error(1)
}

func (m *mockRepository) CategoriesByID(ctx context.Context, ids []uint) (map[uint]category.Category, error) {
	args := m.Called(ctx, ids)
	cats, _ := args.Get(0).(map[uint]category.Category)
	return cats, args.Error(1)
}

func (m *mockRepository) AuthorsByID(ctx context.Context, ids []uint) (map[uint]user.User, error) {
	args := m.Called(ctx, ids)
	users, _ := args.Get(0).(map[uint]user.User)
	return users, args.Error(1)
}

func (m *mockRepository) ListTags(ctx context.Context) ([]article.Tag, error) {
	args := m.Called(ctx)
	tags, _ := args.Get(0).([]article.Tag)
	return tags, args.Error(1)
}

type recordingNotifier struct {
	sent []*notifmodel.Notification
}

func (r *recordingNotifier) Notify(_ context.Context, n *notifmodel.Notification) error {
	r.sent = append(r.sent, n)
	return nil
}

type recordingPublisher struct {
	events []event.ArticleEvent
}

func (r *recordingPublisher) Publish(_ context.Context, evt event.ArticleEvent) error {
	r.events = append(r.events, evt)
	return nil
}

func (r *recordingPublisher) Close() error { return nil }

type captureSender struct {
	sent []*email.Message
}

func (c *captureSender) Send(msg *email.Message) error {
	c.sent = append(c.sent, msg)
	return nil
}
