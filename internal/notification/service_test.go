package notification

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	model "newsbangla24/portal/internal/model/notification"
	"newsbangla24/portal/pkg/response"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) Create(ctx context.Context, n *model.Notification) error {
	args := m.Called(ctx, n)
	if args.Error(0) == nil {
		n.ID = 1
	}
	return args.Error(0)
}

func (m *mockRepository) ListByUser(ctx context.Context, userID uint, unreadOnly bool, offset, limit int) ([]model.Notification, int64, error) {
	args := m.Called(ctx, userID, unreadOnly, offset, limit)
	items, _ := args.Get(0).([]model.Notification)
	return items, args.Get(1).(int64), args.Error(2)
}

func (m *mockRepository) MarkRead(ctx context.Context, userID, id uint) (bool, error) {
	args := m.Called(ctx, userID, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockRepository) MarkAllRead(ctx context.Context, userID uint) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockRepository) CountUnread(ctx context.Context, userID uint) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

type recordingPusher struct {
	sent map[uint][]any
}

func (p *recordingPusher) Send(userID uint, payload any) int {
	if p.sent == nil {
		p.sent = make(map[uint][]any)
	}
	p.sent[userID] = append(p.sent[userID], payload)
	return 1
}

func TestServiceNotifySavesAndPushes(t *testing.T) {
	repo := new(mockRepository)
	pusher := &recordingPusher{}
	svc := NewService(repo, pusher)
	ctx := context.Background()

	repo.On("Create", ctx, mock.AnythingOfType("*notification.Notification")).Return(nil)
	repo.On("CountUnread", ctx, uint(5)).Return(int64(3), nil)

	n := &model.Notification{UserID: 5, Title: "Article approved"}
	require.NoError(t, svc.Notify(ctx, n))

	assert.Equal(t, model.TypeSystem, n.Type)
	require.Len(t, pusher.sent[5], 1)
	msg := pusher.sent[5][0].(Message)
	assert.Equal(t, "notification", msg.Event)
	assert.Equal(t, int64(3), msg.UnreadCount)
	assert.Same(t, n, msg.Notification)
	repo.AssertExpectations(t)
}

func TestServiceNotifySkipsAnonymous(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo, nil)

	require.NoError(t, svc.Notify(context.Background(), &model.Notification{Title: "x"}))
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestServiceNotifyFailure(t *testing.T) {
	repo := new(mockRepository)
	pusher := &recordingPusher{}
	svc := NewService(repo, pusher)

	repo.On("Create", mock.Anything, mock.Anything).Return(errors.New("db down"))

	err := svc.Notify(context.Background(), &model.Notification{UserID: 5})
	var be *response.BusinessError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, response.Fail, be.Code)
	assert.Empty(t, pusher.sent)
}

func TestServiceList(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo, nil)
	ctx := context.Background()

	items := []model.Notification{{ID: 1, UserID: 5}, {ID: 2, UserID: 5}}
	repo.On("ListByUser", ctx, uint(5), true, 20, 20).Return(items, int64(45), nil)

	page, err := svc.List(ctx, 5, true, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(45), page.Total)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 20, page.PageSize)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, items, page.Items)
}

func TestServiceMarkRead(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo, nil)
	ctx := context.Background()

	repo.On("MarkRead", ctx, uint(5), uint(1)).Return(true, nil)
	repo.On("MarkRead", ctx, uint(5), uint(2)).Return(false, nil)

	assert.NoError(t, svc.MarkRead(ctx, 5, 1))

	err := svc.MarkRead(ctx, 5, 2)
	var be *response.BusinessError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, response.NotFound, be.Code)
}
