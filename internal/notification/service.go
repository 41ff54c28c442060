package notification

import (
	"context"
	"log/slog"

	"newsbangla24/portal/internal/listing"
	model "newsbangla24/portal/internal/model/notification"
	"newsbangla24/portal/pkg/response"
)

// Pusher 实时推送通道
type Pusher interface {
	Send(userID uint, payload any) int
}

// Notifier 其他模块发送通知所用的接口
type Notifier interface {
	Notify(ctx context.Context, n *model.Notification) error
}

// Message 通过 websocket 推送的消息
type Message struct {
	Event        string              `json:"event"`
	Notification *model.Notification `json:"notification"`
	UnreadCount  int64               `json:"unread_count"`
}

// Service 通知服务
type Service struct {
	repo   Repository
	pusher Pusher
}

func NewService(repo Repository, pusher Pusher) *Service {
	return &Service{repo: repo, pusher: pusher}
}

// Notify 保存通知并推送给在线用户
func (s *Service) Notify(ctx context.Context, n *model.Notification) error {
	if n.UserID == 0 {
		return nil
	}
	if n.Type == "" {
		n.Type = model.TypeSystem
	}
	if err := s.repo.Create(ctx, n); err != nil {
		return response.NewInternal("failed to save notification", err)
	}

	if s.pusher != nil {
		unread, err := s.repo.CountUnread(ctx, n.UserID)
		if err != nil {
			slog.WarnContext(ctx, "failed to count unread notifications", "user_id", n.UserID, "error", err)
		}
		s.pusher.Send(n.UserID, Message{Event: "notification", Notification: n, UnreadCount: unread})
	}
	return nil
}

// List 分页获取用户通知
func (s *Service) List(ctx context.Context, userID uint, unreadOnly bool, page, pageSize int) (*response.PageData, error) {
	page, pageSize = listing.Normalize(page, pageSize)
	offset := (page - 1) * pageSize

	items, total, err := s.repo.ListByUser(ctx, userID, unreadOnly, offset, pageSize)
	if err != nil {
		return nil, response.NewInternal("failed to load notifications", err)
	}
	if items == nil {
		items = []model.Notification{}
	}
	p := listing.Paginate(total, page, pageSize)
	return &response.PageData{
		Items:      items,
		Total:      total,
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalPages: p.TotalPages,
	}, nil
}

func (s *Service) MarkRead(ctx context.Context, userID, id uint) error {
	found, err := s.repo.MarkRead(ctx, userID, id)
	if err != nil {
		return response.NewInternal("failed to update notification", err)
	}
	if !found {
		return response.NewNotFound("notification not found")
	}
	return nil
}

func (s *Service) MarkAllRead(ctx context.Context, userID uint) (int64, error) {
	n, err := s.repo.MarkAllRead(ctx, userID)
	if err != nil {
		return 0, response.NewInternal("failed to update notifications", err)
	}
	return n, nil
}

func (s *Service) UnreadCount(ctx context.Context, userID uint) (int64, error) {
	n, err := s.repo.CountUnread(ctx, userID)
	if err != nil {
		return 0, response.NewInternal("failed to count notifications", err)
	}
	return n, nil
}
