package article

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"newsbangla24/portal/internal/event"
	"newsbangla24/portal/internal/listing"
	"newsbangla24/portal/internal/model/article"
	"newsbangla24/portal/pkg/response"
)

// AdminList 后台文章列表，包含双语原文
func (s *ArticleService) AdminList(ctx context.Context, q AdminListQuery) (*response.PageData, error) {
	query := Query{
		AuthorID: q.AuthorID,
		Q:        strings.TrimSpace(q.Q),
		Sort:     q.Sort,
	}
	if q.Status != "" {
		if !article.ValidStatus(q.Status) {
			return nil, response.NewInvalid("invalid status")
		}
		query.Statuses = []string{q.Status}
	}
	if q.CategoryID != 0 {
		query.CategoryIDs = []uint{q.CategoryID}
	}
	if query.Sort == "" {
		query.Sort = "created"
	}

	page, pageSize := listing.Normalize(q.Page, q.PageSize)
	query.Offset = (page - 1) * pageSize
	query.Limit = pageSize

	articles, total, err := s.repo.List(ctx, query)
	if err != nil {
		return nil, response.NewInternal("failed to load articles", err)
	}
	p := listing.Paginate(total, page, pageSize)
	return &response.PageData{
		Items:      articles,
		Total:      total,
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalPages: p.TotalPages,
	}, nil
}

// Review 审核待审稿件；通过时若定时时间在未来则进入 scheduled
func (s *ArticleService) Review(ctx context.Context, id uint, req ReviewRequest) (*article.Article, error) {
	a, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if a.Status != article.StatusPending {
		return nil, response.NewConflict("only pending articles can be reviewed")
	}

	note := strings.TrimSpace(req.Note)
	now := s.clock.Now()
	switch req.Action {
	case "approve":
		a.ReviewNote = note
		if a.ScheduledAt != nil && a.ScheduledAt.After(now) {
			a.Status = article.StatusScheduled
		} else {
			a.Status = article.StatusPublished
			a.PublishedAt = &now
		}
	case "reject":
		if note == "" {
			return nil, response.NewInvalid("a note is required when rejecting")
		}
		a.Status = article.StatusRejected
		a.ReviewNote = note
	default:
		return nil, response.NewInvalid("action must be approve or reject")
	}

	if err := s.repo.Update(ctx, a, nil); err != nil {
		return nil, response.NewInternal("failed to save review", err)
	}

	slog.InfoContext(ctx, "article reviewed", "article_id", a.ID, "action", req.Action, "status", a.Status)
	if a.Status == article.StatusRejected {
		s.onRejected(ctx, a)
	} else {
		s.onApproved(ctx, a)
	}
	return a, nil
}

// SetFlags 设置头条/突发标记
func (s *ArticleService) SetFlags(ctx context.Context, id uint, req FlagsRequest) (*article.Article, error) {
	fields := map[string]any{}
	if req.IsFeatured != nil {
		fields["is_featured"] = *req.IsFeatured
	}
	if req.IsBreaking != nil {
		fields["is_breaking"] = *req.IsBreaking
	}
	if len(fields) == 0 {
		return nil, response.NewInvalid("nothing to update")
	}

	if err := s.repo.UpdateFields(ctx, id, fields); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, response.NewNotFound("article not found")
		}
		return nil, response.NewInternal("failed to update flags", err)
	}
	return s.load(ctx, id)
}

// Bulk 批量发布、归档或删除，ids 去重后逐条执行并返回各自结果
func (s *ArticleService) Bulk(ctx context.Context, req BulkRequest) ([]BulkResult, error) {
	ids := listing.NewSelection(req.IDs...).IDs()
	results := make([]BulkResult, 0, len(ids))
	for _, id := range ids {
		res := BulkResult{ID: id}
		status, err := s.bulkOne(ctx, id, req.Action)
		if err != nil {
			res.Error = errorMessage(err)
		} else {
			res.Success = true
			res.Status = status
		}
		results = append(results, res)
	}
	return results, nil
}

func errorMessage(err error) string {
	var be *response.BusinessError
	if errors.As(err, &be) {
		return be.Msg
	}
	return err.Error()
}

func (s *ArticleService) bulkOne(ctx context.Context, id uint, action string) (string, error) {
	a, err := s.load(ctx, id)
	if err != nil {
		return "", err
	}

	switch action {
	case "publish":
		if a.IsPublished() {
			return a.Status, nil
		}
		if err := s.publish(ctx, a); err != nil {
			return "", err
		}
		return a.Status, nil
	case "archive":
		a.Status = article.StatusArchived
		if err := s.repo.Update(ctx, a, nil); err != nil {
			return "", response.NewInternal("failed to archive article", err)
		}
		s.publishEvent(ctx, event.ArticleArchived, a)
		return a.Status, nil
	case "delete":
		if err := s.repo.Delete(ctx, id); err != nil {
			return "", response.NewInternal("failed to delete article", err)
		}
		s.publishEvent(ctx, event.ArticleDeleted, a)
		return "deleted", nil
	}
	return "", response.NewInvalid("unknown action")
}

// publish 首次发布时写入发布时间；已有发布时间（归档后重新发布）则保留
func (s *ArticleService) publish(ctx context.Context, a *article.Article) error {
	if a.PublishedAt == nil {
		now := s.clock.Now()
		a.PublishedAt = &now
	}
	a.Status = article.StatusPublished
	if err := s.repo.Update(ctx, a, nil); err != nil {
		return response.NewInternal("failed to publish article", err)
	}
	s.onPublished(ctx, a)
	return nil
}

// PublishDue 发布所有到期的定时稿件，返回发布数量
func (s *ArticleService) PublishDue(ctx context.Context) (int, error) {
	now := s.clock.Now()
	due, err := s.repo.DueScheduled(ctx, now)
	if err != nil {
		return 0, err
	}

	count := 0
	for i := range due {
		a := &due[i]
		a.PublishedAt = a.ScheduledAt
		if err := s.publish(ctx, a); err != nil {
			slog.ErrorContext(ctx, "failed to publish scheduled article", "article_id", a.ID, "error", err)
			continue
		}
		count++
	}
	return count, nil
}
