// Package comment 读者评论和后台审核
package comment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"newsbangla24/portal/internal/listing"
	"newsbangla24/portal/internal/locale"
	"newsbangla24/portal/internal/model/article"
	"newsbangla24/portal/internal/model/comment"
	notifmodel "newsbangla24/portal/internal/model/notification"
	"newsbangla24/portal/internal/model/user"
	"newsbangla24/portal/internal/notification"
	"newsbangla24/portal/pkg/response"
)

const maxContentLength = 2000

type CommentService struct {
	repo     Repository
	notifier notification.Notifier
	siteURL  string
}

func NewCommentService(repo Repository, notifier notification.Notifier, siteURL string) *CommentService {
	return &CommentService{repo: repo, notifier: notifier, siteURL: siteURL}
}

func (s *CommentService) publishedArticle(ctx context.Context, slug string) (*article.Article, error) {
	a, err := s.repo.FindArticleBySlug(ctx, slug)
	if errors.Is(err, ErrArticleNotFound) || (err == nil && !a.IsPublished()) {
		return nil, response.NewNotFound("article not found")
	}
	if err != nil {
		return nil, response.NewInternal("failed to load article", err)
	}
	return a, nil
}

func publicOf(c comment.Comment, lang locale.Lang) PublicComment {
	return PublicComment{
		ID:           c.ID,
		ParentID:     c.ParentID,
		AuthorName:   c.AuthorName,
		Content:      c.Content,
		CreatedAt:    c.CreatedAt,
		CreatedLabel: locale.FormatDate(c.CreatedAt, lang),
	}
}

// buildThreads 顶级评论在前按时间排列，回复挂在所属顶级评论下
// 所属顶级评论未通过审核的回复不展示
func buildThreads(comments []comment.Comment, lang locale.Lang) []Thread {
	threads := make([]Thread, 0, len(comments))
	index := make(map[uint]int)
	for _, c := range comments {
		if c.ParentID == nil {
			index[c.ID] = len(threads)
			threads = append(threads, Thread{PublicComment: publicOf(c, lang), Replies: []PublicComment{}})
		}
	}
	for _, c := range comments {
		if c.ParentID == nil {
			continue
		}
		if i, ok := index[*c.ParentID]; ok {
			threads[i].Replies = append(threads[i].Replies, publicOf(c, lang))
		}
	}
	return threads
}

// Threads 文章下已通过的评论
func (s *CommentService) Threads(ctx context.Context, slug string, lang locale.Lang) ([]Thread, error) {
	a, err := s.publishedArticle(ctx, slug)
	if err != nil {
		return nil, err
	}
	comments, err := s.repo.ListApproved(ctx, a.ID)
	if err != nil {
		return nil, response.NewInternal("failed to load comments", err)
	}
	return buildThreads(comments, lang), nil
}

// Create 发表评论；管理员和编辑的评论直接通过，其余进入待审
func (s *CommentService) Create(ctx context.Context, slug string, who Commenter, req CreateRequest) (*comment.Comment, error) {
	a, err := s.publishedArticle(ctx, slug)
	if err != nil {
		return nil, err
	}

	content := strings.TrimSpace(req.Content)
	if content == "" || utf8.RuneCountInString(content) > maxContentLength {
		return nil, response.NewInvalid(fmt.Sprintf("comment must be between 1 and %d characters", maxContentLength))
	}

	c := &comment.Comment{
		ArticleID:   a.ID,
		Content:     content,
		AuthorName:  strings.TrimSpace(req.AuthorName),
		AuthorEmail: strings.TrimSpace(req.AuthorEmail),
		Status:      comment.StatusPending,
		IP:          who.IP,
	}
	if who.UserID != 0 {
		uid := who.UserID
		c.UserID = &uid
		c.AuthorName = who.Name
		c.AuthorEmail = who.Email
		if user.IsModeratorRole(who.Role) {
			c.Status = comment.StatusApproved
		}
	}
	if c.AuthorName == "" {
		return nil, response.NewInvalid("field 'author_name' is required")
	}

	if req.ParentID != nil {
		parent, err := s.repo.FindByID(ctx, *req.ParentID)
		if errors.Is(err, ErrNotFound) || (err == nil && parent.ArticleID != a.ID) {
			return nil, response.NewInvalid("parent comment does not belong to this article")
		}
		if err != nil {
			return nil, response.NewInternal("failed to load parent comment", err)
		}
		// 回复只保留一层
		if parent.ParentID != nil {
			c.ParentID = parent.ParentID
		} else {
			c.ParentID = &parent.ID
		}
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return nil, response.NewInternal("failed to save comment", err)
	}

	if a.AuthorID != who.UserID {
		s.notifyAuthor(ctx, a, c)
	}
	return c, nil
}

func (s *CommentService) notifyAuthor(ctx context.Context, a *article.Article, c *comment.Comment) {
	if s.notifier == nil {
		return
	}
	err := s.notifier.Notify(ctx, &notifmodel.Notification{
		UserID:  a.AuthorID,
		Type:    notifmodel.TypeNewComment,
		Title:   "New comment",
		Message: fmt.Sprintf("%s commented on \"%s\"", c.AuthorName, locale.Pick(a.Title, locale.Default)),
		Link:    fmt.Sprintf("%s/news/%s#comment-%d", s.siteURL, a.Slug, c.ID),
	})
	if err != nil {
		slog.WarnContext(ctx, "failed to notify article author", "article_id", a.ID, "error", err)
	}
}

// AdminList 后台评论列表
func (s *CommentService) AdminList(ctx context.Context, status, q string, page, pageSize int) (*response.PageData, error) {
	if status != "" && !comment.ValidStatus(status) {
		return nil, response.NewInvalid("invalid status")
	}
	page, pageSize = listing.Normalize(page, pageSize)
	comments, total, err := s.repo.List(ctx, AdminQuery{
		Status: status,
		Q:      strings.TrimSpace(q),
		Offset: (page - 1) * pageSize,
		Limit:  pageSize,
	})
	if err != nil {
		return nil, response.NewInternal("failed to load comments", err)
	}
	p := listing.Paginate(total, page, pageSize)
	return &response.PageData{
		Items:      comments,
		Total:      total,
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalPages: p.TotalPages,
	}, nil
}

func (s *CommentService) load(ctx context.Context, id uint) (*comment.Comment, error) {
	c, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return nil, response.NewNotFound("comment not found")
	}
	if err != nil {
		return nil, response.NewInternal("failed to load comment", err)
	}
	return c, nil
}

// SetStatus 在四种状态间任意切换
func (s *CommentService) SetStatus(ctx context.Context, id uint, status string) (*comment.Comment, error) {
	if !comment.ValidStatus(status) {
		return nil, response.NewInvalid("invalid status")
	}
	c, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if c.Status == status {
		return c, nil
	}
	if err := s.repo.SetStatus(ctx, c, status); err != nil {
		return nil, response.NewInternal("failed to update comment", err)
	}
	c.Status = status
	return c, nil
}

// Bulk 批量修改状态，ids 去重后逐条执行
func (s *CommentService) Bulk(ctx context.Context, req BulkRequest) []BulkResult {
	ids := listing.NewSelection(req.IDs...).IDs()
	results := make([]BulkResult, 0, len(ids))
	for _, id := range ids {
		res := BulkResult{ID: id, Success: true}
		if _, err := s.SetStatus(ctx, id, req.Status); err != nil {
			res.Success = false
			var be *response.BusinessError
			if errors.As(err, &be) {
				res.Error = be.Msg
			} else {
				res.Error = err.Error()
			}
		}
		results = append(results, res)
	}
	return results
}

// Delete 删除评论及其回复
func (s *CommentService) Delete(ctx context.Context, id uint) error {
	c, err := s.load(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, c); err != nil {
		return response.NewInternal("failed to delete comment", err)
	}
	return nil
}
