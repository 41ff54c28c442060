package article

import (
	"context"
	"fmt"
	"log/slog"

	"newsbangla24/portal/internal/event"
	"newsbangla24/portal/internal/locale"
	"newsbangla24/portal/internal/model/article"
	notifmodel "newsbangla24/portal/internal/model/notification"
	"newsbangla24/portal/pkg/email"
)

// 审核与发布的副作用均为尽力而为，失败只记录日志，不影响状态变更

func (s *ArticleService) link(a *article.Article) string {
	return fmt.Sprintf("%s/news/%s", s.siteURL, a.Slug)
}

func (s *ArticleService) publicTitle(a *article.Article) string {
	return locale.Pick(a.Title, locale.Default)
}

func (s *ArticleService) notify(ctx context.Context, a *article.Article, typ, title, message string) {
	err := s.notifier.Notify(ctx, &notifmodel.Notification{
		UserID:  a.AuthorID,
		Type:    typ,
		Title:   title,
		Message: message,
		Link:    s.link(a),
	})
	if err != nil {
		slog.WarnContext(ctx, "failed to notify author", "article_id", a.ID, "type", typ, "error", err)
	}
}

func (s *ArticleService) mailReview(ctx context.Context, a *article.Article, approved bool) {
	authors, err := s.repo.AuthorsByID(ctx, []uint{a.AuthorID})
	if err != nil {
		slog.WarnContext(ctx, "failed to load author for review email", "article_id", a.ID, "error", err)
		return
	}
	author, ok := authors[a.AuthorID]
	if !ok || author.Email == "" {
		return
	}

	subject := "Your article was approved"
	if !approved {
		subject = "Your article needs changes"
	}
	msg, err := email.RenderMessage(author.Email, subject, email.ReviewResultTemplate, email.ReviewResultData{
		Name:     author.Name,
		Title:    s.publicTitle(a),
		Approved: approved,
		Note:     a.ReviewNote,
		Link:     s.link(a),
	})
	if err == nil {
		err = s.mailer.Send(msg)
	}
	if err != nil {
		slog.WarnContext(ctx, "failed to send review email", "article_id", a.ID, "error", err)
	}
}

func (s *ArticleService) publishEvent(ctx context.Context, typ string, a *article.Article) {
	evt := event.ArticleEvent{
		Type:       typ,
		ArticleID:  a.ID,
		Slug:       a.Slug,
		TitleBn:    a.Title.Bn,
		TitleEn:    a.Title.En,
		CategoryID: a.CategoryID,
		AuthorID:   a.AuthorID,
		URL:        s.link(a),
		Timestamp:  s.clock.Now(),
	}
	if a.PublishedAt != nil {
		evt.PublishedAt = *a.PublishedAt
	}
	if err := s.events.Publish(ctx, evt); err != nil {
		slog.WarnContext(ctx, "failed to publish article event", "article_id", a.ID, "type", typ, "error", err)
	}
}

// onApproved 审核通过：通知、邮件，立即发布时再发事件
func (s *ArticleService) onApproved(ctx context.Context, a *article.Article) {
	title := s.publicTitle(a)
	if a.Status == article.StatusScheduled {
		s.notify(ctx, a, notifmodel.TypeArticleApproved, "Article approved",
			fmt.Sprintf("\"%s\" was approved and will be published on %s", title, locale.FormatDate(*a.ScheduledAt, locale.English)))
	} else {
		s.notify(ctx, a, notifmodel.TypeArticleApproved, "Article published",
			fmt.Sprintf("\"%s\" was approved and is now live", title))
		s.publishEvent(ctx, event.ArticlePublished, a)
	}
	s.mailReview(ctx, a, true)
}

func (s *ArticleService) onRejected(ctx context.Context, a *article.Article) {
	s.notify(ctx, a, notifmodel.TypeArticleRejected, "Article needs changes",
		fmt.Sprintf("\"%s\" was rejected: %s", s.publicTitle(a), a.ReviewNote))
	s.mailReview(ctx, a, false)
}

// onPublished 定时发布或批量发布
func (s *ArticleService) onPublished(ctx context.Context, a *article.Article) {
	s.notify(ctx, a, notifmodel.TypeArticlePublished, "Article published",
		fmt.Sprintf("\"%s\" is now live", s.publicTitle(a)))
	s.publishEvent(ctx, event.ArticlePublished, a)
}
