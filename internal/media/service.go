// Package media 媒体库：上传、去重、列表和删除
package media

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path"
	"path/filepath"
	"strings"

	"newsbangla24/portal/internal/listing"
	"newsbangla24/portal/internal/model/media"
	"newsbangla24/portal/internal/model/user"
	"newsbangla24/portal/pkg/response"
)

var mediaSorts = map[string]listing.LessFunc[media.MediaItem]{
	"created_at": func(a, b media.MediaItem) bool { return a.CreatedAt.Before(b.CreatedAt) },
	"size":       func(a, b media.MediaItem) bool { return a.FileSize < b.FileSize },
	"name":       func(a, b media.MediaItem) bool { return strings.ToLower(a.FileName) < strings.ToLower(b.FileName) },
}

func searchFields(m media.MediaItem) []string {
	return []string{m.FileName, m.AltText}
}

type MediaService struct {
	repo      Repository
	storage   *DiskStorage
	urlPrefix string
	maxBytes  int64
}

func NewMediaService(repo Repository, storage *DiskStorage, urlPrefix string, maxSizeMB int64) *MediaService {
	return &MediaService{
		repo:      repo,
		storage:   storage,
		urlPrefix: strings.TrimRight(urlPrefix, "/"),
		maxBytes:  maxSizeMB << 20,
	}
}

// sniff 客户端未给出类型时按内容判断
func sniff(r io.Reader, declared string) (io.Reader, string) {
	declared = strings.TrimSpace(declared)
	if declared != "" && declared != "application/octet-stream" {
		return r, declared
	}
	br := bufio.NewReaderSize(r, 512)
	head, _ := br.Peek(512)
	return br, http.DetectContentType(head)
}

// Upload 保存上传文件；本人已上传过相同内容时直接返回已有记录
func (s *MediaService) Upload(ctx context.Context, uploader uint, fileName, mimeType, altText string, r io.Reader) (*UploadResult, error) {
	fileName = filepath.Base(strings.TrimSpace(fileName))
	if fileName == "" || fileName == "." || fileName == string(filepath.Separator) {
		return nil, response.NewInvalid("file name is required")
	}

	r, mimeType = sniff(r, mimeType)
	staged, err := s.storage.Stage(r, s.maxBytes)
	if errors.Is(err, ErrTooLarge) {
		return nil, response.NewInvalid(fmt.Sprintf("file exceeds the %d MB limit", s.maxBytes>>20))
	}
	if err != nil {
		return nil, response.NewInternal("failed to save file", err)
	}
	if staged.Size == 0 {
		s.storage.Discard(staged)
		return nil, response.NewInvalid("file is empty")
	}

	own, err := s.repo.FindByHash(ctx, staged.Hash, uploader)
	if err == nil {
		s.storage.Discard(staged)
		return &UploadResult{Item: own, Existing: true}, nil
	}
	if !errors.Is(err, ErrNotFound) {
		s.storage.Discard(staged)
		return nil, response.NewInternal("failed to check media", err)
	}

	// 其他用户上传过相同内容时复用磁盘文件，只新建本人的记录
	name := staged.Hash + strings.ToLower(filepath.Ext(fileName))
	committed := false
	var finalPath, url string
	shared, err := s.repo.FindByHash(ctx, staged.Hash, 0)
	switch {
	case err == nil:
		s.storage.Discard(staged)
		finalPath, url = shared.FilePath, shared.URL
	case errors.Is(err, ErrNotFound):
		finalPath, err = s.storage.Commit(staged, name)
		if err != nil {
			return nil, response.NewInternal("failed to save file", err)
		}
		url = path.Join(s.urlPrefix, name)
		committed = true
	default:
		s.storage.Discard(staged)
		return nil, response.NewInternal("failed to check media", err)
	}

	item := &media.MediaItem{
		FileName:   fileName,
		FileHash:   staged.Hash,
		FilePath:   finalPath,
		URL:        url,
		FileSize:   staged.Size,
		MimeType:   mimeType,
		Category:   media.CategoryFor(mimeType),
		AltText:    strings.TrimSpace(altText),
		UploadedBy: uploader,
	}
	if err := s.repo.Create(ctx, item); err != nil {
		if committed {
			_ = s.storage.Remove(finalPath)
		}
		return nil, response.NewInternal("failed to save media", err)
	}

	slog.InfoContext(ctx, "media uploaded", "media_id", item.ID, "size", item.FileSize, "category", item.Category)
	return &UploadResult{Item: item}, nil
}

func (s *MediaService) list(ctx context.Context, uploader uint, q ListQuery) ([]media.MediaItem, error) {
	items, err := s.repo.List(ctx, uploader, q.Type)
	if err != nil {
		return nil, response.NewInternal("failed to load media", err)
	}
	items = listing.Filter(items, q.Q, searchFields)

	sortKey := q.Sort
	if sortKey == "" {
		sortKey = "-created_at"
	}
	return listing.Sort(items, sortKey, mediaSorts), nil
}

// OwnList 当前用户上传的媒体
func (s *MediaService) OwnList(ctx context.Context, uploader uint, q ListQuery) ([]media.MediaItem, error) {
	return s.list(ctx, uploader, q)
}

// AdminList 全站媒体，内存分页
func (s *MediaService) AdminList(ctx context.Context, q ListQuery) (*response.PageData, error) {
	items, err := s.list(ctx, 0, q)
	if err != nil {
		return nil, err
	}
	p := listing.Paginate(int64(len(items)), q.Page, q.PageSize)
	return &response.PageData{
		Items:      listing.Slice(items, p),
		Total:      int64(len(items)),
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalPages: p.TotalPages,
	}, nil
}

// Delete 上传者本人或管理员可删除
func (s *MediaService) Delete(ctx context.Context, actor Actor, id uint) error {
	item, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return response.NewNotFound("media not found")
	}
	if err != nil {
		return response.NewInternal("failed to load media", err)
	}
	if item.UploadedBy != actor.ID && actor.Role != user.RoleAdmin {
		return response.NewForbidden("you can only delete your own media")
	}

	if err := s.repo.Delete(ctx, id); err != nil && !errors.Is(err, ErrNotFound) {
		return response.NewInternal("failed to delete media", err)
	}
	// 仍有其他记录引用该文件时保留磁盘文件
	refs, err := s.repo.CountByHash(ctx, item.FileHash)
	if err != nil {
		slog.WarnContext(ctx, "failed to count media references", "media_id", id, "error", err)
		return nil
	}
	if refs > 0 {
		return nil
	}
	if err := s.storage.Remove(item.FilePath); err != nil {
		slog.WarnContext(ctx, "failed to remove media file", "media_id", id, "path", item.FilePath, "error", err)
	}
	return nil
}
