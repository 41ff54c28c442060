// Package media 媒体库模型
package media

import (
	"strings"
	"time"
)

// 媒体类别
const (
	CategoryImage    = "image"
	CategoryVideo    = "video"
	CategoryAudio    = "audio"
	CategoryDocument = "document"
	CategoryOther    = "other"
)

// MediaItem 上传的媒体文件，同一上传者按 sha256 去重，不同上传者共享磁盘文件
type MediaItem struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	FileName   string    `gorm:"type:varchar(255);not null" json:"file_name"`
	FileHash   string    `gorm:"type:char(64);uniqueIndex:idx_media_hash_uploader;not null" json:"file_hash"`
	FilePath   string    `gorm:"type:varchar(500);not null" json:"-"`
	URL        string    `gorm:"type:varchar(500);not null" json:"url"`
	FileSize   int64     `gorm:"not null" json:"file_size"`
	MimeType   string    `gorm:"type:varchar(100)" json:"mime_type"`
	Category   string    `gorm:"type:varchar(20);index" json:"category"`
	AltText    string    `gorm:"type:varchar(500)" json:"alt_text"`
	UploadedBy uint      `gorm:"not null;index;uniqueIndex:idx_media_hash_uploader" json:"uploaded_by"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// CategoryFor 根据 MIME 类型得到媒体类别
func CategoryFor(mimeType string) string {
	mt := strings.ToLower(mimeType)
	if i := strings.Index(mt, ";"); i >= 0 {
		mt = strings.TrimSpace(mt[:i])
	}
	switch {
	case strings.HasPrefix(mt, "image/"):
		return CategoryImage
	case strings.HasPrefix(mt, "video/"):
		return CategoryVideo
	case strings.HasPrefix(mt, "audio/"):
		return CategoryAudio
	case mt == "application/pdf",
		strings.HasPrefix(mt, "text/"),
		strings.Contains(mt, "msword"),
		strings.Contains(mt, "officedocument"),
		strings.Contains(mt, "opendocument"):
		return CategoryDocument
	}
	return CategoryOther
}
