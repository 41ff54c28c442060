package media

import "newsbangla24/portal/internal/model/media"

// UploadResult 上传结果，Existing 表示命中已有文件
type UploadResult struct {
	Item     *media.MediaItem `json:"item"`
	Existing bool             `json:"existing"`
}

// ListQuery 媒体库查询
type ListQuery struct {
	Type     string
	Q        string
	Sort     string
	Page     int
	PageSize int
}

// Actor 当前操作者
type Actor struct {
	ID   uint
	Role string
}
