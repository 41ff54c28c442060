package listing

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Page 分页参数
type Page struct {
	Page       int
	PageSize   int
	Offset     int
	TotalPages int
}

// Normalize 规范化页码和每页数量
// page < 1 时取 1；pageSize 不在 1..100 之间时取 20
func Normalize(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > MaxPageSize {
		pageSize = DefaultPageSize
	}
	return page, pageSize
}

// Paginate 计算偏移量与总页数
func Paginate(total int64, page, pageSize int) Page {
	page, pageSize = Normalize(page, pageSize)
	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))
	return Page{
		Page:       page,
		PageSize:   pageSize,
		Offset:     (page - 1) * pageSize,
		TotalPages: totalPages,
	}
}

// Slice 对内存切片分页
func Slice[T any](items []T, p Page) []T {
	if p.Offset >= len(items) {
		return []T{}
	}
	end := p.Offset + p.PageSize
	if end > len(items) {
		end = len(items)
	}
	return items[p.Offset:end]
}
