package listing

import (
	"slices"
	"strings"
)

// LessFunc 升序比较函数
type LessFunc[T any] func(a, b T) bool

// Sort 按命名的排序键稳定排序，返回新切片
// key 以 "-" 开头表示降序；未知的 key 保持原顺序
func Sort[T any](items []T, key string, less map[string]LessFunc[T]) []T {
	out := make([]T, len(items))
	copy(out, items)

	desc := strings.HasPrefix(key, "-")
	fn, ok := less[strings.TrimPrefix(key, "-")]
	if !ok {
		return out
	}

	slices.SortStableFunc(out, func(a, b T) int {
		x, y := a, b
		if desc {
			x, y = b, a
		}
		switch {
		case fn(x, y):
			return -1
		case fn(y, x):
			return 1
		default:
			return 0
		}
	})
	return out
}
