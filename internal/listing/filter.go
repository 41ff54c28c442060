// Package listing 提供列表页共用的纯函数：搜索过滤、多选、排序、分页和日历视图
package listing

import "strings"

// Filter 返回任一字段包含 term 的元素（不区分大小写），保持原顺序
// term 为空（去掉首尾空白后）时返回全部元素
func Filter[T any](items []T, term string, fields func(T) []string) []T {
	needle := strings.ToLower(strings.TrimSpace(term))
	if needle == "" {
		out := make([]T, len(items))
		copy(out, items)
		return out
	}

	out := make([]T, 0, len(items))
	for _, item := range items {
		if Matches(fields(item), needle) {
			out = append(out, item)
		}
	}
	return out
}

// Matches 判断字段中是否有一个包含 term（不区分大小写）
func Matches(fields []string, term string) bool {
	needle := strings.ToLower(strings.TrimSpace(term))
	if needle == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ContainsPattern 把 term 转成 "包含" 语义的 LIKE 模式，配合 ESCAPE '\' 使用
// 与 Matches 一致，先去掉首尾空白；用户输入的 % 和 _ 按字面匹配
func ContainsPattern(term string) string {
	return "%" + likeEscaper.Replace(strings.TrimSpace(term)) + "%"
}
