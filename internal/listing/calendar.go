package listing

import (
	"slices"
	"time"
)

// CalendarDay 日历中的一天
type CalendarDay[T any] struct {
	Date  time.Time `json:"date"`
	Day   int       `json:"day"`
	Items []T       `json:"items"`
}

// BuildMonth 生成某月的日历，每天包含当天的条目（按时间排序）
// dateOf 返回条目的日期，按其自身时区判断所属日期；不在该月的条目被忽略
func BuildMonth[T any](year int, month time.Month, loc *time.Location, items []T, dateOf func(T) time.Time) []CalendarDay[T] {
	if loc == nil {
		loc = time.UTC
	}
	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	days := make([]CalendarDay[T], daysInMonth)
	for i := range days {
		days[i] = CalendarDay[T]{
			Date:  first.AddDate(0, 0, i),
			Day:   i + 1,
			Items: []T{},
		}
	}

	for _, item := range items {
		t := dateOf(item).In(loc)
		if t.Year() != year || t.Month() != month {
			continue
		}
		d := &days[t.Day()-1]
		d.Items = append(d.Items, item)
	}

	for i := range days {
		slices.SortStableFunc(days[i].Items, func(a, b T) int {
			return dateOf(a).Compare(dateOf(b))
		})
	}
	return days
}
