package listing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID    int
	Title string
	Body  string
	At    time.Time
}

func fields(i item) []string { return []string{i.Title, i.Body} }

func sample() []item {
	return []item{
		{ID: 1, Title: "Dhaka Metro Rail", Body: "new line opens"},
		{ID: 2, Title: "Cricket World Cup", Body: "Bangladesh wins"},
		{ID: 3, Title: "বাজেট ২০২৬", Body: "অর্থনীতি"},
		{ID: 4, Title: "Stock market", Body: "DHAKA index rises"},
	}
}

func ids(items []item) []int {
	out := make([]int, 0, len(items))
	for _, i := range items {
		out = append(out, i.ID)
	}
	return out
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name string
		term string
		want []int
	}{
		{"empty term returns all", "", []int{1, 2, 3, 4}},
		{"blank term returns all", "   ", []int{1, 2, 3, 4}},
		{"case insensitive across fields", "dhaka", []int{1, 4}},
		{"upper case term", "CRICKET", []int{2}},
		{"trimmed term", "  metro ", []int{1}},
		{"bengali term", "বাজেট", []int{3}},
		{"no match", "football", []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(sample(), tt.term, fields)
			assert.Equal(t, tt.want, ids(got))
			for _, it := range got {
				assert.True(t, Matches(fields(it), tt.term))
			}
		})
	}
}

func TestFilterDoesNotAliasInput(t *testing.T) {
	in := sample()
	out := Filter(in, "", fields)
	out[0].Title = "changed"
	assert.Equal(t, "Dhaka Metro Rail", in[0].Title)
}

func TestSelectionToggleTwiceRestores(t *testing.T) {
	tests := []struct {
		name    string
		initial []uint
		toggle  uint
	}{
		{"absent id", []uint{1, 2}, 3},
		{"present id", []uint{1, 2, 3}, 2},
		{"empty selection", nil, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSelection(tt.initial...)
			before := s.IDs()

			s.Toggle(tt.toggle)
			s.Toggle(tt.toggle)

			assert.ElementsMatch(t, before, s.IDs())
			assert.Equal(t, len(before), s.Len())
		})
	}
}

func TestSelectionDedupesKeepingOrder(t *testing.T) {
	s := NewSelection[uint](3, 1, 3, 2, 1)
	assert.Equal(t, []uint{3, 1, 2}, s.IDs())
	assert.True(t, s.Has(2))

	assert.False(t, s.Toggle(1))
	assert.Equal(t, []uint{3, 2}, s.IDs())
	assert.True(t, s.Toggle(9))
	assert.Equal(t, []uint{3, 2, 9}, s.IDs())

	s.Clear()
	assert.Equal(t, 0, s.Len())
}

func TestSort(t *testing.T) {
	less := map[string]LessFunc[item]{
		"title": func(a, b item) bool { return a.Title < b.Title },
		"id":    func(a, b item) bool { return a.ID < b.ID },
	}

	assert.Equal(t, []int{2, 1, 4, 3}, ids(Sort(sample(), "title", less)))
	assert.Equal(t, []int{4, 3, 2, 1}, ids(Sort(sample(), "-id", less)))
	assert.Equal(t, []int{1, 2, 3, 4}, ids(Sort(sample(), "unknown", less)))
}

func TestSortIsStable(t *testing.T) {
	items := []item{{ID: 1, Title: "b"}, {ID: 2, Title: "a"}, {ID: 3, Title: "b"}, {ID: 4, Title: "a"}}
	less := map[string]LessFunc[item]{"title": func(a, b item) bool { return a.Title < b.Title }}

	assert.Equal(t, []int{2, 4, 1, 3}, ids(Sort(items, "title", less)))
	assert.Equal(t, []int{1, 3, 2, 4}, ids(Sort(items, "-title", less)))
}

func TestPaginate(t *testing.T) {
	tests := []struct {
		name                  string
		total                 int64
		page, size            int
		wantPage, wantSize    int
		wantOffset, wantPages int
	}{
		{"first page", 45, 1, 20, 1, 20, 0, 3},
		{"last page", 45, 3, 20, 3, 20, 40, 3},
		{"page below one", 10, 0, 5, 1, 5, 0, 2},
		{"size too large", 10, 1, 500, 1, 20, 0, 1},
		{"size zero", 0, 2, 0, 2, 20, 20, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Paginate(tt.total, tt.page, tt.size)
			assert.Equal(t, tt.wantPage, p.Page)
			assert.Equal(t, tt.wantSize, p.PageSize)
			assert.Equal(t, tt.wantOffset, p.Offset)
			assert.Equal(t, tt.wantPages, p.TotalPages)
		})
	}
}

func TestSlice(t *testing.T) {
	items := sample()
	assert.Equal(t, []int{3, 4}, ids(Slice(items, Paginate(4, 2, 2))))
	assert.Empty(t, Slice(items, Paginate(4, 3, 2)))
}

func TestBuildMonth(t *testing.T) {
	loc := time.UTC
	items := []item{
		{ID: 1, At: time.Date(2026, 10, 14, 15, 0, 0, 0, loc)},
		{ID: 2, At: time.Date(2026, 10, 14, 9, 0, 0, 0, loc)},
		{ID: 3, At: time.Date(2026, 10, 31, 23, 59, 0, 0, loc)},
		{ID: 4, At: time.Date(2026, 11, 1, 0, 0, 0, 0, loc)},
		{ID: 5, At: time.Date(2025, 10, 14, 0, 0, 0, 0, loc)},
	}

	days := BuildMonth(2026, time.October, loc, items, func(i item) time.Time { return i.At })
	require.Len(t, days, 31)

	assert.Equal(t, 1, days[0].Day)
	assert.Empty(t, days[0].Items)
	assert.Equal(t, []int{2, 1}, ids(days[13].Items))
	assert.Equal(t, []int{3}, ids(days[30].Items))

	total := 0
	for _, d := range days {
		total += len(d.Items)
	}
	assert.Equal(t, 3, total)
}

func TestBuildMonthLeapFebruary(t *testing.T) {
	days := BuildMonth[item](2028, time.February, nil, nil, func(i item) time.Time { return i.At })
	assert.Len(t, days, 29)
}

func TestContainsPattern(t *testing.T) {
	tests := []struct {
		name string
		term string
		want string
	}{
		{"plain word", "padma", "%padma%"},
		{"trims spaces", "  padma  ", "%padma%"},
		{"underscore is literal", "a_b", `%a\_b%`},
		{"percent is literal", "50%", `%50\%%`},
		{"lone wildcard", "%", `%\%%`},
		{"backslash escaped first", `a\_`, `%a\\\_%`},
		{"bengali", "বাজেট", "%বাজেট%"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ContainsPattern(tt.term))
		})
	}
}
