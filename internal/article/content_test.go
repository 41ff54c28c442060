package article

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripHTML(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain text", "  ঢাকায়   বৃষ্টি  ", "ঢাকায় বৃষ্টি"},
		{"paragraphs", "<p>First <b>bold</b></p><p>Second</p>", "First bold Second"},
		{"script dropped", "<p>Body</p><script>alert(1)</script>", "Body"},
		{"entities decoded", "<p>Tom &amp; Jerry</p>", "Tom & Jerry"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripHTML(tt.in))
		})
	}
}

func TestExcerpt(t *testing.T) {
	short := "<p>Padma bridge opens to traffic</p>"
	assert.Equal(t, "Padma bridge opens to traffic", Excerpt(short))

	long := "<p>" + strings.Repeat("word ", 45) + "</p>"
	got := Excerpt(long)
	assert.True(t, strings.HasSuffix(got, "…"))
	assert.Len(t, strings.Fields(strings.TrimSuffix(got, "…")), 40)
}

func TestReadingMinutes(t *testing.T) {
	assert.Equal(t, 1, ReadingMinutes(""))
	assert.Equal(t, 1, ReadingMinutes(strings.Repeat("a ", 200)))
	assert.Equal(t, 3, ReadingMinutes(strings.Repeat("a ", 401)))
	// 取两种语言中较长的一篇
	assert.Equal(t, 2, ReadingMinutes(strings.Repeat("a ", 10), strings.Repeat("b ", 250)))
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Dhaka Metro Rail: Phase 2!", "dhaka-metro-rail-phase-2"},
		{"  --Already--slugged--  ", "already-slugged"},
		{"ঢাকায় মেট্রোরেল", ""},
		{"BPL 2026 ক্রিকেট final", "bpl-2026-final"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.in))
		})
	}

	long := Slugify(strings.Repeat("abc ", 40))
	assert.LessOrEqual(t, len(long), maxSlugLength)
	assert.False(t, strings.HasSuffix(long, "-"))
}
