package article

import (
	"strings"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/net/html"
)

const (
	excerptWords   = 40
	wordsPerMinute = 200
	maxSlugLength  = 80
)

// StripHTML 提取正文中的纯文本，script/style 内容丢弃
func StripHTML(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return strings.Join(strings.Fields(s), " ")
	}
	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		return strings.Join(strings.Fields(s), " ")
	}

	var b strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			b.WriteString(n.Data)
			b.WriteByte(' ')
			return
		case html.ElementNode:
			switch n.Data {
			case "script", "style", "noscript":
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return strings.Join(strings.Fields(b.String()), " ")
}

// Excerpt 取正文前 40 个词，超出时以省略号结尾
func Excerpt(content string) string {
	words := strings.Fields(StripHTML(content))
	if len(words) <= excerptWords {
		return strings.Join(words, " ")
	}
	return strings.Join(words[:excerptWords], " ") + "…"
}

// ReadingMinutes 按每分钟 200 词估算，至少 1 分钟
func ReadingMinutes(contents ...string) int {
	words := 0
	for _, c := range contents {
		if n := len(strings.Fields(StripHTML(c))); n > words {
			words = n
		}
	}
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		return 1
	}
	return minutes
}

// Slugify 只保留 ASCII 字母数字，其余字符折叠为连字符
// 纯孟加拉语标题返回空串，由调用方生成随机 slug
func Slugify(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		switch {
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			b.WriteRune(r)
			dash = false
		case !dash && b.Len() > 0:
			b.WriteByte('-')
			dash = true
		}
	}
	slug := strings.Trim(b.String(), "-")
	if len(slug) > maxSlugLength {
		slug = strings.TrimRight(slug[:maxSlugLength], "-")
	}
	return slug
}

func randomSlug() string {
	return "article-" + uuid.New().String()[:8]
}
