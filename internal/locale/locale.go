// Package locale 处理孟加拉语/英语双语内容
package locale

import (
	"strings"

	"github.com/gin-gonic/gin"
)

type Lang string

const (
	Bengali Lang = "bn"
	English Lang = "en"

	Default = Bengali

	// CookieName 前端保存语言偏好的 cookie
	CookieName = "lang"
)

// Localized 双语文本，数据库中按前缀展开为 xxx_bn / xxx_en 两列
type Localized struct {
	Bn string `gorm:"type:text" json:"bn"`
	En string `gorm:"type:text" json:"en"`
}

// Get 取指定语言
func (l Localized) Get(lang Lang) string {
	if lang == English {
		return l.En
	}
	return l.Bn
}

// IsEmpty 两种语言都为空
func (l Localized) IsEmpty() bool {
	return strings.TrimSpace(l.Bn) == "" && strings.TrimSpace(l.En) == ""
}

// Fields 两种语言的文本，供 listing.Filter 使用
func (l Localized) Fields() []string {
	return []string{l.Bn, l.En}
}

// Pick 取指定语言的文本，为空时回退到另一种语言
func Pick(l Localized, lang Lang) string {
	if v := l.Get(lang); strings.TrimSpace(v) != "" {
		return v
	}
	return l.Get(lang.Other())
}

// Other 另一种语言
func (lang Lang) Other() Lang {
	if lang == English {
		return Bengali
	}
	return English
}

// Parse 解析语言代码，支持 "en-US"、"bn-BD" 等形式
func Parse(s string) (Lang, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if i := strings.IndexAny(s, "-_"); i > 0 {
		s = s[:i]
	}
	switch s {
	case "bn":
		return Bengali, true
	case "en":
		return English, true
	}
	return Default, false
}

// FromRequest 按 ?lang= 、lang cookie、Accept-Language 的顺序确定语言，默认孟加拉语
func FromRequest(c *gin.Context) Lang {
	if lang, ok := Parse(c.Query("lang")); ok {
		return lang
	}
	if v, err := c.Cookie(CookieName); err == nil {
		if lang, ok := Parse(v); ok {
			return lang
		}
	}
	for _, part := range strings.Split(c.GetHeader("Accept-Language"), ",") {
		tag, _, _ := strings.Cut(part, ";")
		if lang, ok := Parse(tag); ok {
			return lang
		}
	}
	return Default
}
