package locale

import (
	"fmt"
	"strings"
	"time"
)

var bengaliDigits = [10]rune{'০', '১', '২', '৩', '৪', '৫', '৬', '৭', '৮', '৯'}

var bengaliMonths = [12]string{
	"জানুয়ারি", "ফেব্রুয়ারি", "মার্চ", "এপ্রিল", "মে", "জুন",
	"জুলাই", "আগস্ট", "সেপ্টেম্বর", "অক্টোবর", "নভেম্বর", "ডিসেম্বর",
}

// BengaliDigits 将 ASCII 数字替换为孟加拉数字，其他字符保持不变
func BengaliDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s) * 3)
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(bengaliDigits[r-'0'])
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// FormatNumber 按语言格式化整数
func FormatNumber(n int64, lang Lang) string {
	s := fmt.Sprintf("%d", n)
	if lang == Bengali {
		return BengaliDigits(s)
	}
	return s
}

// FormatDate bn: "১৪ অক্টোবর ২০২৬"，en: "October 14, 2026"
func FormatDate(t time.Time, lang Lang) string {
	if lang == English {
		return t.Format("January 2, 2006")
	}
	return fmt.Sprintf("%s %s %s",
		BengaliDigits(fmt.Sprint(t.Day())),
		bengaliMonths[t.Month()-1],
		BengaliDigits(fmt.Sprint(t.Year())),
	)
}

// ReadingTime "৫ মিনিট" / "5 min read"
func ReadingTime(minutes int, lang Lang) string {
	if lang == English {
		return fmt.Sprintf("%d min read", minutes)
	}
	return BengaliDigits(fmt.Sprint(minutes)) + " মিনিট"
}
