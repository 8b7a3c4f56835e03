package util

import (
	"crypto/rand"
	"math/big"
	"regexp"
	"strings"
	"unicode"
)

// GenerateOTP 生成指定位数的数字验证码
func GenerateOTP(length int) string {
	var sb strings.Builder
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			sb.WriteByte('0')
			continue
		}
		sb.WriteString(n.String())
	}
	return sb.String()
}

// Capitalize 首字母大写
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

var slugInvalidChars = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify 将标题归一化为 URL slug
func Slugify(s string) string {
	slug := strings.ToLower(strings.TrimSpace(s))
	slug = slugInvalidChars.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}
