package util

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const wordsPerMinute = 200

// CalculateReadingTime 根据 HTML 正文估算阅读分钟数，最少为 1 分钟
func CalculateReadingTime(htmlContent string) int {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return 1
	}

	words := len(strings.Fields(doc.Text()))
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}
