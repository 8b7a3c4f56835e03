package util

import (
	"strings"
	"testing"
)

func TestCalculateReadingTimeShort(t *testing.T) {
	if got := CalculateReadingTime("<p>hello world</p>"); got != 1 {
		t.Errorf("短文应按 1 分钟计，得到 %d", got)
	}
}

func TestCalculateReadingTimeLong(t *testing.T) {
	// 450 个词按每分钟 200 词向上取整为 3 分钟
	html := "<article><p>" + strings.Repeat("word ", 450) + "</p></article>"
	if got := CalculateReadingTime(html); got != 3 {
		t.Errorf("450 词应为 3 分钟，得到 %d", got)
	}
}

func TestCalculateReadingTimeIgnoresMarkup(t *testing.T) {
	// 标签与属性不应计入词数
	html := `<div class="body"><img src="a.png"/><p>one two three</p></div>`
	if got := CalculateReadingTime(html); got != 1 {
		t.Errorf("期望 1 分钟，得到 %d", got)
	}
}
