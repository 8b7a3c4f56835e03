package util

import (
	"fmt"
	"sort"
	"time"
)

// Month 表示一个自然月，作为所有按月聚合的分桶键使用
type Month struct {
	Year  int
	Month time.Month
}

// MonthOf 根据时间计算其所属的自然月
func MonthOf(t time.Time) Month {
	u := t.UTC()
	return Month{Year: u.Year(), Month: u.Month()}
}

// String 输出 "YYYY-MM" 格式，仅在序列化边界调用
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

// Before 按时间先后比较两个月份
func (m Month) Before(o Month) bool {
	if m.Year != o.Year {
		return m.Year < o.Year
	}
	return m.Month < o.Month
}

// SortMonths 将月份键按时间顺序排序
func SortMonths(months []Month) {
	sort.Slice(months, func(i, j int) bool {
		return months[i].Before(months[j])
	})
}
