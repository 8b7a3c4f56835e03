package util

import (
	"testing"
	"time"
)

func TestMonthOf(t *testing.T) {
	// 东八区的 1 月 1 日凌晨换算到 UTC 仍属于上一年 12 月
	loc := time.FixedZone("CST", 8*3600)
	m := MonthOf(time.Date(2025, 1, 1, 5, 0, 0, 0, loc))
	if m.Year != 2024 || m.Month != time.December {
		t.Errorf("期望 2024-12，得到 %v", m)
	}
}

func TestMonthString(t *testing.T) {
	m := Month{Year: 2025, Month: time.March}
	if got := m.String(); got != "2025-03" {
		t.Errorf("期望 2025-03，得到 %s", got)
	}
}

func TestSortMonths(t *testing.T) {
	months := []Month{
		{Year: 2025, Month: time.March},
		{Year: 2024, Month: time.December},
		{Year: 2025, Month: time.January},
	}
	SortMonths(months)

	want := []string{"2024-12", "2025-01", "2025-03"}
	for i, m := range months {
		if m.String() != want[i] {
			t.Errorf("位置 %d 期望 %s，得到 %s", i, want[i], m.String())
		}
	}
}

func TestMonthBefore(t *testing.T) {
	early := Month{Year: 2024, Month: time.December}
	late := Month{Year: 2025, Month: time.January}
	if !early.Before(late) {
		t.Error("2024-12 应早于 2025-01")
	}
	if late.Before(early) {
		t.Error("2025-01 不应早于 2024-12")
	}
}
