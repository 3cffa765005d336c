package core

import (
	"testing"
	"time"
)

func TestWeekOf(t *testing.T) {
	cases := []struct {
		date string
		want string
	}{
		{"2024-01-15", "2024-W03"},
		{"2024-12-30", "2025-W01"}, // ISO week crosses the year boundary
		{"2021-01-01", "2020-W53"},
		{"2024-07-01", "2024-W27"},
	}
	for i, tc := range cases {
		tm, err := time.Parse("2006-01-02", tc.date)
		if err != nil {
			t.Fatalf("case %d: %v", i, err)
		}
		if got := WeekOf(tm); got != tc.want {
			t.Fatalf("case %d: got %s, want %s", i, got, tc.want)
		}
		if got := WeekOfDate(Date(tc.date)); got != tc.want {
			t.Fatalf("case %d (date): got %s, want %s", i, got, tc.want)
		}
	}
}
