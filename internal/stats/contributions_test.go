package stats

import (
	"math"
	"testing"
	"time"

	"github.com/prdeck/prdeck/models"
)

func day(y int, m time.Month, d, count int) models.ContributionDay {
	return models.ContributionDay{Date: time.Date(y, m, d, 0, 0, 0, 0, time.UTC), Count: count}
}

func TestSummarize(t *testing.T) {
	// 2025-03-12 is a Wednesday; the week began Sunday 2025-03-09.
	today := time.Date(2025, time.March, 12, 15, 30, 0, 0, time.UTC)
	cal := &models.ContributionCalendar{
		Weeks: []models.ContributionWeek{
			{Days: []models.ContributionDay{
				day(2024, time.December, 30, 9), // prior year, ignored
				day(2025, time.January, 5, 4),
				day(2025, time.February, 20, 6),
			}},
			{Days: []models.ContributionDay{
				day(2025, time.March, 3, 2), // this month, before this week
				day(2025, time.March, 9, 1),
				day(2025, time.March, 12, 3),
				day(2025, time.March, 13, 7), // future padding, ignored
			}},
		},
	}

	s := Summarize(cal, today)
	if s.Year.Total != 16 || s.Year.Days != 5 {
		t.Errorf("year = %+v, want total 16 over 5 days", s.Year)
	}
	if s.Month.Total != 6 || s.Month.Days != 3 {
		t.Errorf("month = %+v, want total 6 over 3 days", s.Month)
	}
	if s.Week.Total != 4 || s.Week.Days != 2 {
		t.Errorf("week = %+v, want total 4 over 2 days", s.Week)
	}
	if got := s.Week.Average(); math.Abs(got-2.0) > 1e-9 {
		t.Errorf("week average = %v, want 2.0", got)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	var zero Summary
	if got := Summarize(nil, time.Now()); got != zero {
		t.Errorf("nil calendar = %+v, want zero", got)
	}
	if avg := (Window{}).Average(); avg != 0 {
		t.Errorf("empty window average = %v, want 0", avg)
	}
}
