// Package stats derives summary figures from a contribution calendar.
package stats

import (
	"time"

	"github.com/prdeck/prdeck/models"
)

// Window is a running total over part of the calendar.
type Window struct {
	Total int `json:"total"`
	Days  int `json:"days"`
}

// Average returns contributions per day, 0 when the window is empty.
func (w Window) Average() float64 {
	if w.Days == 0 {
		return 0
	}
	return float64(w.Total) / float64(w.Days)
}

// Summary holds the year-, month-, and week-to-date windows for a
// calendar, relative to a reference day.
type Summary struct {
	Year  Window
	Month Window
	Week  Window
}

// Summarize accumulates the calendar's days into to-date windows ending
// at today. Days after today are padding emitted by the calendar API and
// are skipped. The week starts on Sunday.
func Summarize(cal *models.ContributionCalendar, today time.Time) Summary {
	var s Summary
	if cal == nil {
		return s
	}
	today = time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	weekStart := today.AddDate(0, 0, -int(today.Weekday()))
	for _, day := range cal.AllDays() {
		d := day.Date
		if d.After(today) {
			continue
		}
		if d.Year() == today.Year() {
			s.Year.Total += day.Count
			s.Year.Days++
			if d.Month() == today.Month() {
				s.Month.Total += day.Count
				s.Month.Days++
			}
		}
		if !d.Before(weekStart) {
			s.Week.Total += day.Count
			s.Week.Days++
		}
	}
	return s
}
