package models

import "time"

// ContributionDay is one cell of the contribution calendar grid. Color
// is the hex cell colour assigned by the platform. Calendars pad the
// current week, so a day may be dated after "today".
type ContributionDay struct {
	Date  time.Time `json:"date"`
	Color string    `json:"color"`
	Count int       `json:"count"`
}

// ContributionWeek is one column of the calendar, Sunday first.
type ContributionWeek struct {
	FirstDay time.Time         `json:"first_day"`
	Days     []ContributionDay `json:"days"`
}

// ContributionCalendar is roughly the last year of contribution activity
// for one user.
type ContributionCalendar struct {
	Total int                `json:"total"`
	Weeks []ContributionWeek `json:"weeks"`
}

// AllDays returns every cell of the calendar in week-major order.
func (c *ContributionCalendar) AllDays() []ContributionDay {
	var days []ContributionDay
	for _, w := range c.Weeks {
		days = append(days, w.Days...)
	}
	return days
}
