package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/prdeck/prdeck/internal/stats"
)

var contributionsCmd = &cobra.Command{
	Use:     "contributions [login]",
	Aliases: []string{"grass"},
	Short:   "Show a contribution calendar with to-date totals",
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		_, prov, err := loadProvider()
		if err != nil {
			return err
		}

		login := ""
		if len(args) == 1 {
			login = args[0]
		} else {
			login, err = prov.Viewer(ctx)
			if err != nil {
				return err
			}
		}

		cal, err := prov.ContributionCalendar(ctx, login)
		if err != nil {
			return err
		}
		summary := stats.Summarize(cal, time.Now())

		if format == "json" {
			return printJSON(struct {
				Login string       `json:"login"`
				Total int          `json:"total"`
				Year  stats.Window `json:"year_to_date"`
				Month stats.Window `json:"month_to_date"`
				Week  stats.Window `json:"week_to_date"`
			}{login, cal.Total, summary.Year, summary.Month, summary.Week})
		}

		fmt.Printf("%s: %d contributions in the last year\n\n", login, cal.Total)

		var rows [7]strings.Builder
		for _, week := range cal.Weeks {
			for d := 0; d < 7; d++ {
				if d < len(week.Days) {
					day := week.Days[d]
					cell := "■"
					if day.Color != "" {
						cell = lipgloss.NewStyle().Foreground(lipgloss.Color(day.Color)).Render("■")
					}
					rows[d].WriteString(cell)
				} else {
					rows[d].WriteString(" ")
				}
			}
		}
		for d := range rows {
			fmt.Println(rows[d].String())
		}

		fmt.Printf("\nyear to date:  %5d (%.1f/day)\n", summary.Year.Total, summary.Year.Average())
		fmt.Printf("month to date: %5d (%.1f/day)\n", summary.Month.Total, summary.Month.Average())
		fmt.Printf("week to date:  %5d (%.1f/day)\n", summary.Week.Total, summary.Week.Average())
		return nil
	},
}
