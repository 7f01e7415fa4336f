package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/prdeck/prdeck/internal/provider"
)

var notificationsPage int

var notificationsCmd = &cobra.Command{
	Use:   "notifications",
	Short: "List unread notifications",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, prov, err := loadProvider()
		if err != nil {
			return err
		}
		lister, ok := prov.(provider.NotificationLister)
		if !ok {
			return fmt.Errorf("notifications: %w", provider.ErrUnsupported)
		}

		notifs, err := lister.Notifications(cmd.Context(), notificationsPage)
		if err != nil {
			return err
		}
		if format == "json" {
			return printJSON(notifs)
		}
		if len(notifs) == 0 {
			fmt.Println("Inbox zero.")
			return nil
		}
		for _, n := range notifs {
			state := n.State
			if state == "" {
				state = "-"
			}
			fmt.Printf("%-30s %-12s %-8s %-16s %s\n", n.Repo, n.Kind, state, n.Reason, n.Title)
		}
		return nil
	},
}

func init() {
	notificationsCmd.Flags().IntVar(&notificationsPage, "page", 1, "result page to show")
}
