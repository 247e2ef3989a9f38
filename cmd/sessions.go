package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/daepyo/internal/store"
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "Show recent lesson session events",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		events, err := s.EventRepo().QuerySessionEvents(cmd.Context(), store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}

		w := cmd.OutOrStdout()
		if len(events) == 0 {
			fmt.Fprintln(w, "No sessions recorded yet.")
			return nil
		}

		t := newTable("Time", "Session", "Action", "Progress", "Duration")
		for _, e := range events {
			t.Row(
				e.Timestamp.Local().Format(timeLayout),
				e.SessionID,
				e.Action,
				fmt.Sprintf("%d/%d", e.Completed, e.Total),
				fmt.Sprintf("%dm%02ds", e.DurationSecs/60, e.DurationSecs%60),
			)
		}
		fmt.Fprintln(w, t.Render())
		return nil
	},
}

func init() {
	sessionsCmd.Flags().IntP("limit", "n", 20, "Number of events to show")
}
