package cli

import (
	"fmt"
	"time"

	"github.com/evanmort/slate/internal/calendar"
	"github.com/evanmort/slate/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newCalendarCmd(app *App) *cobra.Command {
	var month string
	var width int

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Show the active profile's deadlines on a month grid",
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now()
			cursor := now
			if month != "" {
				m, err := time.ParseInLocation("2006-01", month, time.Local)
				if err != nil {
					return fmt.Errorf("invalid month %q, expected YYYY-MM", month)
				}
				cursor = m
			}

			g := calendar.MonthGrid(cursor, app.Tasks.List(), app.Tasks.SubjectColors(), now)
			fmt.Fprintln(cmd.OutOrStdout(), formatter.RenderMonthGrid(g, width))
			return nil
		},
	}

	cmd.Flags().StringVar(&month, "month", "", "Month to show (YYYY-MM, defaults to the current month)")
	cmd.Flags().IntVar(&width, "width", 80, "Render width in columns")

	return cmd
}
