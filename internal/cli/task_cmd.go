package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/evanmort/slate/internal/cli/formatter"
	"github.com/evanmort/slate/internal/domain"
	"github.com/evanmort/slate/internal/query"
	"github.com/evanmort/slate/internal/reminder"
	"github.com/evanmort/slate/internal/service"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// resolveTaskID matches an exact ID first, then a unique prefix.
func resolveTaskID(app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("task ID is required")
	}

	tasks := app.Tasks.List()
	for _, t := range tasks {
		if t.ID == input {
			return t.ID, nil
		}
	}

	var matches []string
	for _, t := range tasks {
		if strings.HasPrefix(t.ID, input) {
			matches = append(matches, t.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("task not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("task ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

// optionalInt returns the flag's value only when it was set on the
// command line, so unset flags stay distinguishable from zero.
func optionalInt(fs *pflag.FlagSet, name string) (*int, error) {
	if !fs.Changed(name) {
		return nil, nil
	}
	v, err := fs.GetInt(name)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func optionalString(fs *pflag.FlagSet, name string) (*string, error) {
	if !fs.Changed(name) {
		return nil, nil
	}
	v, err := fs.GetString(name)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func parseDeadline(raw string) (time.Time, error) {
	d, err := time.ParseInLocation(domain.DateFormat, raw, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid deadline %q, expected %s", raw, domain.DateFormat)
	}
	return d, nil
}

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage assessments",
	}

	cmd.AddCommand(
		newTaskAddCmd(app),
		newTaskListCmd(app),
		newTaskDoneCmd(app),
		newTaskEditCmd(app),
		newTaskRemoveCmd(app),
	)

	return cmd
}

func newTaskAddCmd(app *App) *cobra.Command {
	var subject, title, due, notes, color string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an assessment to the active profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			in := service.TaskInput{
				Subject:     subject,
				Title:       title,
				Notes:       notes,
				PickedColor: color,
			}

			d, err := parseDeadline(due)
			if err != nil {
				return err
			}
			in.Deadline = d

			w, err := optionalInt(cmd.Flags(), "weight")
			if err != nil {
				return err
			}
			in.Weighting = w

			t, err := app.Tasks.Add(in)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added %s: %s (%s)\n", t.Subject, t.Title, t.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "", "Subject the assessment belongs to")
	cmd.Flags().StringVar(&title, "title", "", "Assessment title")
	cmd.Flags().StringVar(&due, "due", "", "Deadline (YYYY-MM-DD)")
	cmd.Flags().Int("weight", 0, "Weighting percentage (0-100)")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-form notes")
	cmd.Flags().StringVar(&color, "color", "", "Hex color for a new subject")
	cmd.MarkFlagRequired("subject")
	cmd.MarkFlagRequired("title")
	cmd.MarkFlagRequired("due")

	return cmd
}

func newTaskListCmd(app *App) *cobra.Command {
	var tab, search, subject, sortBy string
	var desc bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List assessments in the active profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			q := query.Default()
			switch tab {
			case "active":
				q.Tab = query.TabActive
			case "completed":
				q.Tab = query.TabCompleted
			case "all":
				q.Tab = query.TabAll
			default:
				return fmt.Errorf("unknown tab %q, expected active, completed or all", tab)
			}

			switch sortBy {
			case "subject":
				q.SortCol = query.SortBySubject
			case "title":
				q.SortCol = query.SortByTitle
			case "deadline":
				q.SortCol = query.SortByDeadline
			case "weighting":
				q.SortCol = query.SortByWeighting
			default:
				return fmt.Errorf("unknown sort column %q", sortBy)
			}

			q.Search = search
			q.Subject = subject
			q.SortDesc = desc

			tasks := app.Tasks.List()
			now := time.Now()

			if banner := formatter.Banner(reminder.Evaluate(tasks, now)); banner != "" {
				fmt.Fprintln(cmd.OutOrStdout(), banner)
				fmt.Fprintln(cmd.OutOrStdout())
			}

			visible := query.Visible(tasks, q)
			if len(visible) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No assessments.")
				return nil
			}

			colors := app.Tasks.SubjectColors()
			rows := make([][]string, 0, len(visible))
			for _, t := range visible {
				rows = append(rows, []string{
					formatter.StatusIcon(t.Completed),
					formatter.SubjectTag(t.Subject, colors[t.Subject]),
					t.Title,
					formatter.Date(t.Deadline),
					formatter.DueLabelStyled(&t, now),
					formatter.Weight(t.Weighting),
					t.ID,
				})
			}

			table := formatter.RenderTable(
				[]string{"", "SUBJECT", "TITLE", "DEADLINE", "DUE", "WEIGHT", "ID"},
				rows,
			)
			fmt.Fprintln(cmd.OutOrStdout(), table)
			return nil
		},
	}

	cmd.Flags().StringVar(&tab, "tab", "active", "Which tab to show: active, completed or all")
	cmd.Flags().StringVar(&search, "search", "", "Case-insensitive text filter")
	cmd.Flags().StringVar(&subject, "subject", "", "Only show this subject")
	cmd.Flags().StringVar(&sortBy, "sort", "deadline", "Sort column: subject, title, deadline or weighting")
	cmd.Flags().BoolVar(&desc, "desc", false, "Sort descending")

	return cmd
}

func newTaskDoneCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "done <id>",
		Short: "Toggle an assessment's completion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveTaskID(app, args[0])
			if err != nil {
				return err
			}
			if err := app.Tasks.ToggleCompletion(id); err != nil {
				return err
			}
			t, _ := app.Tasks.Get(id)
			state := "pending"
			if t.Completed {
				state = "completed"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Marked %s: %s as %s\n", t.Subject, t.Title, state)
			return nil
		},
	}
}

func newTaskEditCmd(app *App) *cobra.Command {
	var clearWeight bool
	var color string

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Update fields of an assessment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveTaskID(app, args[0])
			if err != nil {
				return err
			}

			patch := service.TaskPatch{
				ClearWeighting: clearWeight,
				PickedColor:    color,
			}

			fs := cmd.Flags()
			if patch.Subject, err = optionalString(fs, "subject"); err != nil {
				return err
			}
			if patch.Title, err = optionalString(fs, "title"); err != nil {
				return err
			}
			if patch.Notes, err = optionalString(fs, "notes"); err != nil {
				return err
			}
			if patch.Weighting, err = optionalInt(fs, "weight"); err != nil {
				return err
			}
			if due, err := optionalString(fs, "due"); err != nil {
				return err
			} else if due != nil {
				d, err := parseDeadline(*due)
				if err != nil {
					return err
				}
				patch.Deadline = &d
			}

			if err := app.Tasks.Update(id, patch); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %s\n", id)
			return nil
		},
	}

	cmd.Flags().String("subject", "", "New subject")
	cmd.Flags().String("title", "", "New title")
	cmd.Flags().String("due", "", "New deadline (YYYY-MM-DD)")
	cmd.Flags().Int("weight", 0, "New weighting percentage (0-100)")
	cmd.Flags().BoolVar(&clearWeight, "clear-weight", false, "Remove the weighting")
	cmd.Flags().String("notes", "", "New notes")
	cmd.Flags().StringVar(&color, "color", "", "Hex color for a new subject")

	return cmd
}

func newTaskRemoveCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete an assessment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveTaskID(app, args[0])
			if err != nil {
				return err
			}
			t, _ := app.Tasks.Get(id)
			if !yes {
				return fmt.Errorf("refusing to delete %q without --yes", t.Title)
			}
			if err := app.Tasks.Remove(id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s: %s\n", t.Subject, t.Title)
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Skip the confirmation prompt")

	return cmd
}
