package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/evanmort/slate/internal/cli/formatter"
	"github.com/evanmort/slate/internal/domain"
	"github.com/evanmort/slate/internal/service"
)

// taskFormValues backs the huh form fields. Deadline and weighting are
// edited as text and parsed on submit.
type taskFormValues struct {
	Subject   string
	Title     string
	Deadline  string
	Weighting string
	Notes     string
	Color     string
}

func taskForm(v *taskFormValues, palette []string) *huh.Form {
	colorOptions := make([]huh.Option[string], 0, len(palette)+1)
	colorOptions = append(colorOptions, huh.NewOption("auto", ""))
	for _, c := range palette {
		colorOptions = append(colorOptions, huh.NewOption(formatter.SubjectDot(c)+" "+c, c))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Subject").
				Placeholder("e.g. Mathematics").
				Validate(validateRequiredField("subject")).
				Value(&v.Subject),
			huh.NewInput().
				Title("Title").
				Placeholder("e.g. Trig exam").
				Validate(validateRequiredField("title")).
				Value(&v.Title),
			huh.NewInput().
				Title("Deadline").
				Placeholder("YYYY-MM-DD").
				Validate(validateDeadlineField).
				Value(&v.Deadline),
			huh.NewInput().
				Title("Weighting %").
				Placeholder("0-100, empty for none").
				Validate(validateWeightingField).
				Value(&v.Weighting),
			huh.NewText().
				Title("Notes").
				Lines(3).
				Value(&v.Notes),
			huh.NewSelect[string]().
				Title("Subject color").
				Description("Only used the first time a subject appears").
				Options(colorOptions...).
				Value(&v.Color),
		),
	).WithTheme(slateHuhTheme()).WithShowHelp(false)
}

// startTaskForm opens the add/edit wizard. A nil task means add.
func startTaskForm(state *SharedState, t *domain.Task) tea.Cmd {
	vals := &taskFormValues{}
	title := "Add Assessment"
	var editID string

	if t != nil {
		title = "Edit Assessment"
		editID = t.ID
		vals.Subject = t.Subject
		vals.Title = t.Title
		vals.Notes = t.Notes
		if !t.Deadline.IsZero() {
			vals.Deadline = t.Deadline.Format(domain.DateFormat)
		}
		if t.Weighting != nil {
			vals.Weighting = strconv.Itoa(*t.Weighting)
		}
	}

	form := taskForm(vals, state.App.Config.Palette)
	return pushView(newWizardView(state, title, form, func() tea.Cmd {
		return func() tea.Msg {
			if editID == "" {
				return submitAdd(state.App, vals)
			}
			return submitEdit(state.App, editID, vals)
		}
	}))
}

func submitAdd(app *App, vals *taskFormValues) tea.Msg {
	in := service.TaskInput{
		Subject:     strings.TrimSpace(vals.Subject),
		Title:       strings.TrimSpace(vals.Title),
		Notes:       vals.Notes,
		PickedColor: vals.Color,
	}

	deadline, weighting, err := parseFormFields(vals)
	if err != nil {
		return wizardCompleteError(err)
	}
	in.Deadline = deadline
	in.Weighting = weighting

	t, err := app.Tasks.Add(in)
	if err != nil {
		return wizardCompleteError(err)
	}
	return wizardCompleteNotice(fmt.Sprintf("%s Added: %s",
		formatter.StyleGreen.Render("✔"), formatter.Bold(t.Title)))
}

func submitEdit(app *App, id string, vals *taskFormValues) tea.Msg {
	subject := strings.TrimSpace(vals.Subject)
	title := strings.TrimSpace(vals.Title)

	patch := service.TaskPatch{
		Subject:     &subject,
		Title:       &title,
		Notes:       &vals.Notes,
		PickedColor: vals.Color,
	}

	deadline, weighting, err := parseFormFields(vals)
	if err != nil {
		return wizardCompleteError(err)
	}
	patch.Deadline = &deadline
	if weighting != nil {
		patch.Weighting = weighting
	} else {
		patch.ClearWeighting = true
	}

	if err := app.Tasks.Update(id, patch); err != nil {
		return wizardCompleteError(err)
	}
	return wizardCompleteNotice(fmt.Sprintf("%s Updated: %s",
		formatter.StyleGreen.Render("✔"), formatter.Bold(title)))
}

// parseFormFields converts the free-text deadline and weighting fields.
// Empty fields mean "no deadline" and "no weighting".
func parseFormFields(vals *taskFormValues) (time.Time, *int, error) {
	var deadline time.Time
	if s := strings.TrimSpace(vals.Deadline); s != "" {
		d, err := time.ParseInLocation(domain.DateFormat, s, time.Local)
		if err != nil {
			return time.Time{}, nil, fmt.Errorf("invalid deadline %q", s)
		}
		deadline = d
	}

	var weighting *int
	if s := strings.TrimSpace(vals.Weighting); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return time.Time{}, nil, fmt.Errorf("invalid weighting %q", s)
		}
		weighting = &n
	}

	return deadline, weighting, nil
}
