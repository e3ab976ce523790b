package cli

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/evanmort/slate/internal/config"
	"github.com/evanmort/slate/internal/domain"
	"github.com/evanmort/slate/internal/service"
	"github.com/evanmort/slate/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testApp wires a full App backed by an in-memory store.
func testApp(t *testing.T) (*App, *testutil.MemStore) {
	t.Helper()
	mem := testutil.NewMemStore()
	palette := []string{"#8ec07c", "#fabd2f", "#83a598"}

	return &App{
		Tasks:    service.NewTaskService(mem, palette),
		Profiles: service.NewProfileService(mem),
		Backups:  service.NewBackupService(mem),
		Config:   config.Config{Palette: palette, DefaultView: "list"},
		// IsInteractive left nil: bare invocations show help in tests.
	}, mem
}

func seedTasks(t *testing.T, mem *testutil.MemStore, tasks ...domain.Task) {
	t.Helper()
	mem.Seed(testutil.NewTestStore("Default", tasks...))
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

// --- Root command ---

func TestRootCmd_NonInteractive_ShowsHelp(t *testing.T) {
	app, _ := testApp(t)

	out, err := executeCmd(t, app)
	require.NoError(t, err)
	assert.Contains(t, out, "slate")
	assert.Contains(t, out, "task")
}

// --- task add ---

func TestTaskAddCmd(t *testing.T) {
	app, mem := testApp(t)

	out, err := executeCmd(t, app, "task", "add",
		"--subject", "Maths", "--title", "Trig exam",
		"--due", "2027-06-10", "--weight", "30")
	require.NoError(t, err)
	assert.Contains(t, out, "Added Maths: Trig exam")
	assert.Equal(t, 1, mem.Saves)

	tasks := app.Tasks.List()
	require.Len(t, tasks, 1)
	assert.Equal(t, "Trig exam", tasks[0].Title)
	require.NotNil(t, tasks[0].Weighting)
	assert.Equal(t, 30, *tasks[0].Weighting)
}

func TestTaskAddCmd_RequiresSubjectAndTitle(t *testing.T) {
	app, _ := testApp(t)

	_, err := executeCmd(t, app, "task", "add", "--title", "Orphan")
	assert.Error(t, err)
}

func TestTaskAddCmd_RejectsBadDeadline(t *testing.T) {
	app, mem := testApp(t)

	_, err := executeCmd(t, app, "task", "add",
		"--subject", "Maths", "--title", "X", "--due", "junk")
	assert.Error(t, err)
	assert.Equal(t, 0, mem.Saves)
}

func TestTaskAddCmd_RejectsBadWeighting(t *testing.T) {
	app, mem := testApp(t)

	_, err := executeCmd(t, app, "task", "add",
		"--subject", "Maths", "--title", "X", "--due", "2027-06-10", "--weight", "150")
	assert.Error(t, err)
	assert.Equal(t, 0, mem.Saves)
}

// --- task list ---

func TestTaskListCmd_DefaultHidesCompleted(t *testing.T) {
	app, mem := testApp(t)
	seedTasks(t, mem,
		testutil.NewTestTask("Maths", "Pending one"),
		testutil.NewTestTask("Art", "Done one", testutil.Completed()),
	)

	out, err := executeCmd(t, app, "task", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Pending one")
	assert.NotContains(t, out, "Done one")
}

func TestTaskListCmd_AllTab(t *testing.T) {
	app, mem := testApp(t)
	seedTasks(t, mem,
		testutil.NewTestTask("Maths", "Pending one"),
		testutil.NewTestTask("Art", "Done one", testutil.Completed()),
	)

	out, err := executeCmd(t, app, "task", "list", "--tab", "all")
	require.NoError(t, err)
	assert.Contains(t, out, "Pending one")
	assert.Contains(t, out, "Done one")
}

func TestTaskListCmd_Search(t *testing.T) {
	app, mem := testApp(t)
	seedTasks(t, mem,
		testutil.NewTestTask("Maths", "Trig exam"),
		testutil.NewTestTask("Art", "Portfolio"),
	)

	out, err := executeCmd(t, app, "task", "list", "--search", "trig")
	require.NoError(t, err)
	assert.Contains(t, out, "Trig exam")
	assert.NotContains(t, out, "Portfolio")
}

func TestTaskListCmd_OverdueBanner(t *testing.T) {
	app, mem := testApp(t)
	seedTasks(t, mem,
		testutil.NewTestTask("Maths", "Late", testutil.WithDueIn(-2)),
	)

	out, err := executeCmd(t, app, "task", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "overdue")
}

func TestTaskListCmd_RejectsUnknownTab(t *testing.T) {
	app, _ := testApp(t)

	_, err := executeCmd(t, app, "task", "list", "--tab", "bogus")
	assert.Error(t, err)
}

func TestTaskListCmd_Empty(t *testing.T) {
	app, _ := testApp(t)

	out, err := executeCmd(t, app, "task", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No assessments")
}

// --- task done / edit / rm ---

func TestTaskDoneCmd_TogglesByPrefix(t *testing.T) {
	app, mem := testApp(t)
	task := testutil.NewTestTask("Maths", "Trig exam")
	seedTasks(t, mem, task)

	out, err := executeCmd(t, app, "task", "done", task.ID[:6])
	require.NoError(t, err)
	assert.Contains(t, out, "completed")

	got, ok := app.Tasks.Get(task.ID)
	require.True(t, ok)
	assert.True(t, got.Completed)
}

func TestTaskDoneCmd_UnknownID(t *testing.T) {
	app, _ := testApp(t)

	_, err := executeCmd(t, app, "task", "done", "nope")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "task not found")
}

func TestTaskEditCmd_PartialUpdate(t *testing.T) {
	app, mem := testApp(t)
	task := testutil.NewTestTask("Maths", "Trig exam", testutil.WithWeighting(20))
	seedTasks(t, mem, task)

	_, err := executeCmd(t, app, "task", "edit", task.ID, "--title", "Calculus exam")
	require.NoError(t, err)

	got, ok := app.Tasks.Get(task.ID)
	require.True(t, ok)
	assert.Equal(t, "Calculus exam", got.Title)
	assert.Equal(t, "Maths", got.Subject)
	require.NotNil(t, got.Weighting)
	assert.Equal(t, 20, *got.Weighting)
}

func TestTaskEditCmd_ClearWeight(t *testing.T) {
	app, mem := testApp(t)
	task := testutil.NewTestTask("Maths", "Trig exam", testutil.WithWeighting(20))
	seedTasks(t, mem, task)

	_, err := executeCmd(t, app, "task", "edit", task.ID, "--clear-weight")
	require.NoError(t, err)

	got, _ := app.Tasks.Get(task.ID)
	assert.Nil(t, got.Weighting)
}

func TestTaskRemoveCmd_RequiresYes(t *testing.T) {
	app, mem := testApp(t)
	task := testutil.NewTestTask("Maths", "Trig exam")
	seedTasks(t, mem, task)

	_, err := executeCmd(t, app, "task", "rm", task.ID)
	assert.Error(t, err)
	assert.Len(t, app.Tasks.List(), 1)

	out, err := executeCmd(t, app, "task", "rm", task.ID, "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted")
	assert.Empty(t, app.Tasks.List())
}

// --- profile commands ---

func TestProfileLifecycleCmds(t *testing.T) {
	app, _ := testApp(t)

	out, err := executeCmd(t, app, "profile", "add", "Semester 2")
	require.NoError(t, err)
	assert.Contains(t, out, "Created profile Semester 2")
	assert.Equal(t, "Semester 2", app.Profiles.Active())

	out, err = executeCmd(t, app, "profile", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Default")
	assert.Contains(t, out, "Semester 2")

	_, err = executeCmd(t, app, "profile", "use", "Default")
	require.NoError(t, err)
	assert.Equal(t, "Default", app.Profiles.Active())

	out, err = executeCmd(t, app, "profile", "rename", "Year 12")
	require.NoError(t, err)
	assert.Contains(t, out, "Renamed Default to Year 12")

	_, err = executeCmd(t, app, "profile", "rm")
	assert.Error(t, err, "missing --yes")

	out, err = executeCmd(t, app, "profile", "rm", "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted profile Year 12")
	assert.Equal(t, []string{"Semester 2"}, app.Profiles.Names())
}

func TestProfileRemoveCmd_RefusesLastProfile(t *testing.T) {
	app, _ := testApp(t)

	_, err := executeCmd(t, app, "profile", "rm", "--yes")
	assert.Error(t, err)
}

// --- export / import ---

func TestExportImportCmds_RoundTrip(t *testing.T) {
	app, mem := testApp(t)
	seedTasks(t, mem,
		testutil.NewTestTask("Maths", "Trig exam", testutil.WithWeighting(40)),
	)

	dir := t.TempDir()
	out, err := executeCmd(t, app, "export", "--dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Exported to")

	date := time.Now().Format(domain.DateFormat)
	backup := filepath.Join(dir, "academic_tracker_backup_"+date+".json")

	// Import into a fresh app.
	fresh, _ := testApp(t)
	out, err = executeCmd(t, fresh, "import", backup)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 1 profiles (1 assessments)")

	tasks := fresh.Tasks.List()
	require.Len(t, tasks, 1)
	assert.Equal(t, "Trig exam", tasks[0].Title)
}

func TestImportCmd_MissingFile(t *testing.T) {
	app, _ := testApp(t)

	_, err := executeCmd(t, app, "import", filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

// --- calendar ---

func TestCalendarCmd(t *testing.T) {
	app, mem := testApp(t)
	seedTasks(t, mem,
		testutil.NewTestTask("Maths", "Exam",
			testutil.WithDeadline(time.Date(2027, 6, 10, 0, 0, 0, 0, time.Local))),
	)

	out, err := executeCmd(t, app, "calendar", "--month", "2027-06")
	require.NoError(t, err)
	assert.Contains(t, out, "June 2027")
	assert.Contains(t, out, "Exam")
}

func TestCalendarCmd_RejectsBadMonth(t *testing.T) {
	app, _ := testApp(t)

	_, err := executeCmd(t, app, "calendar", "--month", "June")
	assert.Error(t, err)
}
