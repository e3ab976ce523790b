package service

import (
	"testing"
	"time"

	"github.com/evanmort/slate/internal/domain"
	"github.com/evanmort/slate/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testPalette = []string{"#8ec07c", "#fabd2f", "#83a598"}

func newTaskFixture(t *testing.T) (TaskService, *testutil.MemStore) {
	t.Helper()
	mem := testutil.NewMemStore()
	return NewTaskService(mem, testPalette), mem
}

func dueOn(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestTaskService_Add(t *testing.T) {
	svc, mem := newTaskFixture(t)

	w := 50
	task, err := svc.Add(TaskInput{
		Subject:   "Maths",
		Title:     "Problem set 1",
		Deadline:  dueOn(2026, 9, 14),
		Weighting: &w,
		Notes:     "chapters 1-3",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, task.ID)
	assert.False(t, task.Completed)
	require.NotNil(t, task.Weighting)
	assert.Equal(t, 50, *task.Weighting)
	assert.Equal(t, 1, mem.Saves, "mutation persists immediately")

	listed := svc.List()
	require.Len(t, listed, 1)
	assert.Equal(t, task, listed[0])
}

func TestTaskService_Add_Validation(t *testing.T) {
	over, neg := 150, -5
	deadline := dueOn(2026, 9, 14)

	tests := []struct {
		name string
		in   TaskInput
	}{
		{"blank subject", TaskInput{Title: "X", Deadline: deadline}},
		{"blank title", TaskInput{Subject: "Maths", Deadline: deadline}},
		{"missing deadline", TaskInput{Subject: "Maths", Title: "X"}},
		{"weighting over 100", TaskInput{Subject: "Maths", Title: "X", Deadline: deadline, Weighting: &over}},
		{"negative weighting", TaskInput{Subject: "Maths", Title: "X", Deadline: deadline, Weighting: &neg}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc, mem := newTaskFixture(t)
			_, err := svc.Add(tc.in)
			assert.Error(t, err)
			assert.Zero(t, mem.Saves, "rejected input must not persist")
		})
	}
}

func TestTaskService_Add_UniqueIDs(t *testing.T) {
	svc, _ := newTaskFixture(t)

	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		task, err := svc.Add(TaskInput{Subject: "Maths", Title: "T", Deadline: dueOn(2026, 9, 14)})
		require.NoError(t, err)
		assert.False(t, seen[task.ID], "duplicate id %s", task.ID)
		seen[task.ID] = true
	}
}

func TestTaskService_Add_SubjectColorAssignment(t *testing.T) {
	svc, _ := newTaskFixture(t)

	t.Run("picker color on first introduction", func(t *testing.T) {
		_, err := svc.Add(TaskInput{Subject: "Art", Title: "Portfolio", Deadline: dueOn(2026, 9, 1), PickedColor: "#d3869b"})
		require.NoError(t, err)
		assert.Equal(t, "#d3869b", svc.SubjectColors()["Art"])
	})

	t.Run("first free palette color otherwise", func(t *testing.T) {
		_, err := svc.Add(TaskInput{Subject: "Biology", Title: "Lab", Deadline: dueOn(2026, 9, 2)})
		require.NoError(t, err)
		assert.Equal(t, testPalette[0], svc.SubjectColors()["Biology"])
	})

	t.Run("existing subject color untouched", func(t *testing.T) {
		_, err := svc.Add(TaskInput{Subject: "Art", Title: "Sketch", Deadline: dueOn(2026, 9, 3), PickedColor: "#fb4934"})
		require.NoError(t, err)
		assert.Equal(t, "#d3869b", svc.SubjectColors()["Art"])
	})
}

func TestTaskService_Update(t *testing.T) {
	svc, mem := newTaskFixture(t)
	task, err := svc.Add(TaskInput{Subject: "Maths", Title: "Draft", Deadline: dueOn(2026, 9, 14)})
	require.NoError(t, err)

	newTitle := "Final essay"
	w := 40
	newDue := dueOn(2026, 10, 1)
	require.NoError(t, svc.Update(task.ID, TaskPatch{Title: &newTitle, Weighting: &w, Deadline: &newDue}))

	got, ok := svc.Get(task.ID)
	require.True(t, ok)
	assert.Equal(t, "Final essay", got.Title)
	assert.Equal(t, "Maths", got.Subject, "unpatched field unchanged")
	require.NotNil(t, got.Weighting)
	assert.Equal(t, 40, *got.Weighting)
	assert.Equal(t, newDue, got.Deadline)

	t.Run("clear weighting", func(t *testing.T) {
		require.NoError(t, svc.Update(task.ID, TaskPatch{ClearWeighting: true}))
		got, _ := svc.Get(task.ID)
		assert.Nil(t, got.Weighting)
	})

	t.Run("invalid patch rejected", func(t *testing.T) {
		saves := mem.Saves
		over := 200
		assert.Error(t, svc.Update(task.ID, TaskPatch{Weighting: &over}))
		assert.Equal(t, saves, mem.Saves)
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		saves := mem.Saves
		assert.NoError(t, svc.Update("missing", TaskPatch{Title: &newTitle}))
		assert.Equal(t, saves, mem.Saves)
	})
}

func TestTaskService_RemoveAndToggle(t *testing.T) {
	svc, mem := newTaskFixture(t)
	task, err := svc.Add(TaskInput{Subject: "History", Title: "Essay", Deadline: dueOn(2026, 9, 14)})
	require.NoError(t, err)

	require.NoError(t, svc.ToggleCompletion(task.ID))
	got, _ := svc.Get(task.ID)
	assert.True(t, got.Completed)

	require.NoError(t, svc.ToggleCompletion(task.ID))
	got, _ = svc.Get(task.ID)
	assert.False(t, got.Completed)

	require.NoError(t, svc.Remove(task.ID))
	assert.Empty(t, svc.List())

	saves := mem.Saves
	assert.NoError(t, svc.Remove(task.ID), "second remove is a no-op")
	assert.Equal(t, saves, mem.Saves)
}

func TestTaskService_ScopedToActiveProfile(t *testing.T) {
	mem := testutil.NewMemStore()
	store := testutil.NewTestStore("Year 1", testutil.NewTestTask("Maths", "Old task"))
	store.Profiles["Year 2"] = domain.NewProfile()
	store.ActiveProfile = "Year 2"
	mem.Seed(store)

	svc := NewTaskService(mem, testPalette)
	assert.Empty(t, svc.List(), "active profile starts empty")

	_, err := svc.Add(TaskInput{Subject: "Physics", Title: "Report", Deadline: dueOn(2026, 9, 14)})
	require.NoError(t, err)

	require.Len(t, svc.List(), 1)
	assert.Len(t, mem.Load().Profiles["Year 1"].Tasks, 1, "other profile untouched")
}
