package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/evanmort/slate/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tempAdapter(t *testing.T) *Adapter {
	t.Helper()
	return NewAdapter(filepath.Join(t.TempDir(), "slate", "store.json"))
}

func TestAdapter_Load_MissingFile(t *testing.T) {
	a := tempAdapter(t)

	s := a.Load()
	require.NotNil(t, s)
	assert.Equal(t, domain.DefaultProfileName, s.ActiveProfile)
	require.Len(t, s.Profiles, 1)
	assert.Empty(t, s.Active().Tasks)
}

func TestAdapter_Load_MalformedData(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", "{{{{"},
		{"wrong type", `"just a string"`},
		{"array at top level", `[1, 2, 3]`},
		{"no profiles key", `{"activeProfile": "Default"}`},
		{"profiles not a mapping", `{"profiles": 42}`},
		{"empty file", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := tempAdapter(t)
			require.NoError(t, os.MkdirAll(filepath.Dir(a.Path()), 0o755))
			require.NoError(t, os.WriteFile(a.Path(), []byte(tc.data), 0o644))

			s := a.Load()
			require.Len(t, s.Profiles, 1)
			assert.NotNil(t, s.Profiles[s.ActiveProfile])
		})
	}
}

func TestAdapter_SaveLoad_RoundTrip(t *testing.T) {
	a := tempAdapter(t)

	weight := 30
	s := domain.NewStore()
	s.Profiles["Year 2"] = domain.NewProfile()
	s.ActiveProfile = "Year 2"
	s.Profiles["Year 2"].Tasks = []domain.Task{
		{
			ID:        "1760000000000-ab12cd34",
			Subject:   "Biology",
			Title:     "Lab report",
			Deadline:  time.Date(2026, 9, 14, 0, 0, 0, 0, time.Local),
			Weighting: &weight,
			Notes:     "bring printouts",
		},
		{
			ID:        "1760000000001-ef56ab78",
			Subject:   "Maths",
			Title:     "Problem set 4",
			Deadline:  time.Date(2026, 9, 20, 0, 0, 0, 0, time.Local),
			Completed: true,
		},
	}
	s.Profiles["Year 2"].SubjectColors = map[string]string{
		"Biology": "#8ec07c",
		"Maths":   "#fabd2f",
	}

	require.NoError(t, a.Save(s))
	loaded := a.Load()

	assert.Equal(t, s.ActiveProfile, loaded.ActiveProfile)
	require.Len(t, loaded.Profiles, 2)
	assert.Equal(t, s.Profiles["Year 2"].Tasks, loaded.Profiles["Year 2"].Tasks)
	assert.Equal(t, s.Profiles["Year 2"].SubjectColors, loaded.Profiles["Year 2"].SubjectColors)
}

func TestDecode_LegacyArrayProfile(t *testing.T) {
	data := []byte(`{
		"activeProfile": "Old",
		"profiles": {
			"Old": [
				{"id": 1712345678901, "subject": "History", "assessment": "Essay", "deadline": "2026-04-01", "completed": false}
			]
		}
	}`)

	s, err := Decode(data)
	require.NoError(t, err)

	p := s.Profiles["Old"]
	require.NotNil(t, p)
	require.Len(t, p.Tasks, 1)
	assert.Equal(t, "1712345678901", p.Tasks[0].ID, "numeric legacy id becomes a string")
	assert.Equal(t, "Essay", p.Tasks[0].Title)
	assert.NotNil(t, p.SubjectColors)
	assert.Empty(t, p.SubjectColors, "legacy profiles get an empty color map")
}

func TestLoad_RepairsDanglingActiveProfile(t *testing.T) {
	a := tempAdapter(t)
	data := []byte(`{
		"activeProfile": "Missing",
		"profiles": {
			"B": {"tasks": [], "subjectColors": {}},
			"A": {"tasks": [], "subjectColors": {}}
		}
	}`)
	require.NoError(t, os.MkdirAll(filepath.Dir(a.Path()), 0o755))
	require.NoError(t, os.WriteFile(a.Path(), data, 0o644))

	s := a.Load()
	assert.Equal(t, "A", s.ActiveProfile)
}

func TestDecode_DoesNotInventProfiles(t *testing.T) {
	// An empty-but-present profiles mapping stays empty: import relies on
	// seeing the document exactly as written.
	s, err := Decode([]byte(`{"profiles": {}}`))
	require.NoError(t, err)
	assert.Empty(t, s.Profiles)
}

func TestDecode_UnusableProfileValueBecomesEmpty(t *testing.T) {
	data := []byte(`{"activeProfile": "P", "profiles": {"P": 17}}`)

	s, err := Decode(data)
	require.NoError(t, err)
	require.NotNil(t, s.Profiles["P"])
	assert.Empty(t, s.Profiles["P"].Tasks)
}

func TestDecode_BadDeadlineKeptAsUndated(t *testing.T) {
	data := []byte(`{
		"activeProfile": "P",
		"profiles": {
			"P": {"tasks": [{"id": "x", "subject": "Art", "assessment": "Sketchbook", "deadline": "soonish"}], "subjectColors": {}}
		}
	}`)

	s, err := Decode(data)
	require.NoError(t, err)
	require.Len(t, s.Profiles["P"].Tasks, 1)
	assert.True(t, s.Profiles["P"].Tasks[0].Deadline.IsZero())
}

func TestEncode_PrettyOutputIsIndented(t *testing.T) {
	s := domain.NewStore()

	data, err := Encode(s, true)
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n  \"activeProfile\"")

	// Pretty output must decode back to the same store.
	loaded, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, s.ActiveProfile, loaded.ActiveProfile)
}
