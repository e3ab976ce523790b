package service

import (
	"io"
	"time"

	"github.com/evanmort/slate/internal/domain"
)

// Storage is the persistence boundary the services mutate through. The
// file-backed adapter satisfies it; tests substitute an in-memory fake.
type Storage interface {
	Load() *domain.Store
	Save(*domain.Store) error
}

// TaskInput carries the fields of a new task. PickedColor is the transient
// color-picker selection; it only matters when the subject is new.
type TaskInput struct {
	Subject     string
	Title       string
	Deadline    time.Time
	Weighting   *int
	Notes       string
	PickedColor string
}

// TaskPatch is a partial update; nil fields are left unchanged.
// ClearWeighting removes the weighting, which a *int field cannot express.
type TaskPatch struct {
	Subject        *string
	Title          *string
	Deadline       *time.Time
	Weighting      *int
	ClearWeighting bool
	Notes          *string
	PickedColor    string
}

// TaskService is CRUD over the active profile's task list. Every mutation
// persists immediately.
type TaskService interface {
	List() []domain.Task
	Get(id string) (domain.Task, bool)
	Add(in TaskInput) (domain.Task, error)
	Update(id string, patch TaskPatch) error
	Remove(id string) error
	ToggleCompletion(id string) error
	Subjects() []string
	SubjectColors() map[string]string
}

// ProfileService manages the named profiles and which one is active.
// Destructive-action confirmation is a UI concern, not enforced here.
type ProfileService interface {
	Names() []string
	Active() string
	SwitchTo(name string) error
	Create(name string) error
	Rename(newName string) error
	Delete() error
}

// ImportResult summarizes a successful backup merge for display.
type ImportResult struct {
	Profiles int
	Tasks    int
	Active   string
}

// BackupService serializes the whole store to a dated JSON file and merges
// such files back in.
type BackupService interface {
	Export(dir string) (string, error)
	Import(r io.Reader) (ImportResult, error)
}
