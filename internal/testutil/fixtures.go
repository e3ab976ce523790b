package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/evanmort/slate/internal/domain"
	"github.com/google/uuid"
)

var taskCounter atomic.Int64

// TaskOption mutates a fixture task.
type TaskOption func(*domain.Task)

func WithDeadline(t time.Time) TaskOption {
	return func(task *domain.Task) {
		task.Deadline = domain.Midnight(t)
	}
}

// WithDueIn sets the deadline relative to today.
func WithDueIn(days int) TaskOption {
	return func(task *domain.Task) {
		task.Deadline = domain.Midnight(time.Now()).AddDate(0, 0, days)
	}
}

func WithWeighting(pct int) TaskOption {
	return func(task *domain.Task) {
		task.Weighting = &pct
	}
}

func WithNotes(notes string) TaskOption {
	return func(task *domain.Task) {
		task.Notes = notes
	}
}

func Completed() TaskOption {
	return func(task *domain.Task) {
		task.Completed = true
	}
}

// NewTestTask builds a task with a unique creation-style ID and a deadline
// one week out unless overridden.
func NewTestTask(subject, title string, opts ...TaskOption) domain.Task {
	n := taskCounter.Add(1)
	t := domain.Task{
		ID:       fmt.Sprintf("%d-%s", time.Now().UnixMilli()+n, uuid.NewString()[:8]),
		Subject:  subject,
		Title:    title,
		Deadline: domain.Midnight(time.Now()).AddDate(0, 0, 7),
	}
	for _, opt := range opts {
		opt(&t)
	}
	return t
}

// NewTestStore builds a store with one named profile containing the given
// tasks, active.
func NewTestStore(profileName string, tasks ...domain.Task) *domain.Store {
	s := &domain.Store{
		ActiveProfile: profileName,
		Profiles:      map[string]*domain.Profile{profileName: domain.NewProfile()},
	}
	s.Profiles[profileName].Tasks = append(s.Profiles[profileName].Tasks, tasks...)
	return s
}
