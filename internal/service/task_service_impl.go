package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/evanmort/slate/internal/domain"
	"github.com/google/uuid"
)

type taskService struct {
	store   Storage
	palette []string
}

func NewTaskService(store Storage, palette []string) TaskService {
	return &taskService{store: store, palette: palette}
}

// newTaskID builds a creation-timestamp-derived ID. The uuid suffix keeps
// same-millisecond creations unique while preserving creation-order sorting.
func newTaskID(now time.Time) string {
	return fmt.Sprintf("%d-%s", now.UnixMilli(), uuid.NewString()[:8])
}

func (s *taskService) List() []domain.Task {
	return s.store.Load().Active().Tasks
}

func (s *taskService) Get(id string) (domain.Task, bool) {
	if t := s.store.Load().Active().TaskByID(id); t != nil {
		return *t, true
	}
	return domain.Task{}, false
}

func (s *taskService) Add(in TaskInput) (domain.Task, error) {
	if err := validateInput(in.Subject, in.Title, in.Weighting, in.Deadline); err != nil {
		return domain.Task{}, err
	}

	store := s.store.Load()
	profile := store.Active()

	task := domain.Task{
		ID:        newTaskID(time.Now()),
		Subject:   strings.TrimSpace(in.Subject),
		Title:     strings.TrimSpace(in.Title),
		Deadline:  domain.Midnight(in.Deadline),
		Weighting: in.Weighting,
		Notes:     in.Notes,
	}
	profile.EnsureSubjectColor(task.Subject, in.PickedColor, s.palette)
	profile.Tasks = append(profile.Tasks, task)

	if err := s.store.Save(store); err != nil {
		return domain.Task{}, err
	}
	return task, nil
}

func (s *taskService) Update(id string, patch TaskPatch) error {
	store := s.store.Load()
	profile := store.Active()
	task := profile.TaskByID(id)
	if task == nil {
		return nil
	}

	subject := task.Subject
	if patch.Subject != nil {
		subject = strings.TrimSpace(*patch.Subject)
	}
	title := task.Title
	if patch.Title != nil {
		title = strings.TrimSpace(*patch.Title)
	}
	weighting := task.Weighting
	if patch.ClearWeighting {
		weighting = nil
	} else if patch.Weighting != nil {
		weighting = patch.Weighting
	}
	deadline := task.Deadline
	if patch.Deadline != nil {
		deadline = domain.Midnight(*patch.Deadline)
	}
	if err := validateInput(subject, title, weighting, deadline); err != nil {
		return err
	}

	task.Subject = subject
	task.Title = title
	task.Weighting = weighting
	task.Deadline = deadline
	if patch.Notes != nil {
		task.Notes = *patch.Notes
	}
	profile.EnsureSubjectColor(task.Subject, patch.PickedColor, s.palette)

	return s.store.Save(store)
}

func (s *taskService) Remove(id string) error {
	store := s.store.Load()
	if !store.Active().RemoveTask(id) {
		return nil
	}
	return s.store.Save(store)
}

func (s *taskService) ToggleCompletion(id string) error {
	store := s.store.Load()
	task := store.Active().TaskByID(id)
	if task == nil {
		return nil
	}
	task.Completed = !task.Completed
	return s.store.Save(store)
}

func (s *taskService) Subjects() []string {
	return s.store.Load().Active().Subjects()
}

func (s *taskService) SubjectColors() map[string]string {
	return s.store.Load().Active().SubjectColors
}

func validateInput(subject, title string, weighting *int, deadline time.Time) error {
	if strings.TrimSpace(subject) == "" {
		return fmt.Errorf("subject is required")
	}
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("assessment title is required")
	}
	if deadline.IsZero() {
		return fmt.Errorf("deadline is required")
	}
	return domain.ValidateWeighting(weighting)
}
