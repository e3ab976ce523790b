package domain

import "sort"

// Profile is an isolated collection of tasks plus the subject-color
// preferences used when rendering them. Profiles are keyed by name in the
// Store and never reference each other.
type Profile struct {
	Tasks         []Task
	SubjectColors map[string]string
}

func NewProfile() *Profile {
	return &Profile{
		Tasks:         []Task{},
		SubjectColors: map[string]string{},
	}
}

// TaskByID returns a pointer into the profile's task slice, or nil.
func (p *Profile) TaskByID(id string) *Task {
	for i := range p.Tasks {
		if p.Tasks[i].ID == id {
			return &p.Tasks[i]
		}
	}
	return nil
}

// RemoveTask deletes the task with the given ID, preserving insertion order.
// It reports whether a task was removed.
func (p *Profile) RemoveTask(id string) bool {
	for i := range p.Tasks {
		if p.Tasks[i].ID == id {
			p.Tasks = append(p.Tasks[:i], p.Tasks[i+1:]...)
			return true
		}
	}
	return false
}

// Subjects returns the profile's distinct subject names in lexicographic
// order, across all tasks regardless of completion state.
func (p *Profile) Subjects() []string {
	seen := map[string]bool{}
	var out []string
	for i := range p.Tasks {
		s := p.Tasks[i].Subject
		if s != "" && !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	sort.Strings(out)
	return out
}

// EnsureSubjectColor assigns a color to a subject that does not have one yet.
// A caller-picked color wins only on first introduction of the subject; an
// existing assignment is never overwritten. With no pick, the first palette
// color not already in use is chosen, falling back to the head of the palette
// when every color is taken.
func (p *Profile) EnsureSubjectColor(subject, picked string, palette []string) {
	if subject == "" {
		return
	}
	if p.SubjectColors == nil {
		p.SubjectColors = map[string]string{}
	}
	if _, ok := p.SubjectColors[subject]; ok {
		return
	}
	if picked != "" {
		p.SubjectColors[subject] = picked
		return
	}
	if len(palette) == 0 {
		return
	}
	used := map[string]bool{}
	for _, c := range p.SubjectColors {
		used[c] = true
	}
	for _, c := range palette {
		if !used[c] {
			p.SubjectColors[subject] = c
			return
		}
	}
	p.SubjectColors[subject] = palette[0]
}
