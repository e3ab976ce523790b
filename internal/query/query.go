// Package query derives the visible subset of a profile's tasks from the
// current tab, free-text search, subject filter, and sort order. It is pure:
// inputs are never mutated and the same inputs always produce the same slice.
package query

import (
	"sort"
	"strings"

	"github.com/evanmort/slate/internal/domain"
)

// Tab selects which completion states are visible.
type Tab string

const (
	TabActive    Tab = "active"
	TabCompleted Tab = "completed"
	TabAll       Tab = "all"
)

// SortColumn identifies the single column the list is ordered by.
type SortColumn string

const (
	SortBySubject   SortColumn = "subject"
	SortByTitle     SortColumn = "title"
	SortByDeadline  SortColumn = "deadline"
	SortByWeighting SortColumn = "weighting"
)

// Query is the full filter/sort selection. The zero value is not useful;
// use Default.
type Query struct {
	Tab      Tab
	Search   string
	Subject  string // exact match; empty means all subjects
	SortCol  SortColumn
	SortDesc bool
}

// Default is the state the list opens with: incomplete tasks, soonest first.
func Default() Query {
	return Query{Tab: TabActive, SortCol: SortByDeadline}
}

// Toggle selects a sort column. Re-selecting the current column flips the
// direction; selecting a different column resets to ascending.
func (q *Query) Toggle(col SortColumn) {
	if q.SortCol == col {
		q.SortDesc = !q.SortDesc
		return
	}
	q.SortCol = col
	q.SortDesc = false
}

// Visible returns the tasks that pass the query's filters, stably sorted by
// its column and direction. The input slice is left untouched.
func Visible(tasks []domain.Task, q Query) []domain.Task {
	var out []domain.Task
	needle := strings.ToLower(strings.TrimSpace(q.Search))

	for i := range tasks {
		t := tasks[i]
		switch q.Tab {
		case TabActive:
			if t.Completed {
				continue
			}
		case TabCompleted:
			if !t.Completed {
				continue
			}
		}
		if needle != "" && !matchesSearch(&t, needle) {
			continue
		}
		if q.Subject != "" && t.Subject != q.Subject {
			continue
		}
		out = append(out, t)
	}

	sortTasks(out, q.SortCol, q.SortDesc)
	return out
}

// DistinctSubjects returns the lexicographically ordered subject names of
// the whole task list, independent of any active filters so a subject
// dropdown always reflects the full profile.
func DistinctSubjects(tasks []domain.Task) []string {
	seen := map[string]bool{}
	var out []string
	for i := range tasks {
		s := tasks[i].Subject
		if s != "" && !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	sort.Strings(out)
	return out
}

func matchesSearch(t *domain.Task, needle string) bool {
	return strings.Contains(strings.ToLower(t.Subject), needle) ||
		strings.Contains(strings.ToLower(t.Title), needle) ||
		strings.Contains(strings.ToLower(t.Notes), needle)
}

func sortTasks(tasks []domain.Task, col SortColumn, desc bool) {
	less := func(a, b *domain.Task) bool {
		switch col {
		case SortByDeadline:
			return a.Deadline.Before(b.Deadline)
		case SortByWeighting:
			return weightOrZero(a) < weightOrZero(b)
		case SortBySubject:
			return a.Subject < b.Subject
		case SortByTitle:
			return a.Title < b.Title
		default:
			return false
		}
	}

	sort.SliceStable(tasks, func(i, j int) bool {
		if desc {
			return less(&tasks[j], &tasks[i])
		}
		return less(&tasks[i], &tasks[j])
	})
}

func weightOrZero(t *domain.Task) int {
	if t.Weighting == nil {
		return 0
	}
	return *t.Weighting
}
