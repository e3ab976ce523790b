package formatter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDueLabel(t *testing.T) {
	now := time.Date(2026, 3, 10, 11, 0, 0, 0, time.Local)
	day := func(d int) time.Time { return time.Date(2026, 3, d, 0, 0, 0, 0, time.Local) }

	tests := []struct {
		name     string
		deadline time.Time
		want     string
	}{
		{"today", day(10), "today"},
		{"tomorrow", day(11), "tomorrow"},
		{"future", day(15), "5d left"},
		{"yesterday", day(9), "1d over"},
		{"long overdue", day(1), "9d over"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DueLabel(tc.deadline, now))
		})
	}
}

func TestWeight(t *testing.T) {
	w := 30
	assert.Equal(t, "30%", Weight(&w))
	assert.Equal(t, "--", Weight(nil))
}

func TestDate(t *testing.T) {
	assert.Equal(t, "--", Date(time.Time{}))
	assert.Equal(t, "2026-03-10", Date(time.Date(2026, 3, 10, 0, 0, 0, 0, time.Local)))
}

func TestCountNoun(t *testing.T) {
	assert.Equal(t, "1 assessment", countNoun(1, "assessment"))
	assert.Equal(t, "3 assessments", countNoun(3, "assessment"))
}
