package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidateWeighting(t *testing.T) {
	intp := func(v int) *int { return &v }

	tests := []struct {
		name    string
		w       *int
		wantErr bool
	}{
		{"absent", nil, false},
		{"zero", intp(0), false},
		{"mid", intp(50), false},
		{"max", intp(100), false},
		{"negative", intp(-1), true},
		{"over", intp(150), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateWeighting(tc.w)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTask_DaysUntil(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 42, 0, 0, time.Local)

	tests := []struct {
		name     string
		deadline time.Time
		want     int
	}{
		{"today late evening", time.Date(2026, 3, 10, 23, 0, 0, 0, time.Local), 0},
		{"tomorrow", time.Date(2026, 3, 11, 0, 0, 0, 0, time.Local), 1},
		{"in three days", time.Date(2026, 3, 13, 0, 0, 0, 0, time.Local), 3},
		{"yesterday", time.Date(2026, 3, 9, 0, 0, 0, 0, time.Local), -1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			task := Task{Deadline: tc.deadline}
			assert.Equal(t, tc.want, task.DaysUntil(now))
		})
	}
}

func TestTask_SameDay(t *testing.T) {
	task := Task{Deadline: time.Date(2026, 5, 1, 0, 0, 0, 0, time.Local)}

	assert.True(t, task.SameDay(time.Date(2026, 5, 1, 18, 30, 0, 0, time.Local)))
	assert.False(t, task.SameDay(time.Date(2026, 5, 2, 0, 0, 0, 0, time.Local)))
}
