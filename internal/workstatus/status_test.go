package workstatus

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCompute(t *testing.T) {
	a := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	d := a.Add(9 * time.Hour) // total = 9h, thirds at +3h and +6h

	tests := []struct {
		name string
		now  time.Time
		want Status
	}{
		{"at allocation", a, Green},
		{"before allocation", a.Add(-time.Hour), Green},
		{"mid first third", a.Add(time.Hour), Green},
		{"exactly one third", a.Add(3 * time.Hour), Green},
		{"just past one third", a.Add(3*time.Hour + time.Second), Yellow},
		{"mid second third", a.Add(4 * time.Hour), Yellow},
		{"exactly two thirds", a.Add(6 * time.Hour), Yellow},
		{"just past two thirds", a.Add(6*time.Hour + time.Second), Red},
		{"at deadline", d, Red},
		{"past deadline", d.Add(48 * time.Hour), Red},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Compute(a, d, tt.now))
		})
	}
}

func TestComputeMalformedWindow(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	// deadline equal to or before the allocated time is always red
	assert.Equal(t, Red, Compute(now, now, now))
	assert.Equal(t, Red, Compute(now, now.Add(-time.Hour), now))
	assert.Equal(t, Red, Compute(now, now.Add(-time.Hour), now.Add(-2*time.Hour)))
}
