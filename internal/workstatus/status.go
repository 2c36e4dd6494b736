package workstatus

import "time"

// Status is the traffic-light state of a work item. It is derived from the
// allocated/deadline window on every read and is never stored.
type Status string

const (
	Green  Status = "green"
	Yellow Status = "yellow"
	Red    Status = "red"
)

// Compute maps the elapsed fraction of the allocated→deadline window to a
// status. The first third of the window is green, the second yellow, the
// rest (including past the deadline) red. A deadline at or before the
// allocated time means the window is malformed and the item is red.
func Compute(allocated, deadline, now time.Time) Status {
	total := deadline.Sub(allocated).Seconds()
	if total <= 0 {
		return Red
	}
	ratio := now.Sub(allocated).Seconds() / total
	switch {
	case ratio <= 1.0/3.0:
		return Green
	case ratio <= 2.0/3.0:
		return Yellow
	default:
		return Red
	}
}
