package engine

import "time"

// Clock abstracts wall-clock reads (hour, weekday, month) so generator
// output is reproducible in tests.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a plain function to the Clock interface.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

const dateLayout = "2006-01-02"
