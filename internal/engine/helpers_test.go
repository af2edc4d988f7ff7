package engine

import (
	"math/rand"
	"time"

	"github.com/yourname/fitcoach/internal"
)

func fixedClock(t time.Time) Clock {
	return ClockFunc(func() time.Time { return t })
}

// testBot returns a bot with a seeded random source; extra options may
// override the clock or catalog.
func testBot(opts ...Option) *Bot {
	base := []Option{WithRand(rand.New(rand.NewSource(1)))}
	return New(internal.NopLogger{}, append(base, opts...)...)
}

// A Saturday afternoon in spring, outside every reminder anchor.
var saturdayAfternoon = time.Date(2025, time.March, 15, 14, 0, 0, 0, time.UTC)
