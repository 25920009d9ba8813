package clock

import (
	"time"
)

// Clock reads the current time. Runs use it for timing and for deriving a
// seed when none is configured.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the time package
type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }

// Since returns the time elapsed on clk since t.
func Since(clk Clock, t time.Time) time.Duration {
	return clk.Now().Sub(t)
}
