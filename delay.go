package oled

import "time"

// resetPulse is the minimum time the reset line is held low.
const resetPulse = 100 * time.Microsecond

// busyWait spins for at least d without yielding to the scheduler.
var busyWait = func(d time.Duration) {
	for start := time.Now(); time.Since(start) < d; {
	}
}
