package loop

import "time"

// TimeProvider abstracts the clock the loop measures frames with
type TimeProvider interface {
	Now() time.Time
}

// Monotonic is the real system clock with monotonic readings
type Monotonic struct{}

func (Monotonic) Now() time.Time {
	return time.Now()
}
