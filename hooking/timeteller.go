package hooking

import "time"

// WallClock tells the seconds elapsed since it was created.
type WallClock struct {
	start time.Time
}

// NewWallClock creates a WallClock that starts counting now.
func NewWallClock() *WallClock {
	return &WallClock{start: time.Now()}
}

// Now returns the elapsed time in seconds.
func (c *WallClock) Now() float64 {
	return time.Since(c.start).Seconds()
}
