package entities

import "time"

// TickLock is a non-blocking damage lock held for a fixed number of ticks after
// each successful acquisition. Attempts while it is held fail and are dropped.
type TickLock struct {
	duration  int
	remaining int
}

// NewTickLock creates a released lock that holds for duration ticks once acquired.
func NewTickLock(duration int) TickLock {
	return TickLock{duration: duration}
}

// TryAcquire takes the lock if it is free.
func (l *TickLock) TryAcquire() bool {
	if l.remaining > 0 {
		return false
	}
	l.remaining = l.duration
	return true
}

// Tick advances the lock by one simulation step.
func (l *TickLock) Tick() {
	if l.remaining > 0 {
		l.remaining--
	}
}

// Held reports whether damage is currently being dropped.
func (l *TickLock) Held() bool {
	return l.remaining > 0
}

// ClockLock is TickLock measured in wall-clock time.
type ClockLock struct {
	duration time.Duration
	until    time.Time
	now      func() time.Time
}

// NewClockLock creates a released lock; now defaults to time.Now.
func NewClockLock(duration time.Duration, now func() time.Time) *ClockLock {
	if now == nil {
		now = time.Now
	}
	return &ClockLock{duration: duration, now: now}
}

// TryAcquire takes the lock if its previous window has elapsed.
func (l *ClockLock) TryAcquire() bool {
	t := l.now()
	if t.Before(l.until) {
		return false
	}
	l.until = t.Add(l.duration)
	return true
}

// Held reports whether damage is currently being dropped.
func (l *ClockLock) Held() bool {
	return l.now().Before(l.until)
}
