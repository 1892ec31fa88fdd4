package manager

import "time"

// BerryTimer counts down the berry lifetime from wall-clock frame deltas,
// independently of the movement tick.
type BerryTimer struct {
	active    bool
	remaining time.Duration
	lastFrame time.Time
}

// Reset arms the countdown with the full lifetime, starting at now.
func (bt *BerryTimer) Reset(lifetime time.Duration, now time.Time) {
	bt.active = true
	bt.remaining = lifetime
	bt.lastFrame = now
}

// Clear disarms the countdown.
func (bt *BerryTimer) Clear() {
	bt.active = false
	bt.remaining = 0
	bt.lastFrame = time.Time{}
}

func (bt *BerryTimer) Active() bool {
	return bt.active
}

func (bt *BerryTimer) Remaining() time.Duration {
	return bt.remaining
}

// Tick subtracts delta and reports whether the berry has expired.
func (bt *BerryTimer) Tick(delta time.Duration) bool {
	if !bt.active {
		return false
	}
	bt.remaining -= delta
	return bt.remaining <= 0
}

// Frame advances the countdown by the time elapsed since the previous frame.
// While not running only the frame timestamp moves, so resuming never applies
// the paused interval as one large delta.
func (bt *BerryTimer) Frame(now time.Time, running bool) bool {
	if !bt.active {
		return false
	}
	if bt.lastFrame.IsZero() {
		bt.lastFrame = now
	}
	delta := now.Sub(bt.lastFrame)
	bt.lastFrame = now
	if !running || delta <= 0 {
		return false
	}
	return bt.Tick(delta)
}
