package board

import "time"

// Delay is a busy-wait delay. It spins on the monotonic clock instead of sleeping, so
// the caller keeps the cpu for the whole wait and nothing else is scheduled.
type Delay struct {
	clocks Clocks
	now    func() time.Time
}

// NewDelay returns a delay for the frozen clocks.
func NewDelay(c Clocks) (*Delay, error) {
	if !c.Frozen() {
		return nil, StatusErr{
			Status:  ClocksNotFrozen,
			Message: "delay needs frozen clocks",
		}
	}
	return &Delay{clocks: c, now: time.Now}, nil
}

// Clocks the delay was created with
func (d *Delay) Clocks() Clocks {
	return d.clocks
}

// DelayMs blocks for at least ms milliseconds. It implements ledpattern.Delayer.
func (d *Delay) DelayMs(ms uint32) {
	d.Wait(time.Duration(ms) * time.Millisecond)
}

// Wait blocks for at least dur. Zero and negative durations return at once.
func (d *Delay) Wait(dur time.Duration) {
	if dur <= 0 {
		return
	}
	start := d.now()
	for d.now().Sub(start) < dur {
	}
}
