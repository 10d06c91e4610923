package playback

import "time"

// Timer is a pending one-shot callback.
type Timer interface {
	Stop() bool
}

// Scheduler arms one-shot callbacks. Implementations must run f on a
// different goroutine from the caller; the player holds its lock while
// arming.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type clockScheduler struct{}

func (clockScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// RealTime schedules ticks on the wall clock.
var RealTime Scheduler = clockScheduler{}

// driver keeps at most one tick pending. All methods run under the
// player's lock.
type driver struct {
	sched   Scheduler
	pending Timer
	epoch   uint64
}

// arm schedules fire after interval unless a tick is already pending. The
// interval is read here, so a speed change only affects ticks armed later.
func (d *driver) arm(interval time.Duration, fire func(epoch uint64)) {
	if d.pending != nil {
		return
	}
	epoch := d.epoch
	d.pending = d.sched.AfterFunc(interval, func() { fire(epoch) })
}

// cancel stops the pending tick and invalidates any tick already in flight.
func (d *driver) cancel() {
	d.epoch++
	if d.pending != nil {
		d.pending.Stop()
		d.pending = nil
	}
}

// fired consumes the pending tick. It reports false for ticks armed before
// the last cancel.
func (d *driver) fired(epoch uint64) bool {
	if epoch != d.epoch {
		return false
	}
	d.pending = nil
	return true
}

func (d *driver) armed() bool {
	return d.pending != nil
}
