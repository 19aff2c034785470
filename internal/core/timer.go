package core

import (
	"sync"
	"time"
)

// FixedStep helps run simulation updates at a steady interval from a frame
// loop that ticks faster than the simulation.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep controller firing once per interval.
func NewFixedStep(interval time.Duration) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetInterval(interval)
	return fs
}

// SetInterval changes the step length. It is safe to call from the main loop.
func (f *FixedStep) SetInterval(interval time.Duration) {
	if interval <= 0 {
		interval = DefaultInterval
	}
	f.step = interval
}

// Interval returns the current step length.
func (f *FixedStep) Interval() time.Duration { return f.step }

// Restart drops any accumulated time so the next step is a full interval away.
func (f *FixedStep) Restart() {
	f.accumulator = 0
	f.last = time.Time{}
}

// ShouldStep reports whether the simulation should advance by one tick.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		// Never queue up more than one pending step after a stall.
		if f.accumulator > f.step {
			f.accumulator = f.step
		}
		return true
	}
	return false
}

// DefaultInterval is the play speed used when none is given.
const DefaultInterval = 100 * time.Millisecond

// FrameScheduler is a Scheduler driven by an external frame loop. Callbacks
// run on whichever goroutine calls Advance.
type FrameScheduler struct {
	timer *FixedStep
	fn    func()
	armed uint64
}

// NewFrameScheduler returns a disarmed scheduler.
func NewFrameScheduler() *FrameScheduler {
	return &FrameScheduler{timer: NewFixedStep(DefaultInterval)}
}

// Schedule arms fn to run once per interval of Advance calls. Arming again
// replaces the previous callback.
func (s *FrameScheduler) Schedule(interval time.Duration, fn func()) func() {
	s.timer.SetInterval(interval)
	s.timer.Restart()
	s.fn = fn
	s.armed++
	id := s.armed
	return func() {
		if s.armed == id {
			s.fn = nil
		}
	}
}

// Armed reports whether a callback is currently scheduled.
func (s *FrameScheduler) Armed() bool { return s.fn != nil }

// Advance runs the armed callback when its interval has elapsed.
func (s *FrameScheduler) Advance() {
	if s.fn == nil {
		return
	}
	if s.timer.ShouldStep() {
		s.fn()
	}
}

// TickerScheduler runs callbacks on a dedicated goroutine using time.Ticker.
type TickerScheduler struct{}

// Schedule starts a goroutine invoking fn every interval until cancelled.
func (TickerScheduler) Schedule(interval time.Duration, fn func()) func() {
	if interval <= 0 {
		interval = DefaultInterval
	}
	done := make(chan struct{})
	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()
		for {
			select {
			case <-done:
				return
			case <-t.C:
				select {
				case <-done:
					return
				default:
				}
				fn()
			}
		}
	}()
	var once sync.Once
	return func() { once.Do(func() { close(done) }) }
}
