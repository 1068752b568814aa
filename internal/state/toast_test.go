package state

import (
	"testing"
	"time"
)

type fakeTimer struct {
	f       func()
	d       time.Duration
	stopped bool
}

func (ft *fakeTimer) Stop() bool {
	was := !ft.stopped
	ft.stopped = true
	return was
}

// fire runs the callback regardless of Stop, like a timer that was
// already due when it was stopped.
func (ft *fakeTimer) fire() {
	ft.f()
}

type fakeScheduler struct {
	timers []*fakeTimer
}

func (fs *fakeScheduler) AfterFunc(d time.Duration, f func()) Timer {
	ft := &fakeTimer{f: f, d: d}
	fs.timers = append(fs.timers, ft)
	return ft
}

func TestToastShowAndExpire(t *testing.T) {
	sched := &fakeScheduler{}
	toast := NewToast(sched, 3*time.Second)

	toast.Show("empty")
	text, ok := toast.Current()
	if !ok || text != "empty" {
		t.Fatalf("Current() = %q, %v", text, ok)
	}
	if len(sched.timers) != 1 || sched.timers[0].d != 3*time.Second {
		t.Fatalf("expected one 3s timer, got %+v", sched.timers)
	}

	sched.timers[0].fire()
	if _, ok := toast.Current(); ok {
		t.Error("label should be gone after the timer fires")
	}
}

func TestToastReplace(t *testing.T) {
	sched := &fakeScheduler{}
	toast := NewToast(sched, 3*time.Second)

	toast.Show("square")
	toast.Show("circle")

	if !sched.timers[0].stopped {
		t.Error("replacing a label should stop its timer")
	}
	text, ok := toast.Current()
	if !ok || text != "circle" {
		t.Fatalf("Current() = %q, %v; want circle", text, ok)
	}

	// the first timer firing late must not touch the second label
	sched.timers[0].fire()
	text, ok = toast.Current()
	if !ok || text != "circle" {
		t.Fatalf("stale timer removed the newer label: %q, %v", text, ok)
	}

	sched.timers[1].fire()
	if _, ok := toast.Current(); ok {
		t.Error("second timer should remove the second label")
	}
}

func TestToastOnChange(t *testing.T) {
	sched := &fakeScheduler{}
	toast := NewToast(sched, time.Second)
	calls := 0
	toast.OnChange = func() { calls++ }

	toast.Show("pentagon")
	sched.timers[0].fire()
	sched.timers[0].fire()

	if calls != 2 {
		t.Errorf("OnChange called %d times, want 2", calls)
	}
	if toast.Generation() != 1 {
		t.Errorf("generation = %d, want 1", toast.Generation())
	}
}

func TestSchedulerFunc(t *testing.T) {
	var got time.Duration
	sched := SchedulerFunc(func(d time.Duration, f func()) Timer {
		got = d
		return &fakeTimer{f: f}
	})
	sched.AfterFunc(2*time.Second, func() {})
	if got != 2*time.Second {
		t.Errorf("delay = %v", got)
	}
}
