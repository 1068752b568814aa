package state

import (
	"log"
	"time"
)

// Toast is the single transient label shown over the board.
type Toast struct {
	sched Scheduler
	delay time.Duration

	text       string
	visible    bool
	generation uint64
	timer      Timer

	// OnChange is called whenever the label appears, changes or disappears.
	OnChange func()
}

// NewToast creates a toast whose labels expire after delay.
func NewToast(sched Scheduler, delay time.Duration) *Toast {
	return &Toast{sched: sched, delay: delay}
}

// Show replaces the current label, if any, and schedules its removal.
func (t *Toast) Show(text string) {
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.generation++
	gen := t.generation
	t.text = text
	t.visible = true
	t.timer = t.sched.AfterFunc(t.delay, func() { t.expire(gen) })
	t.changed()
}

// a timer that was already due when a newer label replaced it must not
// hide the newer one
func (t *Toast) expire(gen uint64) {
	if gen != t.generation || !t.visible {
		log.Printf("[TOAST] Ignoring stale expiry %d (current %d)", gen, t.generation)
		return
	}
	t.visible = false
	t.text = ""
	t.timer = nil
	t.changed()
}

// Current returns the visible label text.
func (t *Toast) Current() (string, bool) {
	return t.text, t.visible
}

// Generation identifies the label currently shown.
func (t *Toast) Generation() uint64 {
	return t.generation
}

func (t *Toast) changed() {
	if t.OnChange != nil {
		t.OnChange()
	}
}
