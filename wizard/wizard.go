// Package wizard implements the linear course-creation flow: eight steps,
// strictly forward, where every step past the first needs the course id
// produced by the step-1 submit. The edit flow does not use this machine, it
// composes the same step forms non-linearly.
package wizard

import (
	"errors"
	"sync"
	"time"
)

// Step numbers of the creation flow.
const (
	StepBasicInfo = 1
	StepChapters  = 2
	StepFAQs      = 3
	StepFeatures  = 4
	StepJoins     = 5
	StepBatch     = 6
	StepPublish   = 7
	StepDone      = 8
)

// DefaultRedirectDelay is how long the terminal step lingers before the
// scheduled redirect fires.
const DefaultRedirectDelay = 3 * time.Second

var (
	ErrCourseRequired = errors.New("course must be created before this step")
	ErrCourseAssigned = errors.New("course id is already set")
	ErrFinished       = errors.New("wizard is already on the terminal step")
)

// Wizard holds only the step number and the course id. Each step's form owns
// its own submit and error state.
type Wizard struct {
	mu            sync.Mutex
	step          int
	courseID      uint
	redirectDelay time.Duration
	onRedirect    func()
	timer         *time.Timer
	closed        bool
}

// New creates a wizard on step 1. onRedirect runs once, redirectDelay after
// the terminal step is entered, unless the wizard is closed first.
func New(redirectDelay time.Duration, onRedirect func()) *Wizard {
	if redirectDelay <= 0 {
		redirectDelay = DefaultRedirectDelay
	}
	return &Wizard{
		step:          StepBasicInfo,
		redirectDelay: redirectDelay,
		onRedirect:    onRedirect,
	}
}

// Step returns the current step number.
func (w *Wizard) Step() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.step
}

// CourseID returns the id set by the step-1 submit, zero until then.
func (w *Wizard) CourseID() uint {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.courseID
}

// SetCourseID records the id returned by the step-1 submit. It is set exactly
// once; a later step failing never clears it.
func (w *Wizard) SetCourseID(id uint) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.courseID != 0 {
		return ErrCourseAssigned
	}
	w.courseID = id
	return nil
}

// Advance moves to the next step. Entry into steps 2..7 is gated on a known
// course id. Entering the terminal step schedules the one-shot redirect.
func (w *Wizard) Advance() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.step >= StepDone {
		return ErrFinished
	}

	next := w.step + 1
	if next >= StepChapters && next <= StepPublish && w.courseID == 0 {
		return ErrCourseRequired
	}

	w.step = next
	if w.step == StepDone && !w.closed {
		w.timer = time.AfterFunc(w.redirectDelay, w.fireRedirect)
	}
	return nil
}

// CanRender reports whether a step's form may be shown: only the current
// step, and never a child step without a course id.
func (w *Wizard) CanRender(step int) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if step != w.step {
		return false
	}
	if step >= StepChapters && step <= StepPublish && w.courseID == 0 {
		return false
	}
	return true
}

// Close cancels the scheduled redirect, for the owner navigating away before
// the timer fires. Safe to call more than once.
func (w *Wizard) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.closed = true
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
}

func (w *Wizard) fireRedirect() {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	w.timer = nil
	onRedirect := w.onRedirect
	w.mu.Unlock()

	if onRedirect != nil {
		onRedirect()
	}
}
