package wizard

import (
	"errors"
	"testing"
	"time"
)

func TestAdvanceGatedOnCourseID(t *testing.T) {
	w := New(time.Hour, nil)
	defer w.Close()

	if w.Step() != StepBasicInfo {
		t.Fatalf("start step = %d", w.Step())
	}
	if err := w.Advance(); !errors.Is(err, ErrCourseRequired) {
		t.Fatalf("advance without course id: err = %v", err)
	}
	if w.Step() != StepBasicInfo {
		t.Fatalf("failed advance moved the step to %d", w.Step())
	}

	if err := w.SetCourseID(42); err != nil {
		t.Fatalf("SetCourseID: %v", err)
	}
	for want := StepChapters; want <= StepDone; want++ {
		if err := w.Advance(); err != nil {
			t.Fatalf("advance to %d: %v", want, err)
		}
		if w.Step() != want {
			t.Fatalf("step = %d, want %d", w.Step(), want)
		}
	}
	if err := w.Advance(); !errors.Is(err, ErrFinished) {
		t.Fatalf("advance past terminal step: err = %v", err)
	}
}

func TestCourseIDSetExactlyOnce(t *testing.T) {
	w := New(time.Hour, nil)
	defer w.Close()

	if err := w.SetCourseID(10); err != nil {
		t.Fatalf("first set: %v", err)
	}
	if err := w.SetCourseID(11); !errors.Is(err, ErrCourseAssigned) {
		t.Fatalf("second set: err = %v", err)
	}
	if w.CourseID() != 10 {
		t.Fatalf("course id = %d, want 10", w.CourseID())
	}
}

func TestCanRenderOnlyCurrentStep(t *testing.T) {
	w := New(time.Hour, nil)
	defer w.Close()

	if !w.CanRender(StepBasicInfo) {
		t.Fatal("step 1 must render on a fresh wizard")
	}
	if w.CanRender(StepChapters) {
		t.Fatal("step 2 rendered while the wizard is on step 1")
	}

	w.SetCourseID(5)
	w.Advance()
	if !w.CanRender(StepChapters) {
		t.Fatal("current step refused to render")
	}
	if w.CanRender(StepBasicInfo) {
		t.Fatal("a past step rendered")
	}
}

func TestTerminalStepSchedulesRedirect(t *testing.T) {
	fired := make(chan struct{})
	w := New(10*time.Millisecond, func() { close(fired) })
	defer w.Close()

	w.SetCourseID(1)
	for w.Step() < StepDone {
		if err := w.Advance(); err != nil {
			t.Fatalf("advance: %v", err)
		}
	}

	select {
	case <-fired:
	case <-time.After(2 * time.Second):
		t.Fatal("redirect never fired")
	}
}

func TestCloseCancelsPendingRedirect(t *testing.T) {
	fired := make(chan struct{})
	w := New(50*time.Millisecond, func() { close(fired) })

	w.SetCourseID(1)
	for w.Step() < StepDone {
		if err := w.Advance(); err != nil {
			t.Fatalf("advance: %v", err)
		}
	}
	w.Close()
	w.Close() // idempotent

	select {
	case <-fired:
		t.Fatal("redirect fired after Close")
	case <-time.After(200 * time.Millisecond):
	}
}
