package editor

import (
	"testing"
	"time"

	"github.com/edusphere/admin-client/model"
)

func TestNewEditorNeverRendersZeroRows(t *testing.T) {
	e := New()
	if len(e.Chapters()) != 1 {
		t.Fatalf("new editor has %d chapters, want 1", len(e.Chapters()))
	}
	if len(e.ChapterAt(0).Lessons) != 1 {
		t.Fatalf("default chapter has %d lessons, want 1", len(e.ChapterAt(0).Lessons))
	}
	if e.ChapterAt(0).Key == "" || e.LessonAt(0, 0).Key == "" {
		t.Fatal("rows must carry generated keys")
	}
}

func TestRemovingLastRowIsNoOp(t *testing.T) {
	e := New()
	if e.RemoveChapter(0) {
		t.Fatal("removed the only chapter")
	}
	if e.RemoveLesson(0, 0) {
		t.Fatal("removed the only lesson")
	}

	e.AppendChapter()
	if !e.RemoveChapter(1) {
		t.Fatal("second chapter should be removable")
	}
	e.AppendLesson(0)
	if !e.RemoveLesson(0, 0) {
		t.Fatal("first of two lessons should be removable")
	}
	if len(e.ChapterAt(0).Lessons) != 1 {
		t.Fatalf("chapter left with %d lessons", len(e.ChapterAt(0).Lessons))
	}
}

func TestRowKeysSurviveSiblingRemoval(t *testing.T) {
	e := New()
	e.AppendLesson(0)
	e.AppendLesson(0)
	e.LessonAt(0, 1).Title = "Middle"
	e.LessonAt(0, 2).Title = "Last"
	lastKey := e.LessonAt(0, 2).Key

	if !e.RemoveLesson(0, 1) {
		t.Fatal("remove failed")
	}
	moved := e.LessonAt(0, 1)
	if moved.Key != lastKey || moved.Title != "Last" {
		t.Fatalf("surviving row lost its identity: %+v", moved)
	}
}

func TestBuildPayloadRecomputesOrder(t *testing.T) {
	e := New()
	e.AppendLesson(0)
	e.AppendLesson(0)
	// scrambled loaded orders must not survive the submit
	e.LessonAt(0, 0).Order = 5
	e.LessonAt(0, 1).Order = 2
	e.LessonAt(0, 2).Order = 9
	e.LessonAt(0, 0).Title = "A"
	e.LessonAt(0, 1).Title = "B"
	e.LessonAt(0, 2).Title = "C"

	payload := e.BuildPayload()
	if len(payload) != 1 {
		t.Fatalf("payload has %d chapters", len(payload))
	}
	for i, lesson := range payload[0].Lessons {
		if lesson.Order != i+1 {
			t.Errorf("lesson %d order = %d, want %d", i, lesson.Order, i+1)
		}
	}
}

func TestBuildPayloadCoercesFieldTypes(t *testing.T) {
	e := New()
	ch := e.ChapterAt(0)
	ch.Title = "  Intro  "
	ch.Status = "1"
	l := e.LessonAt(0, 0)
	l.Title = "Welcome"
	l.Duration = "15"
	l.Type = "2"
	l.IsPreview = true
	l.AvailableAt = "2026-10-01T09:00"

	payload := e.BuildPayload()
	chapter := payload[0]
	if chapter.Title != "Intro" {
		t.Errorf("chapter title = %q", chapter.Title)
	}
	lesson := chapter.Lessons[0]
	if lesson.Duration != 15 || lesson.Type != 2 {
		t.Errorf("numeric coercion failed: %+v", lesson)
	}
	if lesson.IsPreview != 1 {
		t.Errorf("is_preview = %d, want 1", lesson.IsPreview)
	}
	if lesson.AvailableAt == nil || *lesson.AvailableAt != "2026-10-01T09:00" {
		t.Errorf("available_at = %v", lesson.AvailableAt)
	}

	l.AvailableAt = "   "
	if got := e.BuildPayload()[0].Lessons[0].AvailableAt; got != nil {
		t.Errorf("blank available_at should be nil, got %q", *got)
	}
}

func TestLoadKeepsDefaultWhenServerHasNoChapters(t *testing.T) {
	e := New()
	e.ChapterAt(0).Title = "About to be replaced"
	e.Load(nil)
	if len(e.Chapters()) != 1 {
		t.Fatalf("load(nil) left %d chapters", len(e.Chapters()))
	}
	if e.ChapterAt(0).Title != "" {
		t.Fatal("load(nil) should reset to a blank chapter")
	}
}

func TestLoadMapsExistingChapters(t *testing.T) {
	at := time.Date(2026, 10, 1, 9, 30, 0, 0, time.UTC)
	e := New()
	e.Load([]model.Chapter{
		{
			ID:     4,
			Title:  "Basics",
			Status: model.ChapterPublished,
			Lessons: []model.Lesson{
				{ID: 40, Title: "Hello", Duration: 12, Type: model.LessonTypeVideo, IsPreview: true, AvailableAt: &at, Order: 1},
			},
		},
		{ID: 5, Title: "Empty", Status: model.ChapterHidden},
	})

	if len(e.Chapters()) != 2 {
		t.Fatalf("loaded %d chapters", len(e.Chapters()))
	}
	lesson := e.LessonAt(0, 0)
	if lesson.ID != 40 || lesson.Duration != "12" || !lesson.IsPreview {
		t.Fatalf("lesson mapped wrong: %+v", lesson)
	}
	if lesson.AvailableAt != "2026-10-01T09:30" {
		t.Errorf("available_at = %q", lesson.AvailableAt)
	}
	// a chapter the server returns without lessons still renders one row
	if len(e.ChapterAt(1).Lessons) != 1 {
		t.Fatalf("empty chapter got %d lesson rows", len(e.ChapterAt(1).Lessons))
	}
}

func TestApplyFieldErrorsBindsNestedPaths(t *testing.T) {
	e := New()
	e.AppendLesson(0)

	e.ApplyFieldErrors(map[string][]string{
		"chapters.0.title":           {"The title field is required."},
		"chapters.0.lessons.1.title": {"The title field is required."},
		"chapters.7.title":           {"dangling chapter"},
		"chapters.0.lessons.9.title": {"dangling lesson"},
		"title":                      {"not a nested path"},
	})

	if got := e.ChapterAt(0).Errors["title"]; got != "The title field is required." {
		t.Errorf("chapter error = %q", got)
	}
	if got := e.LessonAt(0, 1).Errors["title"]; got != "The title field is required." {
		t.Errorf("lesson error = %q", got)
	}
	if e.LessonAt(0, 0).Errors != nil {
		t.Errorf("error leaked onto the wrong lesson: %v", e.LessonAt(0, 0).Errors)
	}

	e.ClearErrors()
	if e.ChapterAt(0).Errors != nil || e.LessonAt(0, 1).Errors != nil {
		t.Fatal("ClearErrors left bound errors behind")
	}
}
