// Package editor implements the nested chapter/lesson field-array editor of
// the course wizard. Rows are keyed by generated opaque ids, never by array
// index, so removing a row cannot corrupt the state bound to its siblings.
// The invariant "at least one chapter, and at least one lesson per chapter"
// holds continuously; removing the last row of either array is a no-op.
package editor

import (
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/edusphere/admin-client/client"
	"github.com/edusphere/admin-client/model"
)

// LessonRow is the editable state of one lesson. Numeric and enum fields are
// kept as the strings the UI controls produce and coerced on submit, the way
// the wire format wants them.
type LessonRow struct {
	Key         string // stable row identity, not the display position
	ID          uint   // server id, zero for unsaved rows
	Title       string
	Duration    string
	Type        string
	Status      string
	IsPreview   bool
	AvailableAt string // empty means no scheduled availability
	Order       int    // as loaded; display only, recomputed on submit
	ContentURL  string
	Errors      map[string]string
}

// ChapterRow is the editable state of one chapter and its lesson array.
type ChapterRow struct {
	Key     string
	ID      uint
	Title   string
	Status  string
	Lessons []LessonRow
	Errors  map[string]string
}

// Editor owns the ordered chapter list.
type Editor struct {
	chapters []ChapterRow
}

// New creates an editor with the default single blank chapter holding one
// blank lesson. The editor never renders zero rows.
func New() *Editor {
	e := &Editor{}
	e.chapters = []ChapterRow{blankChapter()}
	return e
}

func blankChapter() ChapterRow {
	return ChapterRow{
		Key:     uuid.New().String(),
		Status:  strconv.Itoa(int(model.ChapterPublished)),
		Lessons: []LessonRow{blankLesson(1)},
	}
}

func blankLesson(order int) LessonRow {
	return LessonRow{
		Key:    uuid.New().String(),
		Type:   strconv.Itoa(int(model.LessonTypeVideo)),
		Status: strconv.Itoa(int(model.ChapterPublished)),
		Order:  order,
	}
}

// Chapters exposes the rows for rendering and in-place edits through
// ChapterAt/LessonAt.
func (e *Editor) Chapters() []ChapterRow {
	return e.chapters
}

// ChapterAt returns a mutable reference to one chapter row, nil when out of
// range.
func (e *Editor) ChapterAt(i int) *ChapterRow {
	if i < 0 || i >= len(e.chapters) {
		return nil
	}
	return &e.chapters[i]
}

// LessonAt returns a mutable reference to one lesson row, nil when out of
// range.
func (e *Editor) LessonAt(chapterIdx, lessonIdx int) *LessonRow {
	ch := e.ChapterAt(chapterIdx)
	if ch == nil || lessonIdx < 0 || lessonIdx >= len(ch.Lessons) {
		return nil
	}
	return &ch.Lessons[lessonIdx]
}

// AppendChapter inserts a chapter with one blank lesson at the end.
func (e *Editor) AppendChapter() {
	e.chapters = append(e.chapters, blankChapter())
}

// RemoveChapter removes the chapter at i. The last remaining chapter cannot
// be removed; the call reports whether anything changed.
func (e *Editor) RemoveChapter(i int) bool {
	if len(e.chapters) <= 1 || i < 0 || i >= len(e.chapters) {
		return false
	}
	e.chapters = append(e.chapters[:i], e.chapters[i+1:]...)
	return true
}

// AppendLesson inserts a blank lesson at the end of a chapter's lesson array,
// with order set to the new length.
func (e *Editor) AppendLesson(chapterIdx int) bool {
	ch := e.ChapterAt(chapterIdx)
	if ch == nil {
		return false
	}
	ch.Lessons = append(ch.Lessons, blankLesson(len(ch.Lessons)+1))
	return true
}

// RemoveLesson removes one lesson row. A chapter's last lesson cannot be
// removed.
func (e *Editor) RemoveLesson(chapterIdx, lessonIdx int) bool {
	ch := e.ChapterAt(chapterIdx)
	if ch == nil || len(ch.Lessons) <= 1 || lessonIdx < 0 || lessonIdx >= len(ch.Lessons) {
		return false
	}
	ch.Lessons = append(ch.Lessons[:lessonIdx], ch.Lessons[lessonIdx+1:]...)
	return true
}

// Load replaces the whole editor state with a course's existing chapters, for
// the edit flow. When the server returns no chapters the default blank
// chapter is kept instead.
func (e *Editor) Load(chapters []model.Chapter) {
	if len(chapters) == 0 {
		e.chapters = []ChapterRow{blankChapter()}
		return
	}

	rows := make([]ChapterRow, 0, len(chapters))
	for _, ch := range chapters {
		row := ChapterRow{
			Key:    uuid.New().String(),
			ID:     ch.ID,
			Title:  ch.Title,
			Status: strconv.Itoa(int(ch.Status)),
		}
		for _, l := range ch.Lessons {
			lesson := LessonRow{
				Key:        uuid.New().String(),
				ID:         l.ID,
				Title:      l.Title,
				Duration:   strconv.Itoa(l.Duration),
				Type:       strconv.Itoa(int(l.Type)),
				Status:     strconv.Itoa(int(l.Status)),
				IsPreview:  l.IsPreview,
				Order:      l.Order,
				ContentURL: l.ContentURL,
			}
			if l.AvailableAt != nil {
				lesson.AvailableAt = l.AvailableAt.Format("2006-01-02T15:04")
			}
			row.Lessons = append(row.Lessons, lesson)
		}
		if len(row.Lessons) == 0 {
			row.Lessons = []LessonRow{blankLesson(1)}
		}
		rows = append(rows, row)
	}
	e.chapters = rows
}

// BuildPayload transforms the editor state into the wire format: enum strings
// become integers, is_preview becomes 0/1, empty optional strings become
// null, and every lesson's order is overwritten with its 1-based display
// position regardless of what was loaded.
func (e *Editor) BuildPayload() []client.ChapterPayload {
	payload := make([]client.ChapterPayload, 0, len(e.chapters))
	for _, ch := range e.chapters {
		chapter := client.ChapterPayload{
			ID:     ch.ID,
			Title:  strings.TrimSpace(ch.Title),
			Status: atoiOrZero(ch.Status),
		}
		for j, l := range ch.Lessons {
			lesson := client.LessonPayload{
				ID:         l.ID,
				Title:      strings.TrimSpace(l.Title),
				Duration:   atoiOrZero(l.Duration),
				Type:       atoiOrZero(l.Type),
				Status:     atoiOrZero(l.Status),
				Order:      j + 1,
				ContentURL: strings.TrimSpace(l.ContentURL),
			}
			if l.IsPreview {
				lesson.IsPreview = 1
			}
			if at := strings.TrimSpace(l.AvailableAt); at != "" {
				lesson.AvailableAt = &at
			}
			chapter.Lessons = append(chapter.Lessons, lesson)
		}
		payload = append(payload, chapter)
	}
	return payload
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

// ApplyFieldErrors binds a server validation map onto the exact nested rows.
// Paths look like "chapters.0.title" or "chapters.0.lessons.1.title"; entries
// that do not resolve to a live row are dropped (the accompanying toast still
// shows the top-level message).
func (e *Editor) ApplyFieldErrors(errs map[string][]string) {
	e.ClearErrors()
	for path, messages := range errs {
		if len(messages) == 0 {
			continue
		}
		parts := strings.Split(path, ".")
		if len(parts) < 3 || parts[0] != "chapters" {
			continue
		}
		chapterIdx, err := strconv.Atoi(parts[1])
		if err != nil {
			continue
		}
		ch := e.ChapterAt(chapterIdx)
		if ch == nil {
			continue
		}

		if len(parts) == 3 {
			if ch.Errors == nil {
				ch.Errors = make(map[string]string)
			}
			ch.Errors[parts[2]] = messages[0]
			continue
		}

		if len(parts) == 5 && parts[2] == "lessons" {
			lessonIdx, err := strconv.Atoi(parts[3])
			if err != nil {
				continue
			}
			lesson := e.LessonAt(chapterIdx, lessonIdx)
			if lesson == nil {
				continue
			}
			if lesson.Errors == nil {
				lesson.Errors = make(map[string]string)
			}
			lesson.Errors[parts[4]] = messages[0]
		}
	}
}

// ClearErrors drops all bound field errors, typically before a resubmit.
func (e *Editor) ClearErrors() {
	for i := range e.chapters {
		e.chapters[i].Errors = nil
		for j := range e.chapters[i].Lessons {
			e.chapters[i].Lessons[j].Errors = nil
		}
	}
}
