package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/edusphere/admin-client/model"
)

// ChapterPayload is the wire format the chapter editor submits. Status is a
// small integer, never the UI string.
type ChapterPayload struct {
	ID      uint            `json:"id,omitempty"`
	Title   string          `json:"title"`
	Status  int             `json:"status"`
	Lessons []LessonPayload `json:"lessons"`
}

// LessonPayload is the wire format of one lesson row. Order is always the
// 1-based display position at submit time. AvailableAt is null when the
// lesson has no scheduled availability.
type LessonPayload struct {
	ID          uint    `json:"id,omitempty"`
	Title       string  `json:"title"`
	Duration    int     `json:"duration"`
	Type        int     `json:"type"`
	Status      int     `json:"status"`
	IsPreview   int     `json:"is_preview"`
	AvailableAt *string `json:"available_at"`
	Order       int     `json:"order"`
	ContentURL  string  `json:"content_url"`
}

// GetCourseChapters fetches the existing chapters (with lessons) of a course.
func (c *Client) GetCourseChapters(ctx context.Context, courseID uint) ([]model.Chapter, error) {
	var raw json.RawMessage
	if err := c.get(ctx, fmt.Sprintf("/courses/%d/chapters", courseID), nil, &raw); err != nil {
		return nil, err
	}

	var chapters []model.Chapter
	if err := decodeCollection(raw, "chapters", &chapters); err != nil {
		return nil, err
	}
	return chapters, nil
}

// SaveCourseChapters replaces the full chapter/lesson tree of a course.
// Validation failures come back as an *APIError whose field errors use
// dotted/indexed paths like "chapters.0.lessons.1.title".
func (c *Client) SaveCourseChapters(ctx context.Context, courseID uint, chapters []ChapterPayload) error {
	body := map[string]interface{}{"chapters": chapters}
	return c.put(ctx, fmt.Sprintf("/courses/%d/chapters", courseID), body, nil)
}
