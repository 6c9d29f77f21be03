package model

import "time"

// Course is the top-level catalog entity. Child collections (chapters, FAQs,
// facilities, learnings, tools, join requirements) are attached through their
// own endpoints keyed by course id and are therefore omitempty here.
type Course struct {
	ID         uint         `json:"id"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
	CategoryID uint         `json:"category_id"`
	Title      string       `json:"title"`
	Slug       string       `json:"slug"`
	Summary    string       `json:"summary"`
	Price      float64      `json:"price"`
	Status     CourseStatus `json:"status"`
	Thumbnail  string       `json:"thumbnail"`

	// Relationships
	Category *Category         `json:"category,omitempty"`
	Chapters []Chapter         `json:"chapters,omitempty"`
	FAQs     []FAQ             `json:"faqs,omitempty"`
	Features []CourseFeature   `json:"features,omitempty"`
	Joins    []JoinRequirement `json:"joins,omitempty"`
}

// Category groups courses in the catalog.
type Category struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Chapter belongs to exactly one course. Position is implicit in list order.
type Chapter struct {
	ID       uint          `json:"id"`
	CourseID uint          `json:"course_id"`
	Title    string        `json:"title"`
	Status   ChapterStatus `json:"status"`
	Lessons  []Lesson      `json:"lessons,omitempty"`
}

// Lesson belongs to exactly one chapter. Order is recomputed from display
// position on every save, any value stored here is display-only.
type Lesson struct {
	ID          uint          `json:"id"`
	ChapterID   uint          `json:"chapter_id"`
	Title       string        `json:"title"`
	Duration    int           `json:"duration"` // minutes
	Type        LessonType    `json:"type"`
	Status      ChapterStatus `json:"status"`
	IsPreview   bool          `json:"is_preview"`
	AvailableAt *time.Time    `json:"available_at,omitempty"`
	Order       int           `json:"order"`
	ContentURL  string        `json:"content_url"`
}

// FAQ is a question/answer pair attached to a course.
type FAQ struct {
	ID       uint   `json:"id"`
	CourseID uint   `json:"course_id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// CourseFeature is a reusable selling point (facility, learning outcome or
// required tool) assignable to courses. Kind tells the section it renders in.
type CourseFeature struct {
	ID   uint   `json:"id"`
	Kind string `json:"kind"` // facility, learning, tool
	Name string `json:"name"`
}

// JoinRequirement is an eligibility tag ("who can join") assignable to a
// course.
type JoinRequirement struct {
	ID    uint   `json:"id"`
	Label string `json:"label"`
}
