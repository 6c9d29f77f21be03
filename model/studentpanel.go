package model

import "time"

// DashboardSummary backs the student-facing dashboard widgets.
type DashboardSummary struct {
	EnrolledCourses  int     `json:"enrolled_courses"`
	CompletedLessons int     `json:"completed_lessons"`
	TotalLessons     int     `json:"total_lessons"`
	DueAmount        float64 `json:"due_amount"`
}

// EnrolledCourse is one row of the student's "my courses" list.
type EnrolledCourse struct {
	CourseID     uint    `json:"course_id"`
	Title        string  `json:"title"`
	Thumbnail    string  `json:"thumbnail"`
	BatchName    string  `json:"batch_name"`
	ProgressPct  float64 `json:"progress_pct"`
	NextLessonID uint    `json:"next_lesson_id"`
}

// Earning is one student-earnings ledger entry (referral and affiliate
// payouts shown on the student panel).
type Earning struct {
	ID        uint      `json:"id"`
	StudentID uint      `json:"student_id"`
	Amount    float64   `json:"amount"`
	Source    string    `json:"source"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
