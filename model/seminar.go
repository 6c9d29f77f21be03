package model

import "time"

// Seminar is a free introductory session advertised on the public site.
type Seminar struct {
	ID       uint      `json:"id"`
	CourseID uint      `json:"course_id"`
	BranchID uint      `json:"branch_id"`
	Topic    string    `json:"topic"`
	HeldAt   time.Time `json:"held_at"`
	IsOnline bool      `json:"is_online"`
	SeatCap  int       `json:"seat_cap"`

	// Relationships
	Course *Course `json:"course,omitempty"`
	Branch *Branch `json:"branch,omitempty"`
}

// SeminarRegistration is a public signup for a seminar.
type SeminarRegistration struct {
	ID        uint      `json:"id"`
	SeminarID uint      `json:"seminar_id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}
