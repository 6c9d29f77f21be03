package model

import "time"

// Branch is a physical campus. Teacher membership in a branch is the filter
// key for every instructor-assignment control.
type Branch struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

// Teacher is an instructor attached to one branch.
type Teacher struct {
	ID          uint   `json:"id"`
	BranchID    uint   `json:"branch_id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Designation string `json:"designation"`
	Photo       string `json:"photo"`
}

// Batch is a scheduled run of a course at a branch. Exactly one of
// DiscountPercent / DiscountAmount is meaningful, selected by DiscountType.
type Batch struct {
	ID              uint         `json:"id"`
	CourseID        uint         `json:"course_id"`
	BranchID        uint         `json:"branch_id"`
	Name            string       `json:"name"`
	Price           float64      `json:"price"`
	DiscountType    DiscountType `json:"discount_type"`
	DiscountPercent float64      `json:"discount_percent"`
	DiscountAmount  float64      `json:"discount_amount"`
	AfterDiscount   float64      `json:"after_discount"` // server computed
	StartDate       time.Time    `json:"start_date"`
	EndDate         time.Time    `json:"end_date"`
	IsOnline        bool         `json:"is_online"`
	SeatLimit       int          `json:"seat_limit"`

	// Relationships
	Course   *Course   `json:"course,omitempty"`
	Branch   *Branch   `json:"branch,omitempty"`
	Teachers []Teacher `json:"teachers,omitempty"`
}
