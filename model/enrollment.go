package model

import "time"

// Student is a learner account managed from the admin panel.
type Student struct {
	ID        uint      `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Photo     string    `json:"photo"`
	IsActive  bool      `json:"is_active"`
}

// Enrollment links a student to a batch. FinalAmount is computed server-side,
// anything the client derives from price/discount fields is a preview only.
type Enrollment struct {
	ID                 uint      `json:"id"`
	CreatedAt          time.Time `json:"created_at"`
	StudentID          uint      `json:"student_id"`
	BatchID            uint      `json:"batch_id"`
	AdditionalDiscount float64   `json:"additional_discount"`
	FinalAmount        float64   `json:"final_amount"`
	DueAmount          float64   `json:"due_amount"`

	// Relationships
	Student  *Student        `json:"student,omitempty"`
	Batch    *Batch          `json:"batch,omitempty"`
	Payments []PaymentRecord `json:"payments,omitempty"`
}

// PaymentRecord is one entry in an enrollment's payment ledger.
type PaymentRecord struct {
	ID           uint          `json:"id"`
	EnrollmentID uint          `json:"enrollment_id"`
	Amount       float64       `json:"amount"`
	Method       PaymentMethod `json:"method"`
	Status       PaymentStatus `json:"status"`
	Type         PaymentType   `json:"type"`
	DueAmount    float64       `json:"due_amount"`
	PaidAt       *time.Time    `json:"paid_at,omitempty"`
	Note         string        `json:"note"`
}

// CouponCheck is the server's answer to a coupon validation request. When
// Valid is false the client keeps its previously computed total and surfaces
// Message.
type CouponCheck struct {
	Valid    bool    `json:"valid"`
	Message  string  `json:"message"`
	Code     string  `json:"code"`
	Discount float64 `json:"discount"`
}
