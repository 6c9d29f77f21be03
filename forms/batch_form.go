package forms

import (
	"github.com/edusphere/admin-client/client"
	"github.com/edusphere/admin-client/model"
	"github.com/edusphere/admin-client/utils/validation"
)

// BatchForm edits one batch. The two discount fields are mutually exclusive,
// selected by DiscountType. TeacherIDs holds the instructor selection made
// against the currently selected branch; changing the branch re-scopes the
// teacher options but deliberately keeps the selection until the user edits
// it, the server rejects out-of-branch teachers.
type BatchForm struct {
	CourseID        string `json:"course_id" validate:"required,numeric"`
	BranchID        string `json:"branch_id" validate:"required,numeric"`
	Name            string `json:"name" validate:"required,min=2,max=255"`
	Price           string `json:"price" validate:"required,numeric"`
	DiscountType    string `json:"discount_type" validate:"required,oneof=percentage fixed"`
	DiscountPercent string `json:"discount_percent" validate:"omitempty,numeric"`
	DiscountAmount  string `json:"discount_amount" validate:"omitempty,numeric"`
	StartDate       string `json:"start_date" validate:"required"`
	EndDate         string `json:"end_date" validate:"required"`
	IsOnline        bool   `json:"is_online"`
	SeatLimit       string `json:"seat_limit" validate:"omitempty,numeric"`
	TeacherIDs      []uint `json:"teacher_ids"`

	Errors map[string]string `json:"-" validate:"-"`
}

// NewBatchForm returns the form with its default values.
func NewBatchForm() *BatchForm {
	return &BatchForm{
		DiscountType: string(model.DiscountPercentage),
		Errors:       map[string]string{},
	}
}

// Validate checks the form locally, including the discount exclusivity rule.
func (f *BatchForm) Validate() bool {
	f.Errors = map[string]string{}
	if err := validate.ValidateStruct(f); err != nil {
		f.Errors = validation.FormatValidationErrors(err)
	}

	switch model.DiscountType(f.DiscountType) {
	case model.DiscountPercentage:
		if optional(f.DiscountAmount) != "" {
			f.Errors["discount_amount"] = "discount_amount is not allowed for percentage discounts"
		}
		if pct := parseFloat(f.DiscountPercent); pct < 0 || pct > 100 {
			f.Errors["discount_percent"] = "discount_percent must be between 0 and 100"
		}
	case model.DiscountFixed:
		if optional(f.DiscountPercent) != "" {
			f.Errors["discount_percent"] = "discount_percent is not allowed for fixed discounts"
		}
		if parseFloat(f.DiscountAmount) > parseFloat(f.Price) {
			f.Errors["discount_amount"] = "discount_amount cannot exceed the price"
		}
	}

	return len(f.Errors) == 0
}

// Payload builds the wire payload. Only the discount field matching the
// selected type is carried.
func (f *BatchForm) Payload() client.BatchPayload {
	payload := client.BatchPayload{
		CourseID:     parseUint(f.CourseID),
		BranchID:     parseUint(f.BranchID),
		Name:         validation.SanitizeString(f.Name),
		Price:        parseFloat(f.Price),
		DiscountType: f.DiscountType,
		StartDate:    optional(f.StartDate),
		EndDate:      optional(f.EndDate),
		IsOnline:     f.IsOnline,
		SeatLimit:    int(parseUint(f.SeatLimit)),
		TeacherIDs:   append([]uint(nil), f.TeacherIDs...),
	}
	switch model.DiscountType(f.DiscountType) {
	case model.DiscountPercentage:
		payload.DiscountPercent = parseFloat(f.DiscountPercent)
	case model.DiscountFixed:
		payload.DiscountAmount = parseFloat(f.DiscountAmount)
	}
	return payload
}

// BindAPIError attaches server field errors to the form and returns the
// toast message.
func (f *BatchForm) BindAPIError(err error) string {
	if f.Errors == nil {
		f.Errors = map[string]string{}
	}
	return BindAPIError(err, f.Errors)
}
