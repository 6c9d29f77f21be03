package forms

import (
	"github.com/edusphere/admin-client/client"
	"github.com/edusphere/admin-client/model"
	"github.com/edusphere/admin-client/utils/validation"
)

// EnrollmentForm enrolls a student into a batch. Every figure it computes is
// a preview; the server's final_amount on the created enrollment is the only
// authoritative number.
type EnrollmentForm struct {
	StudentID          string `json:"student_id" validate:"required,numeric"`
	BatchID            string `json:"batch_id" validate:"required,numeric"`
	AdditionalDiscount string `json:"additional_discount" validate:"omitempty,numeric"`
	CouponCode         string `json:"coupon_code" validate:"omitempty,max=50"`

	// coupon outcome of the last server check, nil until one succeeded
	coupon *model.CouponCheck

	Errors map[string]string `json:"-" validate:"-"`
}

// NewEnrollmentForm returns the form with its default values.
func NewEnrollmentForm() *EnrollmentForm {
	return &EnrollmentForm{
		Errors: map[string]string{},
	}
}

// Validate checks the form locally and fills Errors.
func (f *EnrollmentForm) Validate() bool {
	f.Errors = map[string]string{}
	if err := validate.ValidateStruct(f); err != nil {
		f.Errors = validation.FormatValidationErrors(err)
	}
	return len(f.Errors) == 0
}

// ApplyCoupon records the server's answer to a coupon check. A valid:false
// answer changes nothing: the previous total stands and the server's message
// is returned for display. A valid answer replaces any earlier coupon.
func (f *EnrollmentForm) ApplyCoupon(check *model.CouponCheck) string {
	if check == nil {
		return ""
	}
	if !check.Valid {
		return check.Message
	}
	f.coupon = check
	return ""
}

// PreviewTotal computes the display-only estimate: batch price after the
// batch's own discount, minus any accepted coupon, minus the additional
// discount entered on the form. Clamped at zero.
func (f *EnrollmentForm) PreviewTotal(batch *model.Batch) float64 {
	total := batch.Price
	switch batch.DiscountType {
	case model.DiscountPercentage:
		total -= batch.Price * batch.DiscountPercent / 100
	case model.DiscountFixed:
		total -= batch.DiscountAmount
	}
	if f.coupon != nil && f.coupon.Valid {
		total -= f.coupon.Discount
	}
	total -= parseFloat(f.AdditionalDiscount)
	if total < 0 {
		total = 0
	}
	return total
}

// Payload builds the wire payload. The accepted coupon code travels with the
// inputs so the server can recompute everything itself.
func (f *EnrollmentForm) Payload() client.EnrollmentPayload {
	payload := client.EnrollmentPayload{
		StudentID:          parseUint(f.StudentID),
		BatchID:            parseUint(f.BatchID),
		AdditionalDiscount: parseFloat(f.AdditionalDiscount),
	}
	if f.coupon != nil && f.coupon.Valid {
		payload.CouponCode = f.coupon.Code
	}
	return payload
}

// BindAPIError attaches server field errors to the form and returns the
// toast message.
func (f *EnrollmentForm) BindAPIError(err error) string {
	if f.Errors == nil {
		f.Errors = map[string]string{}
	}
	return BindAPIError(err, f.Errors)
}
