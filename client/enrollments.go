package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/edusphere/admin-client/model"
)

// EnrollmentList is the payload of the enrollment list endpoint.
type EnrollmentList struct {
	Enrollments []model.Enrollment `json:"enrollments"`
	Pagination  Pagination         `json:"pagination"`
}

// EnrollmentPayload is the wire format for enrolling a student. Discount and
// coupon figures are inputs only, the server computes the final amount.
type EnrollmentPayload struct {
	StudentID          uint    `json:"student_id"`
	BatchID            uint    `json:"batch_id"`
	AdditionalDiscount float64 `json:"additional_discount"`
	CouponCode         string  `json:"coupon_code,omitempty"`
}

// PaymentPayload records one payment against an enrollment.
type PaymentPayload struct {
	Amount float64             `json:"amount"`
	Method model.PaymentMethod `json:"method"`
	Type   model.PaymentType   `json:"type"`
	Note   string              `json:"note,omitempty"`
}

// ListEnrollments fetches one page of enrollments, optionally scoped to a
// batch.
func (c *Client) ListEnrollments(ctx context.Context, page int, batchID uint) (*EnrollmentList, error) {
	query := url.Values{}
	if page > 0 {
		query.Set("page", strconv.Itoa(page))
	}
	if batchID > 0 {
		query.Set("batch_id", strconv.FormatUint(uint64(batchID), 10))
	}

	var list EnrollmentList
	if err := c.get(ctx, "/enrollments", query, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// CreateEnrollment enrolls a student into a batch. The returned enrollment
// carries the authoritative final amount.
func (c *Client) CreateEnrollment(ctx context.Context, payload EnrollmentPayload) (*model.Enrollment, error) {
	var enrollment model.Enrollment
	if err := c.post(ctx, "/enrollments", payload, &enrollment); err != nil {
		return nil, err
	}
	return &enrollment, nil
}

// AddPayment appends a payment record to an enrollment's ledger.
func (c *Client) AddPayment(ctx context.Context, enrollmentID uint, payload PaymentPayload) (*model.PaymentRecord, error) {
	var record model.PaymentRecord
	if err := c.post(ctx, fmt.Sprintf("/enrollments/%d/payments", enrollmentID), payload, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// ListPayments fetches an enrollment's payment history.
func (c *Client) ListPayments(ctx context.Context, enrollmentID uint) ([]model.PaymentRecord, error) {
	var records []model.PaymentRecord
	if err := c.get(ctx, fmt.Sprintf("/enrollments/%d/payments", enrollmentID), nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// CheckCoupon asks the server whether a coupon applies to a batch. A
// valid:false answer is a successful call, callers keep their previous
// total and surface the message.
func (c *Client) CheckCoupon(ctx context.Context, code string, batchID uint) (*model.CouponCheck, error) {
	body := map[string]interface{}{
		"code":     code,
		"batch_id": batchID,
	}

	var check model.CouponCheck
	if err := c.post(ctx, "/coupons/check", body, &check); err != nil {
		return nil, err
	}
	return &check, nil
}
