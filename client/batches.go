package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/edusphere/admin-client/model"
)

// BatchList is the payload of the batch list endpoint.
type BatchList struct {
	Batches    []model.Batch `json:"batches"`
	Pagination Pagination    `json:"pagination"`
}

// BatchPayload is the wire format for creating or updating a batch. Exactly
// one of DiscountPercent / DiscountAmount is meaningful per DiscountType.
type BatchPayload struct {
	CourseID        uint    `json:"course_id"`
	BranchID        uint    `json:"branch_id"`
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	DiscountType    string  `json:"discount_type"`
	DiscountPercent float64 `json:"discount_percent"`
	DiscountAmount  float64 `json:"discount_amount"`
	StartDate       string  `json:"start_date"`
	EndDate         string  `json:"end_date"`
	IsOnline        bool    `json:"is_online"`
	SeatLimit       int     `json:"seat_limit"`
	TeacherIDs      []uint  `json:"teacher_ids"`
}

// ListBatches fetches one page of batches, optionally scoped to a course.
func (c *Client) ListBatches(ctx context.Context, page int, courseID uint) (*BatchList, error) {
	query := url.Values{}
	if page > 0 {
		query.Set("page", strconv.Itoa(page))
	}
	if courseID > 0 {
		query.Set("course_id", strconv.FormatUint(uint64(courseID), 10))
	}

	var list BatchList
	if err := c.get(ctx, "/batches", query, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// CreateBatch creates a batch under a course.
func (c *Client) CreateBatch(ctx context.Context, payload BatchPayload) (*model.Batch, error) {
	var batch model.Batch
	if err := c.post(ctx, "/batches", payload, &batch); err != nil {
		return nil, err
	}
	return &batch, nil
}

// UpdateBatch updates a batch.
func (c *Client) UpdateBatch(ctx context.Context, id uint, payload BatchPayload) (*model.Batch, error) {
	var batch model.Batch
	if err := c.put(ctx, fmt.Sprintf("/batches/%d", id), payload, &batch); err != nil {
		return nil, err
	}
	return &batch, nil
}

// DeleteBatch removes a batch.
func (c *Client) DeleteBatch(ctx context.Context, id uint) error {
	return c.delete(ctx, fmt.Sprintf("/batches/%d", id))
}

// ReplaceBatchTeachers replaces the batch's instructor set with exactly the
// given teacher ids. The server rejects teachers outside the batch's branch.
func (c *Client) ReplaceBatchTeachers(ctx context.Context, batchID uint, teacherIDs []uint) error {
	body := map[string]interface{}{"teacher_ids": teacherIDs}
	return c.post(ctx, fmt.Sprintf("/batches/%d/teachers", batchID), body, nil)
}
