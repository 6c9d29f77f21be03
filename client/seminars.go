package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/edusphere/admin-client/model"
)

// SeminarList is the payload of the seminar list endpoint.
type SeminarList struct {
	Seminars   []model.Seminar `json:"seminars"`
	Pagination Pagination      `json:"pagination"`
}

// SeminarPayload is the wire format for creating or updating a free seminar.
type SeminarPayload struct {
	CourseID uint   `json:"course_id"`
	BranchID uint   `json:"branch_id"`
	Topic    string `json:"topic"`
	HeldAt   string `json:"held_at"`
	IsOnline bool   `json:"is_online"`
	SeatCap  int    `json:"seat_cap"`
}

// ListSeminars fetches one page of seminars.
func (c *Client) ListSeminars(ctx context.Context, page int) (*SeminarList, error) {
	query := url.Values{}
	if page > 0 {
		query.Set("page", strconv.Itoa(page))
	}

	var list SeminarList
	if err := c.get(ctx, "/seminars", query, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// CreateSeminar creates a free seminar.
func (c *Client) CreateSeminar(ctx context.Context, payload SeminarPayload) (*model.Seminar, error) {
	var seminar model.Seminar
	if err := c.post(ctx, "/seminars", payload, &seminar); err != nil {
		return nil, err
	}
	return &seminar, nil
}

// UpdateSeminar updates a seminar.
func (c *Client) UpdateSeminar(ctx context.Context, id uint, payload SeminarPayload) (*model.Seminar, error) {
	var seminar model.Seminar
	if err := c.put(ctx, fmt.Sprintf("/seminars/%d", id), payload, &seminar); err != nil {
		return nil, err
	}
	return &seminar, nil
}

// DeleteSeminar removes a seminar.
func (c *Client) DeleteSeminar(ctx context.Context, id uint) error {
	return c.delete(ctx, fmt.Sprintf("/seminars/%d", id))
}

// ListSeminarRegistrations fetches the signups for a seminar.
func (c *Client) ListSeminarRegistrations(ctx context.Context, seminarID uint) ([]model.SeminarRegistration, error) {
	var registrations []model.SeminarRegistration
	if err := c.get(ctx, fmt.Sprintf("/seminars/%d/registrations", seminarID), nil, &registrations); err != nil {
		return nil, err
	}
	return registrations, nil
}
