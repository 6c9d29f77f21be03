package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/edusphere/admin-client/model"
)

// StudentList is the payload of the student list endpoint.
type StudentList struct {
	Students   []model.Student `json:"students"`
	Pagination Pagination      `json:"pagination"`
}

// StudentPayload is the wire format for creating or updating a student.
type StudentPayload struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password,omitempty"`
	IsActive bool   `json:"is_active"`
}

// ListStudents fetches one page of students with an optional search term.
func (c *Client) ListStudents(ctx context.Context, page int, search string) (*StudentList, error) {
	query := url.Values{}
	if page > 0 {
		query.Set("page", strconv.Itoa(page))
	}
	if search != "" {
		query.Set("search", search)
	}

	var list StudentList
	if err := c.get(ctx, "/students", query, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// GetStudent fetches a single student.
func (c *Client) GetStudent(ctx context.Context, id uint) (*model.Student, error) {
	var student model.Student
	if err := c.get(ctx, fmt.Sprintf("/students/%d", id), nil, &student); err != nil {
		return nil, err
	}
	return &student, nil
}

// CreateStudent registers a student from the admin panel.
func (c *Client) CreateStudent(ctx context.Context, payload StudentPayload) (*model.Student, error) {
	var student model.Student
	if err := c.post(ctx, "/students", payload, &student); err != nil {
		return nil, err
	}
	return &student, nil
}

// UpdateStudent updates a student.
func (c *Client) UpdateStudent(ctx context.Context, id uint, payload StudentPayload) (*model.Student, error) {
	var student model.Student
	if err := c.put(ctx, fmt.Sprintf("/students/%d", id), payload, &student); err != nil {
		return nil, err
	}
	return &student, nil
}

// DeleteStudent removes a student account.
func (c *Client) DeleteStudent(ctx context.Context, id uint) error {
	return c.delete(ctx, fmt.Sprintf("/students/%d", id))
}
