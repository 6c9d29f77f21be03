package client

import (
	"context"
	"net/url"
	"strconv"

	"github.com/edusphere/admin-client/model"
)

// EarningList is the payload of the student-earnings list endpoint.
type EarningList struct {
	Earnings   []model.Earning `json:"earnings"`
	Pagination Pagination      `json:"pagination"`
}

// GetDashboard fetches the student dashboard summary.
func (c *Client) GetDashboard(ctx context.Context) (*model.DashboardSummary, error) {
	var summary model.DashboardSummary
	if err := c.get(ctx, "/student-panel/dashboard", nil, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// ListEnrolledCourses fetches the student's "my courses" list.
func (c *Client) ListEnrolledCourses(ctx context.Context) ([]model.EnrolledCourse, error) {
	var courses []model.EnrolledCourse
	if err := c.get(ctx, "/student-panel/courses", nil, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

// ListEarnings fetches one page of the student's earnings ledger.
func (c *Client) ListEarnings(ctx context.Context, page int) (*EarningList, error) {
	query := url.Values{}
	if page > 0 {
		query.Set("page", strconv.Itoa(page))
	}

	var list EarningList
	if err := c.get(ctx, "/student-earnings", query, &list); err != nil {
		return nil, err
	}
	return &list, nil
}
