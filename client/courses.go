package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/edusphere/admin-client/model"
)

// CourseList is the payload of the course list endpoint.
type CourseList struct {
	Courses    []model.Course `json:"courses"`
	Pagination Pagination     `json:"pagination"`
}

// ListCourses fetches one page of courses. Filters are copied, the caller's
// values are never mutated.
func (c *Client) ListCourses(ctx context.Context, page int, filters url.Values) (*CourseList, error) {
	query := url.Values{}
	for key, values := range filters {
		query[key] = append([]string(nil), values...)
	}
	if page > 0 {
		query.Set("page", strconv.Itoa(page))
	}

	var list CourseList
	if err := c.get(ctx, "/courses", query, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// GetCourse fetches a single course with its child collections.
func (c *Client) GetCourse(ctx context.Context, id uint) (*model.Course, error) {
	var course model.Course
	if err := c.get(ctx, fmt.Sprintf("/courses/%d", id), nil, &course); err != nil {
		return nil, err
	}
	return &course, nil
}

// CreateCourse submits wizard step 1. The submission is multipart because it
// may carry a thumbnail. The returned course carries the id every later step
// is keyed by.
func (c *Client) CreateCourse(ctx context.Context, fields map[string]string, thumbnail *FileUpload) (*model.Course, error) {
	var files []FileUpload
	if thumbnail != nil {
		files = append(files, *thumbnail)
	}

	var course model.Course
	if err := c.doMultipart(ctx, http.MethodPost, "/courses", fields, files, &course); err != nil {
		return nil, err
	}
	return &course, nil
}

// UpdateCourse updates the course's own fields (not its child collections).
func (c *Client) UpdateCourse(ctx context.Context, id uint, fields map[string]string, thumbnail *FileUpload) (*model.Course, error) {
	var files []FileUpload
	if thumbnail != nil {
		files = append(files, *thumbnail)
	}

	var course model.Course
	if err := c.doMultipart(ctx, http.MethodPut, fmt.Sprintf("/courses/%d", id), fields, files, &course); err != nil {
		return nil, err
	}
	return &course, nil
}

// DeleteCourse removes a course.
func (c *Client) DeleteCourse(ctx context.Context, id uint) error {
	return c.delete(ctx, fmt.Sprintf("/courses/%d", id))
}

// ListCategories fetches all course categories.
func (c *Client) ListCategories(ctx context.Context) ([]model.Category, error) {
	var raw json.RawMessage
	if err := c.get(ctx, "/categories", nil, &raw); err != nil {
		return nil, err
	}

	var categories []model.Category
	if err := decodeCollection(raw, "categories", &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// ReplaceCourseFAQs replaces the course's FAQ set wholesale.
func (c *Client) ReplaceCourseFAQs(ctx context.Context, courseID uint, faqs []model.FAQ) error {
	body := map[string]interface{}{"faqs": faqs}
	return c.post(ctx, fmt.Sprintf("/courses/%d/faqs", courseID), body, nil)
}

// ListCourseFeatures fetches the selectable features of one kind (facility,
// learning or tool). Some deployments answer with a bare array, others wrap
// it, both are handled.
func (c *Client) ListCourseFeatures(ctx context.Context, kind string) ([]model.CourseFeature, error) {
	query := url.Values{}
	query.Set("kind", kind)

	var raw json.RawMessage
	if err := c.get(ctx, "/course-features", query, &raw); err != nil {
		return nil, err
	}

	var features []model.CourseFeature
	if err := decodeCollection(raw, "features", &features); err != nil {
		return nil, err
	}
	return features, nil
}

// ReplaceCourseFeatures replaces the course's assigned feature ids of one
// kind with exactly the given set.
func (c *Client) ReplaceCourseFeatures(ctx context.Context, courseID uint, kind string, featureIDs []uint) error {
	body := map[string]interface{}{
		"kind":        kind,
		"feature_ids": featureIDs,
	}
	return c.post(ctx, fmt.Sprintf("/courses/%d/features", courseID), body, nil)
}

// ListJoinRequirements fetches the selectable eligibility tags.
func (c *Client) ListJoinRequirements(ctx context.Context) ([]model.JoinRequirement, error) {
	var raw json.RawMessage
	if err := c.get(ctx, "/join-requirements", nil, &raw); err != nil {
		return nil, err
	}

	var joins []model.JoinRequirement
	if err := decodeCollection(raw, "joins", &joins); err != nil {
		return nil, err
	}
	return joins, nil
}

// ReplaceCourseJoins replaces the course's eligibility tag set wholesale.
func (c *Client) ReplaceCourseJoins(ctx context.Context, courseID uint, joinIDs []uint) error {
	body := map[string]interface{}{"join_ids": joinIDs}
	return c.post(ctx, fmt.Sprintf("/courses/%d/joins", courseID), body, nil)
}
