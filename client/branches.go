package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/edusphere/admin-client/model"
)

// ListBranches fetches all branches.
func (c *Client) ListBranches(ctx context.Context) ([]model.Branch, error) {
	var raw json.RawMessage
	if err := c.get(ctx, "/branches", nil, &raw); err != nil {
		return nil, err
	}

	var branches []model.Branch
	if err := decodeCollection(raw, "branches", &branches); err != nil {
		return nil, err
	}
	return branches, nil
}

// ListBranchTeachers fetches the teachers of one branch. This is the child
// fetch behind every branch-scoped instructor select.
func (c *Client) ListBranchTeachers(ctx context.Context, branchID uint) ([]model.Teacher, error) {
	var raw json.RawMessage
	if err := c.get(ctx, fmt.Sprintf("/branches/%d/teachers", branchID), nil, &raw); err != nil {
		return nil, err
	}

	var teachers []model.Teacher
	if err := decodeCollection(raw, "teachers", &teachers); err != nil {
		return nil, err
	}
	return teachers, nil
}
