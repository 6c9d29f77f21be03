package client

import (
	"context"
	"fmt"

	"github.com/edusphere/admin-client/model"
)

// ListRoles fetches all roles with their permissions.
func (c *Client) ListRoles(ctx context.Context) ([]model.Role, error) {
	var roles []model.Role
	if err := c.get(ctx, "/access-control/roles", nil, &roles); err != nil {
		return nil, err
	}
	return roles, nil
}

// CreateRole creates a role.
func (c *Client) CreateRole(ctx context.Context, name string) (*model.Role, error) {
	body := map[string]interface{}{"name": name}

	var role model.Role
	if err := c.post(ctx, "/access-control/roles", body, &role); err != nil {
		return nil, err
	}
	return &role, nil
}

// ListPermissions fetches all grantable permissions.
func (c *Client) ListPermissions(ctx context.Context) ([]model.Permission, error) {
	var permissions []model.Permission
	if err := c.get(ctx, "/access-control/permissions", nil, &permissions); err != nil {
		return nil, err
	}
	return permissions, nil
}

// ReplaceRolePermissions replaces a role's permission set with exactly the
// given ids.
func (c *Client) ReplaceRolePermissions(ctx context.Context, roleID uint, permissionIDs []uint) error {
	body := map[string]interface{}{"permission_ids": permissionIDs}
	return c.post(ctx, fmt.Sprintf("/access-control/roles/%d/permissions", roleID), body, nil)
}

// ReplaceUserRoles replaces an admin user's role set with exactly the given
// ids.
func (c *Client) ReplaceUserRoles(ctx context.Context, userID uint, roleIDs []uint) error {
	body := map[string]interface{}{"role_ids": roleIDs}
	return c.post(ctx, fmt.Sprintf("/access-control/users/%d/roles", userID), body, nil)
}

// ListAdminUsers fetches the panel users for role assignment.
func (c *Client) ListAdminUsers(ctx context.Context) ([]model.AdminUser, error) {
	var users []model.AdminUser
	if err := c.get(ctx, "/access-control/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}
