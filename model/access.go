package model

// Role is a named permission set from the access-control module.
type Role struct {
	ID          uint         `json:"id"`
	Name        string       `json:"name"`
	Permissions []Permission `json:"permissions,omitempty"`
}

// Permission is a single grantable action, e.g. "courses.update".
type Permission struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Group string `json:"group"`
}

// AdminUser is a panel user as reported by the access-control endpoints.
type AdminUser struct {
	ID    uint     `json:"id"`
	Name  string   `json:"name"`
	Email string   `json:"email"`
	Roles []string `json:"roles"`
}
