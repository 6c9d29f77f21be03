// Package mockapi is a small in-memory stand-in for the admin API, used by
// package tests and for local development of console front ends. It speaks
// the exact response envelope of the real backend.
package mockapi

import (
	"github.com/gofiber/fiber/v2"
)

type envelope struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Code    int                 `json:"code"`
	Data    interface{}         `json:"data,omitempty"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

type pagination struct {
	CurrentPage int `json:"current_page"`
	LastPage    int `json:"last_page"`
	PerPage     int `json:"per_page"`
	Total       int `json:"total"`
}

// ok returns a successful envelope.
func ok(c *fiber.Ctx, message string, data interface{}) error {
	return c.Status(fiber.StatusOK).JSON(envelope{
		Success: true,
		Message: message,
		Code:    fiber.StatusOK,
		Data:    data,
	})
}

// created returns a 201 envelope.
func created(c *fiber.Ctx, message string, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(envelope{
		Success: true,
		Message: message,
		Code:    fiber.StatusCreated,
		Data:    data,
	})
}

// fail returns a failure envelope with the given status.
func fail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(envelope{
		Success: false,
		Message: message,
		Code:    status,
	})
}

// validationFail returns a 422 with a field-path error map. Paths may be
// dotted/indexed for nested arrays.
func validationFail(c *fiber.Ctx, message string, errs map[string][]string) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(envelope{
		Success: false,
		Message: message,
		Code:    fiber.StatusUnprocessableEntity,
		Errors:  errs,
	})
}

// paginate slices page items out of a full collection and builds the meta.
func paginate(total, page, perPage int) (start, end int, meta pagination) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 10
	}

	lastPage := total / perPage
	if total%perPage > 0 || lastPage == 0 {
		lastPage++
	}

	start = (page - 1) * perPage
	if start > total {
		start = total
	}
	end = start + perPage
	if end > total {
		end = total
	}

	meta = pagination{
		CurrentPage: page,
		LastPage:    lastPage,
		PerPage:     perPage,
		Total:       total,
	}
	return start, end, meta
}
