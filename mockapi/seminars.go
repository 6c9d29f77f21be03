package mockapi

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/edusphere/admin-client/model"
)

func (s *Server) listSeminars(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	perPage, _ := strconv.Atoi(c.Query("per_page", "10"))

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	var all []model.Seminar
	for _, id := range s.store.seminarOrder {
		all = append(all, *s.store.seminars[id])
	}

	start, end, meta := paginate(len(all), page, perPage)
	return ok(c, "", fiber.Map{
		"seminars":   all[start:end],
		"pagination": meta,
	})
}

type seminarReq struct {
	CourseID uint   `json:"course_id"`
	BranchID uint   `json:"branch_id"`
	Topic    string `json:"topic"`
	HeldAt   string `json:"held_at"`
	IsOnline bool   `json:"is_online"`
	SeatCap  int    `json:"seat_cap"`
}

func (s *Server) createSeminar(c *fiber.Ctx) error {
	var req seminarReq
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if req.Topic == "" {
		return validationFail(c, "The given data was invalid.", map[string][]string{
			"topic": {"The topic field is required."},
		})
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	seminar := &model.Seminar{
		ID:       s.store.id(),
		CourseID: req.CourseID,
		BranchID: req.BranchID,
		Topic:    req.Topic,
		IsOnline: req.IsOnline,
		SeatCap:  req.SeatCap,
	}
	if at, err := time.Parse("2006-01-02T15:04", req.HeldAt); err == nil {
		seminar.HeldAt = at
	}

	s.store.seminars[seminar.ID] = seminar
	s.store.seminarOrder = append(s.store.seminarOrder, seminar.ID)
	return created(c, "Seminar created successfully", seminar)
}

func (s *Server) updateSeminar(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	var req seminarReq
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	seminar, found := s.store.seminars[uint(id)]
	if !found {
		return fail(c, fiber.StatusNotFound, "Seminar not found")
	}
	if req.Topic != "" {
		seminar.Topic = req.Topic
	}
	if at, err := time.Parse("2006-01-02T15:04", req.HeldAt); err == nil {
		seminar.HeldAt = at
	}
	seminar.IsOnline = req.IsOnline
	if req.SeatCap != 0 {
		seminar.SeatCap = req.SeatCap
	}
	return ok(c, "Seminar updated successfully", seminar)
}

func (s *Server) deleteSeminar(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	if _, found := s.store.seminars[uint(id)]; !found {
		return fail(c, fiber.StatusNotFound, "Seminar not found")
	}
	delete(s.store.seminars, uint(id))
	delete(s.store.registrations, uint(id))
	s.store.seminarOrder = removeID(s.store.seminarOrder, uint(id))
	return ok(c, "Seminar deleted successfully", nil)
}

func (s *Server) listRegistrations(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	if _, found := s.store.seminars[uint(id)]; !found {
		return fail(c, fiber.StatusNotFound, "Seminar not found")
	}
	registrations := s.store.registrations[uint(id)]
	if registrations == nil {
		registrations = []model.SeminarRegistration{}
	}
	return ok(c, "", registrations)
}
