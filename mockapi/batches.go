package mockapi

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/edusphere/admin-client/model"
)

func (s *Server) listBranches(c *fiber.Ctx) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	return ok(c, "", s.store.branches)
}

func (s *Server) listBranchTeachers(c *fiber.Ctx) error {
	branchID, _ := strconv.Atoi(c.Params("id"))

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	teachers := s.store.teachersOf(uint(branchID))
	if teachers == nil {
		teachers = []model.Teacher{}
	}
	// wrapped, like the real backend
	return ok(c, "", fiber.Map{"teachers": teachers})
}

type batchReq struct {
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

func afterDiscount(price float64, discountType string, percent, amount float64) float64 {
	switch model.DiscountType(discountType) {
	case model.DiscountPercentage:
		return price - price*percent/100
	case model.DiscountFixed:
		return price - amount
	}
	return price
}

func (s *Server) listBatches(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	perPage, _ := strconv.Atoi(c.Query("per_page", "10"))
	courseID, _ := strconv.Atoi(c.Query("course_id", "0"))

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	var all []model.Batch
	for _, id := range s.store.batchOrder {
		batch := s.store.batches[id]
		if courseID > 0 && batch.CourseID != uint(courseID) {
			continue
		}
		all = append(all, *batch)
	}

	start, end, meta := paginate(len(all), page, perPage)
	return ok(c, "", fiber.Map{
		"batches":    all[start:end],
		"pagination": meta,
	})
}

func (s *Server) createBatch(c *fiber.Ctx) error {
	var req batchReq
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if req.Name == "" {
		return validationFail(c, "The given data was invalid.", map[string][]string{
			"name": {"The name field is required."},
		})
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	if _, found := s.store.courses[req.CourseID]; !found {
		return fail(c, fiber.StatusNotFound, "Course not found")
	}
	for _, id := range req.TeacherIDs {
		if !s.store.teacherInBranch(id, req.BranchID) {
			return validationFail(c, "The given data was invalid.", map[string][]string{
				"teacher_ids": {"A selected teacher does not belong to this branch."},
			})
		}
	}

	batch := &model.Batch{
		ID:              s.store.id(),
		CourseID:        req.CourseID,
		BranchID:        req.BranchID,
		Name:            req.Name,
		Price:           req.Price,
		DiscountType:    model.DiscountType(req.DiscountType),
		DiscountPercent: req.DiscountPercent,
		DiscountAmount:  req.DiscountAmount,
		AfterDiscount:   afterDiscount(req.Price, req.DiscountType, req.DiscountPercent, req.DiscountAmount),
		IsOnline:        req.IsOnline,
		SeatLimit:       req.SeatLimit,
	}
	if at, err := time.Parse("2006-01-02", req.StartDate); err == nil {
		batch.StartDate = at
	}
	if at, err := time.Parse("2006-01-02", req.EndDate); err == nil {
		batch.EndDate = at
	}
	for _, id := range req.TeacherIDs {
		for _, t := range s.store.teachers {
			if t.ID == id {
				batch.Teachers = append(batch.Teachers, t)
			}
		}
	}

	s.store.batches[batch.ID] = batch
	s.store.batchOrder = append(s.store.batchOrder, batch.ID)
	return created(c, "Batch created successfully", batch)
}

func (s *Server) updateBatch(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	var req batchReq
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	batch, found := s.store.batches[uint(id)]
	if !found {
		return fail(c, fiber.StatusNotFound, "Batch not found")
	}

	if req.Name != "" {
		batch.Name = req.Name
	}
	if req.BranchID != 0 {
		batch.BranchID = req.BranchID
	}
	if req.Price != 0 {
		batch.Price = req.Price
	}
	if req.DiscountType != "" {
		batch.DiscountType = model.DiscountType(req.DiscountType)
		batch.DiscountPercent = req.DiscountPercent
		batch.DiscountAmount = req.DiscountAmount
	}
	batch.AfterDiscount = afterDiscount(batch.Price, string(batch.DiscountType), batch.DiscountPercent, batch.DiscountAmount)

	return ok(c, "Batch updated successfully", batch)
}

func (s *Server) deleteBatch(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	if _, found := s.store.batches[uint(id)]; !found {
		return fail(c, fiber.StatusNotFound, "Batch not found")
	}
	delete(s.store.batches, uint(id))
	s.store.batchOrder = removeID(s.store.batchOrder, uint(id))
	return ok(c, "Batch deleted successfully", nil)
}

func (s *Server) replaceBatchTeachers(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	var req struct {
		TeacherIDs []uint `json:"teacher_ids"`
	}
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	batch, found := s.store.batches[uint(id)]
	if !found {
		return fail(c, fiber.StatusNotFound, "Batch not found")
	}
	for _, teacherID := range req.TeacherIDs {
		if !s.store.teacherInBranch(teacherID, batch.BranchID) {
			return validationFail(c, "The given data was invalid.", map[string][]string{
				"teacher_ids": {"A selected teacher does not belong to this branch."},
			})
		}
	}

	batch.Teachers = nil
	for _, teacherID := range req.TeacherIDs {
		for _, t := range s.store.teachers {
			if t.ID == teacherID {
				batch.Teachers = append(batch.Teachers, t)
			}
		}
	}
	return ok(c, "Teachers assigned successfully", nil)
}
