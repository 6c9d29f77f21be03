package mockapi

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/edusphere/admin-client/model"
)

func (s *Server) listStudents(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	perPage, _ := strconv.Atoi(c.Query("per_page", "10"))
	search := strings.ToLower(c.Query("search", ""))

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	var all []model.Student
	for _, id := range s.store.studentOrder {
		student := s.store.students[id]
		if search != "" && !strings.Contains(strings.ToLower(student.Name), search) {
			continue
		}
		all = append(all, *student)
	}

	start, end, meta := paginate(len(all), page, perPage)
	return ok(c, "", fiber.Map{
		"students":   all[start:end],
		"pagination": meta,
	})
}

type studentReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
	IsActive bool   `json:"is_active"`
}

func (s *Server) createStudent(c *fiber.Ctx) error {
	var req studentReq
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if req.Email == "" {
		return validationFail(c, "The given data was invalid.", map[string][]string{
			"email": {"The email field is required."},
		})
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	for _, existing := range s.store.students {
		if existing.Email == req.Email {
			return validationFail(c, "The given data was invalid.", map[string][]string{
				"email": {"The email has already been taken."},
			})
		}
	}

	student := &model.Student{
		ID:        s.store.id(),
		CreatedAt: time.Now(),
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		IsActive:  req.IsActive,
	}
	s.store.students[student.ID] = student
	s.store.studentOrder = append(s.store.studentOrder, student.ID)
	return created(c, "Student created successfully", student)
}

func (s *Server) getStudent(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	student, found := s.store.students[uint(id)]
	if !found {
		return fail(c, fiber.StatusNotFound, "Student not found")
	}
	return ok(c, "", student)
}

func (s *Server) updateStudent(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	var req studentReq
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	student, found := s.store.students[uint(id)]
	if !found {
		return fail(c, fiber.StatusNotFound, "Student not found")
	}
	if req.Name != "" {
		student.Name = req.Name
	}
	if req.Phone != "" {
		student.Phone = req.Phone
	}
	student.IsActive = req.IsActive
	return ok(c, "Student updated successfully", student)
}

func (s *Server) deleteStudent(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	if _, found := s.store.students[uint(id)]; !found {
		return fail(c, fiber.StatusNotFound, "Student not found")
	}
	delete(s.store.students, uint(id))
	s.store.studentOrder = removeID(s.store.studentOrder, uint(id))
	return ok(c, "Student deleted successfully", nil)
}

func (s *Server) listEnrollments(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	perPage, _ := strconv.Atoi(c.Query("per_page", "10"))
	batchID, _ := strconv.Atoi(c.Query("batch_id", "0"))

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	var all []model.Enrollment
	for _, id := range s.store.enrollOrder {
		enrollment := s.store.enrollments[id]
		if batchID > 0 && enrollment.BatchID != uint(batchID) {
			continue
		}
		all = append(all, *enrollment)
	}

	start, end, meta := paginate(len(all), page, perPage)
	return ok(c, "", fiber.Map{
		"enrollments": all[start:end],
		"pagination":  meta,
	})
}

type enrollmentReq struct {
	StudentID          uint    `json:"student_id"`
	BatchID            uint    `json:"batch_id"`
	AdditionalDiscount float64 `json:"additional_discount"`
	CouponCode         string  `json:"coupon_code"`
}

func (s *Server) createEnrollment(c *fiber.Ctx) error {
	var req enrollmentReq
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	if _, found := s.store.students[req.StudentID]; !found {
		return fail(c, fiber.StatusNotFound, "Student not found")
	}
	batch, found := s.store.batches[req.BatchID]
	if !found {
		return fail(c, fiber.StatusNotFound, "Batch not found")
	}

	// the server owns the final figure
	final := batch.AfterDiscount
	if discount, valid := s.store.coupons[req.CouponCode]; valid && req.CouponCode != "" {
		final -= discount
	}
	final -= req.AdditionalDiscount
	if final < 0 {
		final = 0
	}

	enrollment := &model.Enrollment{
		ID:                 s.store.id(),
		CreatedAt:          time.Now(),
		StudentID:          req.StudentID,
		BatchID:            req.BatchID,
		AdditionalDiscount: req.AdditionalDiscount,
		FinalAmount:        final,
		DueAmount:          final,
	}
	s.store.enrollments[enrollment.ID] = enrollment
	s.store.enrollOrder = append(s.store.enrollOrder, enrollment.ID)
	return created(c, "Enrollment created successfully", enrollment)
}

type paymentReq struct {
	Amount float64 `json:"amount"`
	Method int     `json:"method"`
	Type   int     `json:"type"`
	Note   string  `json:"note"`
}

func (s *Server) addPayment(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	var req paymentReq
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	enrollment, found := s.store.enrollments[uint(id)]
	if !found {
		return fail(c, fiber.StatusNotFound, "Enrollment not found")
	}
	if req.Amount <= 0 {
		return validationFail(c, "The given data was invalid.", map[string][]string{
			"amount": {"The amount must be greater than 0."},
		})
	}

	now := time.Now()
	record := model.PaymentRecord{
		ID:           s.store.id(),
		EnrollmentID: enrollment.ID,
		Amount:       req.Amount,
		Method:       model.PaymentMethod(req.Method),
		Status:       model.PaymentPaid,
		Type:         model.PaymentType(req.Type),
		PaidAt:       &now,
		Note:         req.Note,
	}
	enrollment.DueAmount -= req.Amount
	if enrollment.DueAmount < 0 {
		enrollment.DueAmount = 0
	}
	record.DueAmount = enrollment.DueAmount

	s.store.payments[enrollment.ID] = append(s.store.payments[enrollment.ID], record)
	return created(c, "Payment recorded successfully", record)
}

func (s *Server) listPayments(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	records := s.store.payments[uint(id)]
	if records == nil {
		records = []model.PaymentRecord{}
	}
	return ok(c, "", records)
}

func (s *Server) checkCoupon(c *fiber.Ctx) error {
	var req struct {
		Code    string `json:"code"`
		BatchID uint   `json:"batch_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	discount, valid := s.store.coupons[req.Code]
	if !valid {
		return ok(c, "", model.CouponCheck{
			Valid:   false,
			Message: "This coupon code is not valid.",
			Code:    req.Code,
		})
	}
	return ok(c, "", model.CouponCheck{
		Valid:    true,
		Code:     req.Code,
		Discount: discount,
	})
}
