package mockapi

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/edusphere/admin-client/model"
)

func (s *Server) listCourses(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	perPage, _ := strconv.Atoi(c.Query("per_page", "10"))
	search := strings.ToLower(c.Query("search", ""))

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	var all []model.Course
	for _, id := range s.store.courseOrder {
		course := s.store.courses[id]
		if search != "" && !strings.Contains(strings.ToLower(course.Title), search) {
			continue
		}
		all = append(all, *course)
	}

	start, end, meta := paginate(len(all), page, perPage)
	return ok(c, "", fiber.Map{
		"courses":    all[start:end],
		"pagination": meta,
	})
}

func (s *Server) getCourse(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	course, found := s.store.courses[uint(id)]
	if !found {
		return fail(c, fiber.StatusNotFound, "Course not found")
	}
	out := *course
	out.Chapters = s.store.chapters[out.ID]
	return ok(c, "", out)
}

func (s *Server) createCourse(c *fiber.Ctx) error {
	title := strings.TrimSpace(c.FormValue("title"))
	if title == "" {
		return validationFail(c, "The given data was invalid.", map[string][]string{
			"title": {"The title field is required."},
		})
	}

	categoryID, _ := strconv.Atoi(c.FormValue("category_id"))
	price, _ := strconv.ParseFloat(c.FormValue("price"), 64)
	status := c.FormValue("status", string(model.CourseDraft))

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	course := &model.Course{
		ID:         s.store.id(),
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
		CategoryID: uint(categoryID),
		Title:      title,
		Slug:       strings.ReplaceAll(strings.ToLower(title), " ", "-"),
		Summary:    c.FormValue("summary"),
		Price:      price,
		Status:     model.CourseStatus(status),
	}
	if file, err := c.FormFile("thumbnail"); err == nil && file != nil {
		course.Thumbnail = "/uploads/" + file.Filename
	}

	s.store.courses[course.ID] = course
	s.store.courseOrder = append(s.store.courseOrder, course.ID)
	return created(c, "Course created successfully", course)
}

func (s *Server) updateCourse(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	course, found := s.store.courses[uint(id)]
	if !found {
		return fail(c, fiber.StatusNotFound, "Course not found")
	}

	if title := strings.TrimSpace(c.FormValue("title")); title != "" {
		course.Title = title
	}
	if summary := c.FormValue("summary"); summary != "" {
		course.Summary = summary
	}
	if price := c.FormValue("price"); price != "" {
		course.Price, _ = strconv.ParseFloat(price, 64)
	}
	if status := c.FormValue("status"); status != "" {
		course.Status = model.CourseStatus(status)
	}
	course.UpdatedAt = time.Now()

	return ok(c, "Course updated successfully", course)
}

func (s *Server) deleteCourse(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	if _, found := s.store.courses[uint(id)]; !found {
		return fail(c, fiber.StatusNotFound, "Course not found")
	}
	delete(s.store.courses, uint(id))
	delete(s.store.chapters, uint(id))
	s.store.courseOrder = removeID(s.store.courseOrder, uint(id))
	return ok(c, "Course deleted successfully", nil)
}

func (s *Server) getChapters(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	chapters := s.store.chapters[uint(id)]
	if chapters == nil {
		chapters = []model.Chapter{}
	}
	// the real backend wraps this collection
	return ok(c, "", fiber.Map{"chapters": chapters})
}

type chapterReq struct {
	ID      uint        `json:"id"`
	Title   string      `json:"title"`
	Status  int         `json:"status"`
	Lessons []lessonReq `json:"lessons"`
}

type lessonReq struct {
	ID          uint    `json:"id"`
	Title       string  `json:"title"`
	Duration    int     `json:"duration"`
	Type        int     `json:"type"`
	Status      int     `json:"status"`
	IsPreview   int     `json:"is_preview"`
	AvailableAt *string `json:"available_at"`
	Order       int     `json:"order"`
	ContentURL  string  `json:"content_url"`
}

func (s *Server) saveChapters(c *fiber.Ctx) error {
	courseID, _ := strconv.Atoi(c.Params("id"))

	var req struct {
		Chapters []chapterReq `json:"chapters"`
	}
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	errs := map[string][]string{}
	for i, ch := range req.Chapters {
		if strings.TrimSpace(ch.Title) == "" {
			errs[fmt.Sprintf("chapters.%d.title", i)] = []string{"The chapter title is required."}
		}
		for j, l := range ch.Lessons {
			if strings.TrimSpace(l.Title) == "" {
				errs[fmt.Sprintf("chapters.%d.lessons.%d.title", i, j)] = []string{"The lesson title is required."}
			}
			if !model.LessonType(l.Type).Valid() {
				errs[fmt.Sprintf("chapters.%d.lessons.%d.type", i, j)] = []string{"The selected lesson type is invalid."}
			}
			if l.Duration < 0 {
				errs[fmt.Sprintf("chapters.%d.lessons.%d.duration", i, j)] = []string{"The duration must be at least 0."}
			}
		}
	}
	if len(errs) > 0 {
		return validationFail(c, "The given data was invalid.", errs)
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	if _, found := s.store.courses[uint(courseID)]; !found {
		return fail(c, fiber.StatusNotFound, "Course not found")
	}

	chapters := make([]model.Chapter, 0, len(req.Chapters))
	for _, ch := range req.Chapters {
		chapter := model.Chapter{
			ID:       ch.ID,
			CourseID: uint(courseID),
			Title:    ch.Title,
			Status:   model.ChapterStatus(ch.Status),
		}
		if chapter.ID == 0 {
			chapter.ID = s.store.id()
		}
		for _, l := range ch.Lessons {
			lesson := model.Lesson{
				ID:         l.ID,
				ChapterID:  chapter.ID,
				Title:      l.Title,
				Duration:   l.Duration,
				Type:       model.LessonType(l.Type),
				Status:     model.ChapterStatus(l.Status),
				IsPreview:  l.IsPreview == 1,
				Order:      l.Order,
				ContentURL: l.ContentURL,
			}
			if lesson.ID == 0 {
				lesson.ID = s.store.id()
			}
			if l.AvailableAt != nil {
				if at, err := time.Parse("2006-01-02T15:04", *l.AvailableAt); err == nil {
					lesson.AvailableAt = &at
				}
			}
			chapter.Lessons = append(chapter.Lessons, lesson)
		}
		chapters = append(chapters, chapter)
	}
	s.store.chapters[uint(courseID)] = chapters

	return ok(c, "Chapters saved successfully", nil)
}

func (s *Server) replaceFAQs(c *fiber.Ctx) error {
	courseID, _ := strconv.Atoi(c.Params("id"))

	var req struct {
		FAQs []model.FAQ `json:"faqs"`
	}
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	course, found := s.store.courses[uint(courseID)]
	if !found {
		return fail(c, fiber.StatusNotFound, "Course not found")
	}
	course.FAQs = req.FAQs
	return ok(c, "FAQs saved successfully", nil)
}

func (s *Server) replaceFeatures(c *fiber.Ctx) error {
	courseID, _ := strconv.Atoi(c.Params("id"))

	var req struct {
		Kind       string `json:"kind"`
		FeatureIDs []uint `json:"feature_ids"`
	}
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	course, found := s.store.courses[uint(courseID)]
	if !found {
		return fail(c, fiber.StatusNotFound, "Course not found")
	}

	kept := course.Features[:0]
	for _, f := range course.Features {
		if f.Kind != req.Kind {
			kept = append(kept, f)
		}
	}
	for _, id := range req.FeatureIDs {
		for _, f := range s.store.features {
			if f.ID == id && f.Kind == req.Kind {
				kept = append(kept, f)
			}
		}
	}
	course.Features = kept
	return ok(c, "Features saved successfully", nil)
}

func (s *Server) replaceJoins(c *fiber.Ctx) error {
	courseID, _ := strconv.Atoi(c.Params("id"))

	var req struct {
		JoinIDs []uint `json:"join_ids"`
	}
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	course, found := s.store.courses[uint(courseID)]
	if !found {
		return fail(c, fiber.StatusNotFound, "Course not found")
	}

	course.Joins = nil
	for _, id := range req.JoinIDs {
		for _, j := range s.store.joins {
			if j.ID == id {
				course.Joins = append(course.Joins, j)
			}
		}
	}
	return ok(c, "Eligibility saved successfully", nil)
}

func (s *Server) listCategories(c *fiber.Ctx) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	// wrapped, like the real backend
	return ok(c, "", fiber.Map{"categories": s.store.categories})
}

func (s *Server) listFeatures(c *fiber.Ctx) error {
	kind := c.Query("kind")

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	var out []model.CourseFeature
	for _, f := range s.store.features {
		if kind == "" || f.Kind == kind {
			out = append(out, f)
		}
	}
	// bare array, like the real backend
	return ok(c, "", out)
}

func (s *Server) listJoins(c *fiber.Ctx) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	return ok(c, "", s.store.joins)
}
