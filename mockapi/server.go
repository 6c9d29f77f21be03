package mockapi

import (
	"net"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Server is the mock admin API.
type Server struct {
	app   *fiber.App
	store *Store
	token string
}

// NewServer creates the server. Every request must carry the given bearer
// token; an empty token disables the check.
func NewServer(token string) *Server {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	s := &Server{
		app:   app,
		store: NewStore(),
		token: token,
	}

	api := app.Group("/api/v1", s.requireBearer)

	api.Get("/courses", s.listCourses)
	api.Post("/courses", s.createCourse)
	api.Get("/courses/:id", s.getCourse)
	api.Put("/courses/:id", s.updateCourse)
	api.Delete("/courses/:id", s.deleteCourse)
	api.Get("/courses/:id/chapters", s.getChapters)
	api.Put("/courses/:id/chapters", s.saveChapters)
	api.Post("/courses/:id/faqs", s.replaceFAQs)
	api.Post("/courses/:id/features", s.replaceFeatures)
	api.Post("/courses/:id/joins", s.replaceJoins)

	api.Get("/categories", s.listCategories)
	api.Get("/course-features", s.listFeatures)
	api.Get("/join-requirements", s.listJoins)

	api.Get("/branches", s.listBranches)
	api.Get("/branches/:id/teachers", s.listBranchTeachers)

	api.Get("/batches", s.listBatches)
	api.Post("/batches", s.createBatch)
	api.Put("/batches/:id", s.updateBatch)
	api.Delete("/batches/:id", s.deleteBatch)
	api.Post("/batches/:id/teachers", s.replaceBatchTeachers)

	api.Get("/students", s.listStudents)
	api.Post("/students", s.createStudent)
	api.Get("/students/:id", s.getStudent)
	api.Put("/students/:id", s.updateStudent)
	api.Delete("/students/:id", s.deleteStudent)

	api.Get("/seminars", s.listSeminars)
	api.Post("/seminars", s.createSeminar)
	api.Put("/seminars/:id", s.updateSeminar)
	api.Delete("/seminars/:id", s.deleteSeminar)
	api.Get("/seminars/:id/registrations", s.listRegistrations)

	api.Get("/enrollments", s.listEnrollments)
	api.Post("/enrollments", s.createEnrollment)
	api.Get("/enrollments/:id/payments", s.listPayments)
	api.Post("/enrollments/:id/payments", s.addPayment)
	api.Post("/coupons/check", s.checkCoupon)

	return s
}

// Store exposes the backing store, commands use it for extra seeding.
func (s *Server) Store() *Store {
	return s.store
}

// Listen serves on an existing listener. Blocks until Shutdown.
func (s *Server) Listen(ln net.Listener) error {
	return s.app.Listener(ln)
}

// Start serves on addr. Blocks until Shutdown.
func (s *Server) Start(addr string) error {
	return s.app.Listen(addr)
}

// Shutdown stops the server.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

func (s *Server) requireBearer(c *fiber.Ctx) error {
	if s.token == "" {
		return c.Next()
	}

	header := c.Get(fiber.HeaderAuthorization)
	if !strings.HasPrefix(header, "Bearer ") {
		return fail(c, fiber.StatusUnauthorized, "Authentication required")
	}
	if strings.TrimPrefix(header, "Bearer ") != s.token {
		return fail(c, fiber.StatusUnauthorized, "Invalid access token")
	}
	return c.Next()
}
