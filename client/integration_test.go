package client

import (
	"context"
	"errors"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/edusphere/admin-client/mockapi"
	"github.com/edusphere/admin-client/session"
)

// startMock runs the in-memory admin API on a loopback listener and returns a
// client pointed at it.
func startMock(t *testing.T) *Client {
	t.Helper()

	server := mockapi.NewServer("it-token")
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	go func() {
		_ = server.Listen(ln)
	}()
	t.Cleanup(func() { _ = server.Shutdown() })

	return NewClient(Config{
		BaseURL: "http://" + ln.Addr().String() + "/api/v1",
		Session: &session.Static{Token: "it-token"},
		Timeout: 10 * time.Second,
	})
}

func TestCourseLifecycleAgainstMock(t *testing.T) {
	c := startMock(t)
	ctx := context.Background()

	course, err := c.CreateCourse(ctx, map[string]string{
		"title":       "Integration Course",
		"category_id": "1",
		"price":       "1000",
		"status":      "draft",
	}, nil)
	if err != nil {
		t.Fatalf("create course: %v", err)
	}
	if course.ID == 0 {
		t.Fatal("created course has no id")
	}

	// A fresh course has zero chapters.
	chapters, err := c.GetCourseChapters(ctx, course.ID)
	if err != nil {
		t.Fatalf("get chapters: %v", err)
	}
	if len(chapters) != 0 {
		t.Fatalf("new course already has %d chapters", len(chapters))
	}

	payload := []ChapterPayload{{
		Title:  "Intro",
		Status: 1,
		Lessons: []LessonPayload{
			{Title: "Hello", Duration: 5, Type: 1, Order: 1},
			{Title: "Setup", Duration: 10, Type: 1, Order: 2},
		},
	}}
	if err := c.SaveCourseChapters(ctx, course.ID, payload); err != nil {
		t.Fatalf("save chapters: %v", err)
	}

	chapters, err = c.GetCourseChapters(ctx, course.ID)
	if err != nil {
		t.Fatalf("get chapters after save: %v", err)
	}
	if len(chapters) != 1 || len(chapters[0].Lessons) != 2 {
		t.Fatalf("round trip lost rows: %+v", chapters)
	}

	if err := c.DeleteCourse(ctx, course.ID); err != nil {
		t.Fatalf("delete course: %v", err)
	}
	if _, err := c.GetCourse(ctx, course.ID); err == nil {
		t.Fatal("deleted course still readable")
	}
}

func TestSaveChaptersValidationErrorsUseDottedPaths(t *testing.T) {
	c := startMock(t)
	ctx := context.Background()

	course, err := c.CreateCourse(ctx, map[string]string{
		"title":       "Validation Course",
		"category_id": "1",
		"price":       "1000",
		"status":      "draft",
	}, nil)
	if err != nil {
		t.Fatalf("create course: %v", err)
	}

	payload := []ChapterPayload{{
		Title:  "Intro",
		Status: 1,
		Lessons: []LessonPayload{
			{Title: "Hello", Duration: 5, Type: 1, Order: 1},
			{Title: "", Duration: 10, Type: 1, Order: 2},
		},
	}}
	err = c.SaveCourseChapters(ctx, course.ID, payload)
	if err == nil {
		t.Fatal("expected validation failure")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error is %T, want *APIError", err)
	}
	if _, found := apiErr.FieldErrors()["chapters.0.lessons.1.title"]; !found {
		t.Fatalf("missing dotted path in %v", apiErr.FieldErrors())
	}
}

func TestEnrollmentFlowAgainstMock(t *testing.T) {
	c := startMock(t)
	ctx := context.Background()

	batch, err := c.CreateBatch(ctx, BatchPayload{
		CourseID:        1,
		BranchID:        1,
		Name:            "Evening Batch",
		Price:           2000,
		DiscountType:    "percentage",
		DiscountPercent: 10,
		StartDate:       "2026-10-01",
		TeacherIDs:      []uint{1},
	})
	if err != nil {
		t.Fatalf("create batch: %v", err)
	}
	if batch.AfterDiscount != 1800 {
		t.Fatalf("after discount = %.2f, want 1800", batch.AfterDiscount)
	}

	check, err := c.CheckCoupon(ctx, "WELCOME10", batch.ID)
	if err != nil {
		t.Fatalf("check coupon: %v", err)
	}
	if !check.Valid || check.Discount != 10 {
		t.Fatalf("coupon check = %+v", check)
	}

	bogus, err := c.CheckCoupon(ctx, "NOPE", batch.ID)
	if err != nil {
		t.Fatalf("invalid coupon must still be a successful call: %v", err)
	}
	if bogus.Valid || bogus.Message == "" {
		t.Fatalf("invalid coupon = %+v", bogus)
	}

	enrollment, err := c.CreateEnrollment(ctx, EnrollmentPayload{
		StudentID:          1,
		BatchID:            batch.ID,
		AdditionalDiscount: 100,
		CouponCode:         "WELCOME10",
	})
	if err != nil {
		t.Fatalf("create enrollment: %v", err)
	}
	// 1800 - 10 coupon - 100 additional
	if enrollment.FinalAmount != 1690 {
		t.Fatalf("final amount = %.2f, want 1690", enrollment.FinalAmount)
	}

	record, err := c.AddPayment(ctx, enrollment.ID, PaymentPayload{Amount: 690, Method: 2, Type: 2})
	if err != nil {
		t.Fatalf("add payment: %v", err)
	}
	if record.DueAmount != 1000 {
		t.Fatalf("due after payment = %.2f, want 1000", record.DueAmount)
	}

	records, err := c.ListPayments(ctx, enrollment.ID)
	if err != nil {
		t.Fatalf("list payments: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("payment ledger has %d entries", len(records))
	}
}

func TestBatchRejectsOutOfBranchTeachers(t *testing.T) {
	c := startMock(t)

	_, err := c.CreateBatch(context.Background(), BatchPayload{
		CourseID:     1,
		BranchID:     1,
		Name:         "Cross Branch",
		Price:        1000,
		DiscountType: "percentage",
		StartDate:    "2026-10-01",
		TeacherIDs:   []uint{3}, // teacher 3 belongs to branch 2
	})
	if err == nil {
		t.Fatal("expected rejection")
	}
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error is %T, want *APIError", err)
	}
	if _, found := apiErr.FieldErrors()["teacher_ids"]; !found {
		t.Fatalf("missing teacher_ids error in %v", apiErr.FieldErrors())
	}
}

func TestSeminarLifecycleAgainstMock(t *testing.T) {
	c := startMock(t)
	ctx := context.Background()

	seminar, err := c.CreateSeminar(ctx, SeminarPayload{
		CourseID: 1,
		BranchID: 1,
		Topic:    "Intro to Web Development",
		HeldAt:   "2026-10-15T18:00",
		SeatCap:  50,
	})
	if err != nil {
		t.Fatalf("create seminar: %v", err)
	}

	updated, err := c.UpdateSeminar(ctx, seminar.ID, SeminarPayload{Topic: "Web Development Kickoff"})
	if err != nil {
		t.Fatalf("update seminar: %v", err)
	}
	if updated.Topic != "Web Development Kickoff" {
		t.Fatalf("topic = %q", updated.Topic)
	}

	registrations, err := c.ListSeminarRegistrations(ctx, seminar.ID)
	if err != nil {
		t.Fatalf("list registrations: %v", err)
	}
	if len(registrations) != 0 {
		t.Fatalf("fresh seminar has %d registrations", len(registrations))
	}

	if err := c.DeleteSeminar(ctx, seminar.ID); err != nil {
		t.Fatalf("delete seminar: %v", err)
	}
	list, err := c.ListSeminars(ctx, 1)
	if err != nil {
		t.Fatalf("list seminars: %v", err)
	}
	if len(list.Seminars) != 0 {
		t.Fatalf("deleted seminar still listed: %+v", list.Seminars)
	}
}

func TestUnauthorizedToken(t *testing.T) {
	server := mockapi.NewServer("right-token")
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	go func() {
		_ = server.Listen(ln)
	}()
	t.Cleanup(func() { _ = server.Shutdown() })

	c := NewClient(Config{
		BaseURL: "http://" + ln.Addr().String() + "/api/v1",
		Session: &session.Static{Token: "wrong-token"},
		Timeout: 5 * time.Second,
	})

	_, err = c.ListBranches(context.Background())
	if err == nil {
		t.Fatal("expected unauthorized error")
	}
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error is %T, want *APIError", err)
	}
	if apiErr.StatusCode != 401 && !strings.Contains(err.Error(), "Unauthorized") {
		t.Fatalf("unexpected error: %v", err)
	}
}
