package main

import (
	"context"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/edusphere/admin-client/client"
	"github.com/edusphere/admin-client/editor"
	"github.com/edusphere/admin-client/forms"
	"github.com/edusphere/admin-client/mockapi"
	"github.com/edusphere/admin-client/session"
	"github.com/edusphere/admin-client/utils"
	"github.com/edusphere/admin-client/wizard"
)

// Walks the full course-creation flow against the in-memory mock API:
// course, chapters, batch, student, coupon, enrollment and payment.
func main() {
	logger := utils.NewLogger()
	fatal := func(step string, err error) {
		logger.Logf("FAIL at %s: %v", step, err)
		os.Exit(1)
	}

	server := mockapi.NewServer("smoke-token")
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		fatal("listen", err)
	}
	go func() {
		_ = server.Listen(ln)
	}()
	defer server.Shutdown()

	api := client.NewClient(client.Config{
		BaseURL: "http://" + ln.Addr().String() + "/api/v1",
		Session: &session.Static{Token: "smoke-token"},
		Timeout: 10 * time.Second,
	})
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	redirected := make(chan struct{})
	wiz := wizard.New(50*time.Millisecond, func() { close(redirected) })
	defer wiz.Close()

	// Step 1: basic info.
	courseForm := forms.NewCourseForm()
	courseForm.CategoryID = "1"
	courseForm.Title = "Smoke Test Course"
	courseForm.Price = "5000"
	if !courseForm.Validate() {
		fatal("course form", errFields(courseForm.Errors))
	}
	course, err := api.CreateCourse(ctx, courseForm.Fields(), nil)
	if err != nil {
		fatal("create course", err)
	}
	if err := wiz.SetCourseID(course.ID); err != nil {
		fatal("wizard course id", err)
	}
	logger.Logf("course %d created", course.ID)

	// Step 2: chapters and lessons.
	if err := wiz.Advance(); err != nil {
		fatal("advance to chapters", err)
	}
	ed := editor.New()
	chapter := ed.ChapterAt(0)
	chapter.Title = "Getting Started"
	lesson := ed.LessonAt(0, 0)
	lesson.Title = "Welcome"
	lesson.Duration = "10"
	lesson.Type = "1"
	ed.AppendLesson(0)
	second := ed.LessonAt(0, 1)
	second.Title = "Course Tour"
	second.Duration = "15"
	second.Type = "1"
	if err := api.SaveCourseChapters(ctx, course.ID, ed.BuildPayload()); err != nil {
		fatal("save chapters", err)
	}
	logger.Log("chapters saved")

	// Steps 3-5: walk the remaining gated steps up to the batch step.
	for wiz.Step() < wizard.StepBatch {
		if err := wiz.Advance(); err != nil {
			fatal("advance", err)
		}
	}

	// Batch under the first branch, taught by its teachers.
	batchForm := forms.NewBatchForm()
	batchForm.CourseID = strconv.FormatUint(uint64(course.ID), 10)
	batchForm.BranchID = "1"
	batchForm.Name = "Morning Batch"
	batchForm.Price = "5000"
	batchForm.DiscountType = "percentage"
	batchForm.DiscountPercent = "10"
	batchForm.SeatLimit = "30"
	batchForm.StartDate = "2026-10-01"
	batchForm.EndDate = "2027-03-31"
	batchForm.TeacherIDs = []uint{1, 2}
	if !batchForm.Validate() {
		fatal("batch form", errFields(batchForm.Errors))
	}
	batch, err := api.CreateBatch(ctx, batchForm.Payload())
	if err != nil {
		fatal("create batch", err)
	}
	logger.Logf("batch %d created, payable %.2f", batch.ID, batch.AfterDiscount)

	// Enroll a new student with a coupon.
	studentForm := forms.NewStudentForm()
	studentForm.Name = "Smoke Student"
	studentForm.Email = "smoke@example.com"
	studentForm.Phone = "01700000000"
	if !studentForm.Validate() {
		fatal("student form", errFields(studentForm.Errors))
	}
	student, err := api.CreateStudent(ctx, studentForm.Payload())
	if err != nil {
		fatal("create student", err)
	}

	enrollForm := forms.NewEnrollmentForm()
	enrollForm.StudentID = strconv.FormatUint(uint64(student.ID), 10)
	enrollForm.BatchID = strconv.FormatUint(uint64(batch.ID), 10)
	enrollForm.CouponCode = "WELCOME10"
	check, err := api.CheckCoupon(ctx, enrollForm.CouponCode, batch.ID)
	if err != nil {
		fatal("check coupon", err)
	}
	if msg := enrollForm.ApplyCoupon(check); msg != "" {
		logger.Logf("coupon: %s", msg)
	}
	logger.Logf("preview total %.2f", enrollForm.PreviewTotal(batch))

	enrollment, err := api.CreateEnrollment(ctx, enrollForm.Payload())
	if err != nil {
		fatal("create enrollment", err)
	}
	logger.Logf("enrolled, final %.2f due %.2f", enrollment.FinalAmount, enrollment.DueAmount)

	payment, err := api.AddPayment(ctx, enrollment.ID, client.PaymentPayload{
		Amount: enrollment.FinalAmount / 2,
		Method: 2,
		Type:   2,
	})
	if err != nil {
		fatal("add payment", err)
	}
	logger.Logf("payment recorded, remaining due %.2f", payment.DueAmount)

	// Finish the wizard and wait for the redirect.
	for wiz.Step() < wizard.StepDone {
		if err := wiz.Advance(); err != nil {
			fatal("finish", err)
		}
	}
	select {
	case <-redirected:
		logger.Log("redirect fired")
	case <-time.After(2 * time.Second):
		fatal("redirect", context.DeadlineExceeded)
	}

	logger.Log("smoke run passed")
}

type fieldErrors map[string]string

func (f fieldErrors) Error() string {
	for field, msg := range f {
		return field + ": " + msg
	}
	return "validation failed"
}

func errFields(m map[string]string) error {
	return fieldErrors(m)
}
