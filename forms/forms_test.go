package forms

import (
	"errors"
	"testing"

	"github.com/edusphere/admin-client/client"
	"github.com/edusphere/admin-client/model"
)

func TestCourseFormValidation(t *testing.T) {
	f := NewCourseForm()
	if f.Status != "draft" {
		t.Fatalf("default status = %q", f.Status)
	}
	if f.Validate() {
		t.Fatal("empty form validated")
	}
	if _, found := f.Errors["title"]; !found {
		t.Errorf("missing title error: %v", f.Errors)
	}

	f.Title = "Discrete Mathematics"
	f.CategoryID = "2"
	f.Price = "4500"
	if !f.Validate() {
		t.Fatalf("valid form rejected: %v", f.Errors)
	}

	fields := f.Fields()
	if fields["title"] != "Discrete Mathematics" || fields["category_id"] != "2" {
		t.Fatalf("fields = %v", fields)
	}
	if _, found := fields["summary"]; found {
		t.Error("empty optional summary should be left out")
	}

	f.Summary = "  A summary  "
	if got := f.Fields()["summary"]; got != "A summary" {
		t.Errorf("summary = %q", got)
	}
}

func TestLoadCourseRoundTrip(t *testing.T) {
	course := &model.Course{
		ID:         3,
		CategoryID: 2,
		Title:      "Algorithms",
		Summary:    "Sorting and searching",
		Price:      7500.5,
		Status:     model.CoursePublished,
	}
	f := LoadCourse(course)
	if f.Title != "Algorithms" || f.CategoryID != "2" || f.Price != "7500.5" || f.Status != "published" {
		t.Fatalf("loaded form = %+v", f)
	}
	if !f.Validate() {
		t.Fatalf("loaded form invalid: %v", f.Errors)
	}
}

func TestBatchFormDiscountExclusivity(t *testing.T) {
	f := NewBatchForm()
	f.CourseID = "1"
	f.BranchID = "1"
	f.Name = "Morning Batch"
	f.Price = "5000"
	f.StartDate = "2026-10-01"
	f.EndDate = "2027-03-31"

	f.DiscountType = "percentage"
	f.DiscountPercent = "15"
	f.DiscountAmount = "200"
	if f.Validate() {
		t.Fatal("both discount fields accepted for a percentage discount")
	}
	if _, found := f.Errors["discount_amount"]; !found {
		t.Errorf("missing discount_amount error: %v", f.Errors)
	}

	f.DiscountAmount = ""
	f.DiscountPercent = "120"
	if f.Validate() {
		t.Fatal("percent over 100 accepted")
	}

	f.DiscountPercent = "15"
	if !f.Validate() {
		t.Fatalf("valid percentage discount rejected: %v", f.Errors)
	}

	f.DiscountType = "fixed"
	f.DiscountPercent = "15"
	f.DiscountAmount = "6000"
	if f.Validate() {
		t.Fatal("fixed discount with leftover percent accepted")
	}
	f.DiscountPercent = ""
	if f.Validate() {
		t.Fatal("fixed discount above the price accepted")
	}
	f.DiscountAmount = "500"
	if !f.Validate() {
		t.Fatalf("valid fixed discount rejected: %v", f.Errors)
	}
}

func TestBatchPayloadCarriesOnlyTheSelectedDiscount(t *testing.T) {
	f := NewBatchForm()
	f.CourseID = "1"
	f.BranchID = "2"
	f.Name = "Evening Batch"
	f.Price = "5000"
	f.DiscountType = "percentage"
	f.DiscountPercent = "10"
	f.DiscountAmount = "999" // stale leftover from a type switch
	f.TeacherIDs = []uint{3}

	payload := f.Payload()
	if payload.DiscountPercent != 10 || payload.DiscountAmount != 0 {
		t.Fatalf("payload discounts: percent=%v amount=%v", payload.DiscountPercent, payload.DiscountAmount)
	}

	// the teacher selection is copied, not shared
	payload.TeacherIDs[0] = 99
	if f.TeacherIDs[0] != 3 {
		t.Fatal("payload mutation leaked into the form")
	}
}

func TestEnrollmentCouponFlow(t *testing.T) {
	f := NewEnrollmentForm()
	f.StudentID = "1"
	f.BatchID = "2"
	f.AdditionalDiscount = "100"

	batch := &model.Batch{
		Price:           2000,
		DiscountType:    model.DiscountPercentage,
		DiscountPercent: 10,
	}
	if got := f.PreviewTotal(batch); got != 1700 {
		t.Fatalf("preview before coupon = %.2f, want 1700", got)
	}

	// a rejected coupon changes nothing and surfaces the server message
	msg := f.ApplyCoupon(&model.CouponCheck{Valid: false, Message: "This coupon code is not valid.", Code: "NOPE"})
	if msg != "This coupon code is not valid." {
		t.Fatalf("rejection message = %q", msg)
	}
	if got := f.PreviewTotal(batch); got != 1700 {
		t.Fatalf("preview changed after a rejected coupon: %.2f", got)
	}
	if code := f.Payload().CouponCode; code != "" {
		t.Fatalf("rejected coupon made it into the payload: %q", code)
	}

	if msg := f.ApplyCoupon(&model.CouponCheck{Valid: true, Code: "WELCOME10", Discount: 10}); msg != "" {
		t.Fatalf("accepted coupon returned a message: %q", msg)
	}
	if got := f.PreviewTotal(batch); got != 1690 {
		t.Fatalf("preview with coupon = %.2f, want 1690", got)
	}
	if code := f.Payload().CouponCode; code != "WELCOME10" {
		t.Fatalf("payload coupon = %q", code)
	}
}

func TestPreviewTotalClampedAtZero(t *testing.T) {
	f := NewEnrollmentForm()
	f.AdditionalDiscount = "5000"
	batch := &model.Batch{Price: 1000, DiscountType: model.DiscountFixed, DiscountAmount: 100}
	if got := f.PreviewTotal(batch); got != 0 {
		t.Fatalf("preview = %.2f, want 0", got)
	}
}

func TestStudentFormValidation(t *testing.T) {
	f := NewStudentForm()
	if !f.IsActive {
		t.Fatal("new students should default to active")
	}
	f.Name = "Rakib Hossain"
	f.Email = "not-an-email"
	f.Phone = "01700000001"
	if f.Validate() {
		t.Fatal("bad email accepted")
	}
	if f.Errors["email"] == "" {
		t.Errorf("missing email error: %v", f.Errors)
	}

	f.Email = "rakib@example.com"
	if !f.Validate() {
		t.Fatalf("valid form rejected: %v", f.Errors)
	}
	if f.Payload().Password != "" {
		t.Error("blank password must stay blank in the payload")
	}
}

func TestBindAPIError(t *testing.T) {
	f := NewCourseForm()

	apiErr := &client.APIError{
		StatusCode: 422,
		Message:    "The given data was invalid.",
		Errors: map[string][]string{
			"title": {"The title has already been taken."},
		},
	}
	if msg := f.BindAPIError(apiErr); msg != "The given data was invalid." {
		t.Fatalf("toast = %q", msg)
	}
	if got := f.Errors["title"]; got != "The title has already been taken." {
		t.Fatalf("field binding = %q", got)
	}

	// transport errors yield the generic toast and no field binding
	g := NewCourseForm()
	if msg := g.BindAPIError(errors.New("connection refused")); msg != "Something went wrong. Please try again." {
		t.Fatalf("generic toast = %q", msg)
	}
	if len(g.Errors) != 0 {
		t.Fatalf("transport error bound fields: %v", g.Errors)
	}
}
