package forms

import (
	"github.com/edusphere/admin-client/model"
	"github.com/edusphere/admin-client/utils/validation"
)

// CourseForm is the wizard step-1 form. Select and number inputs hold the
// strings the UI produces; Fields converts them to the multipart payload.
type CourseForm struct {
	Title      string `json:"title" validate:"required,min=3,max=255"`
	CategoryID string `json:"category_id" validate:"required,numeric"`
	Summary    string `json:"summary" validate:"omitempty,max=1000"`
	Price      string `json:"price" validate:"required,numeric"`
	Status     string `json:"status" validate:"required,oneof=draft published archived"`

	Errors map[string]string `json:"-" validate:"-"`
}

// NewCourseForm returns the form with its default values.
func NewCourseForm() *CourseForm {
	return &CourseForm{
		Status: string(model.CourseDraft),
		Errors: map[string]string{},
	}
}

// LoadCourse fills the form from an existing course, for the edit flow.
func LoadCourse(course *model.Course) *CourseForm {
	f := NewCourseForm()
	f.Title = course.Title
	f.CategoryID = uintField(course.CategoryID)
	f.Summary = course.Summary
	f.Price = floatField(course.Price)
	f.Status = string(course.Status)
	return f
}

// Validate checks the form locally and fills Errors. Reports whether the
// form may be submitted.
func (f *CourseForm) Validate() bool {
	f.Errors = map[string]string{}
	if err := validate.ValidateStruct(f); err != nil {
		f.Errors = validation.FormatValidationErrors(err)
	}
	return len(f.Errors) == 0
}

// Fields builds the multipart form fields. Optional empty values are left
// out rather than sent as empty strings.
func (f *CourseForm) Fields() map[string]string {
	fields := map[string]string{
		"title":       validation.SanitizeString(f.Title),
		"category_id": validation.SanitizeString(f.CategoryID),
		"price":       validation.SanitizeString(f.Price),
		"status":      f.Status,
	}
	if summary := optional(f.Summary); summary != "" {
		fields["summary"] = summary
	}
	return fields
}

// BindAPIError attaches server field errors to the form and returns the
// toast message.
func (f *CourseForm) BindAPIError(err error) string {
	if f.Errors == nil {
		f.Errors = map[string]string{}
	}
	return BindAPIError(err, f.Errors)
}
