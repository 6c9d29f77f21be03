package forms

import (
	"github.com/edusphere/admin-client/client"
	"github.com/edusphere/admin-client/model"
	"github.com/edusphere/admin-client/utils/validation"
)

// StudentForm creates or edits a student account. Password is only sent when
// set, edits leave it blank to keep the existing one.
type StudentForm struct {
	Name     string `json:"name" validate:"required,min=2,max=255"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required,min=6,max=20"`
	Password string `json:"password" validate:"omitempty,min=8"`
	IsActive bool   `json:"is_active"`

	Errors map[string]string `json:"-" validate:"-"`
}

// NewStudentForm returns the form with its default values.
func NewStudentForm() *StudentForm {
	return &StudentForm{
		IsActive: true,
		Errors:   map[string]string{},
	}
}

// LoadStudent fills the form from an existing student, for the edit flow.
func LoadStudent(student *model.Student) *StudentForm {
	f := NewStudentForm()
	f.Name = student.Name
	f.Email = student.Email
	f.Phone = student.Phone
	f.IsActive = student.IsActive
	return f
}

// Validate checks the form locally and fills Errors.
func (f *StudentForm) Validate() bool {
	f.Errors = map[string]string{}
	if err := validate.ValidateStruct(f); err != nil {
		f.Errors = validation.FormatValidationErrors(err)
	}
	return len(f.Errors) == 0
}

// Payload builds the wire payload.
func (f *StudentForm) Payload() client.StudentPayload {
	return client.StudentPayload{
		Name:     validation.SanitizeString(f.Name),
		Email:    validation.SanitizeString(f.Email),
		Phone:    validation.SanitizeString(f.Phone),
		Password: optional(f.Password),
		IsActive: f.IsActive,
	}
}

// BindAPIError attaches server field errors to the form and returns the
// toast message.
func (f *StudentForm) BindAPIError(err error) string {
	if f.Errors == nil {
		f.Errors = map[string]string{}
	}
	return BindAPIError(err, f.Errors)
}
