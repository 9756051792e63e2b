// Package validator validates request inputs before they reach the
// services. The services trust their callers and do not re-validate.
package validator

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// RegisterInput carries the fields of a registration request.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// LoginInput carries the fields of a login request.
type LoginInput struct {
	Email    string
	Password string
}

// ArticleInput carries the fields of an article creation request.
type ArticleInput struct {
	Title       string
	Description string
	Body        string
}

// CommentInput carries the fields of a comment creation request.
type CommentInput struct {
	Body string
}

// UpdateUserInput carries the optional fields of a user update request.
type UpdateUserInput struct {
	Email    string
	Password string
}

// Validator provides validation methods for request inputs.
type Validator struct{}

// NewValidator creates a new Validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateRegister validates a registration request.
func (v *Validator) ValidateRegister(in *RegisterInput) error {
	return validation.ValidateStruct(in,
		validation.Field(&in.Username,
			validation.Required.Error("username_required"),
			validation.Length(3, 0).Error("username_too_short"),
		),
		validation.Field(&in.Email,
			validation.Required.Error("email_required"),
			is.Email.Error("invalid_email_format"),
		),
		validation.Field(&in.Password,
			validation.Required.Error("password_required"),
			validation.Length(6, 0).Error("password_too_short"),
		),
	)
}

// ValidateLogin validates a login request.
func (v *Validator) ValidateLogin(in *LoginInput) error {
	return validation.ValidateStruct(in,
		validation.Field(&in.Email,
			validation.Required.Error("email_required"),
			is.Email.Error("invalid_email_format"),
		),
		validation.Field(&in.Password,
			validation.Required.Error("password_required"),
		),
	)
}

// ValidateArticle validates an article creation request. Slugs are
// never supplied by clients, so there is nothing to check there.
func (v *Validator) ValidateArticle(in *ArticleInput) error {
	return validation.ValidateStruct(in,
		validation.Field(&in.Title,
			validation.Required.Error("title_required"),
			validation.Length(3, 0).Error("title_too_short"),
		),
		validation.Field(&in.Description,
			validation.Required.Error("description_required"),
		),
		validation.Field(&in.Body,
			validation.Required.Error("body_required"),
		),
	)
}

// ValidateComment validates a comment creation request.
func (v *Validator) ValidateComment(in *CommentInput) error {
	return validation.ValidateStruct(in,
		validation.Field(&in.Body,
			validation.Required.Error("body_required"),
			validation.Length(0, 500).Error("body_too_long"),
		),
	)
}

// ValidateUpdateUser validates the supplied fields of a user update.
// Empty fields mean "leave unchanged" and are skipped.
func (v *Validator) ValidateUpdateUser(in *UpdateUserInput) error {
	return validation.ValidateStruct(in,
		validation.Field(&in.Email,
			validation.When(in.Email != "", is.Email.Error("invalid_email_format")),
		),
		validation.Field(&in.Password,
			validation.When(in.Password != "", validation.Length(6, 0).Error("password_too_short")),
		),
	)
}

// FieldErrors converts ozzo validation errors to a field→messages map
// in the API's error shape.
func FieldErrors(err error) map[string][]string {
	out := map[string][]string{}
	if ve, ok := err.(validation.Errors); ok {
		for field, fieldErr := range ve {
			out[field] = append(out[field], fieldErr.Error())
		}
		return out
	}
	if err != nil {
		out["body"] = append(out["body"], err.Error())
	}
	return out
}
