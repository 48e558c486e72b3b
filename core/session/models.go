// Package session holds the authentication state for the running client:
// the bearer token and the role resolved from it.
package session

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/seekhobharat/client/core"
)

// Role is the `role` claim carried in the token payload. It is the only
// source of truth for authorization decisions.
type Role string

const (
	RoleAdmin   Role = "Admin"
	RoleTeacher Role = "Teacher"
	RoleStudent Role = "Student"
)

var AllRoles = []Role{RoleAdmin, RoleTeacher, RoleStudent}

func (r Role) Known() bool {
	for _, known := range AllRoles {
		if r == known {
			return true
		}
	}
	return false
}

// Session is the token/role pair for the current client. The zero value
// means "no session".
type Session struct {
	Token string
	Role  Role
}

func (s Session) Present() bool { return s.Token != "" }

// Credentials is the login form payload.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (c *Credentials) Validate(validate *validator.Validate, translator ut.Translator) error {
	c.Email = core.CleanString(c.Email, true /* lower */)
	if err := validate.Struct(c); err != nil {
		return core.TranslateValidationErrors(err, translator)
	}
	return nil
}

// NewAccount contains information needed to register a new account.
type NewAccount struct {
	FirstName       string `json:"firstName" validate:"required"`
	LastName        string `json:"lastName" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8"`
	PasswordConfirm string `json:"passwordConfirm" validate:"required,eqfield=Password"`
	AccountType     Role   `json:"accountType" validate:"required"`
}

func (na *NewAccount) Validate(validate *validator.Validate, translator ut.Translator) error {
	na.FirstName = core.CleanString(na.FirstName)
	na.LastName = core.CleanString(na.LastName)
	na.Email = core.CleanString(na.Email, true /* lower */)
	if err := validate.Struct(na); err != nil {
		return core.TranslateValidationErrors(err, translator)
	}
	if !na.AccountType.Known() {
		return core.NewValidationError(errUnknownRole, core.FieldError{Field: "accountType", Error: errUnknownRole.Error()})
	}
	return nil
}
