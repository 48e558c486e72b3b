package main

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/seekhobharat/client/core"
)

// contactForm is checked entirely client-side; it never reaches the network
// layer.
type contactForm struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required,min=10"`
}

func (f *contactForm) Validate(validate *validator.Validate, translator ut.Translator) error {
	f.Name = core.CleanString(f.Name)
	f.Email = core.CleanString(f.Email, true /* lower */)
	f.Message = core.CleanString(f.Message)
	if err := validate.Struct(f); err != nil {
		return core.TranslateValidationErrors(err, translator)
	}
	return nil
}
