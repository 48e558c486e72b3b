// Package flashcard binds the flashcards API under /api/flashcards.
package flashcard

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/seekhobharat/client/core"
)

type Flashcard struct {
	ID       string `json:"id"`
	CourseID string `json:"courseId"`
	Front    string `json:"front"`
	Back     string `json:"back"`
}

type Input struct {
	CourseID string `json:"courseId" validate:"required"`
	Front    string `json:"front" validate:"required"`
	Back     string `json:"back" validate:"required"`
}

func (in *Input) Validate(validate *validator.Validate, translator ut.Translator) error {
	in.Front = core.CleanString(in.Front)
	in.Back = core.CleanString(in.Back)
	if err := validate.Struct(in); err != nil {
		return core.TranslateValidationErrors(err, translator)
	}
	return nil
}
