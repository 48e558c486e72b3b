// Package assignment binds the assignments API: students list and submit,
// teachers create and grade.
package assignment

import (
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/seekhobharat/client/core"
)

type Assignment struct {
	ID          string    `json:"id"`
	CourseID    string    `json:"courseId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	DueDate     time.Time `json:"dueDate"`
	MaxScore    int       `json:"maxScore"`
}

type Submission struct {
	ID           string    `json:"id,omitempty"`
	AssignmentID string    `json:"assignmentId"`
	Content      string    `json:"content"`
	SubmittedAt  time.Time `json:"submittedAt,omitempty"`
	Score        *int      `json:"score,omitempty"`
	Feedback     string    `json:"feedback,omitempty"`
}

// AssignmentInput is the teacher's authoring payload.
type AssignmentInput struct {
	CourseID    string    `json:"courseId" validate:"required"`
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description" validate:"required"`
	DueDate     time.Time `json:"dueDate" validate:"required"`
	MaxScore    int       `json:"maxScore" validate:"gt=0"`
}

func (ai *AssignmentInput) Validate(validate *validator.Validate, translator ut.Translator) error {
	ai.Title = core.CleanString(ai.Title)
	if err := validate.Struct(ai); err != nil {
		return core.TranslateValidationErrors(err, translator)
	}
	return nil
}

// GradeInput scores one submission.
type GradeInput struct {
	SubmissionID string `json:"submissionId" validate:"required"`
	Score        int    `json:"score" validate:"gte=0"`
	Feedback     string `json:"feedback"`
}

func (gi *GradeInput) Validate(validate *validator.Validate, translator ut.Translator) error {
	if err := validate.Struct(gi); err != nil {
		return core.TranslateValidationErrors(err, translator)
	}
	return nil
}
