// Package student covers the student-facing resources: profile and
// settings, the learning dashboard, streaks and quiz submission.
package student

import (
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/seekhobharat/client/core"
	"github.com/seekhobharat/client/core/course"
)

type Profile struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	About     string `json:"about,omitempty"`
	Avatar    string `json:"avatar,omitempty"`
}

// ProfileInput is the settings form payload.
type ProfileInput struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	About     string `json:"about" validate:"max=500"`
	Avatar    string `json:"avatar" validate:"omitempty,url"`
}

func (pi *ProfileInput) Validate(validate *validator.Validate, translator ut.Translator) error {
	pi.FirstName = core.CleanString(pi.FirstName)
	pi.LastName = core.CleanString(pi.LastName)
	pi.About = core.CleanString(pi.About)
	if err := validate.Struct(pi); err != nil {
		return core.TranslateValidationErrors(err, translator)
	}
	return nil
}

type Dashboard struct {
	EnrolledCourses int             `json:"enrolledCourses"`
	CompletedTopics int             `json:"completedTopics"`
	HoursSpent      float64         `json:"hoursSpent"`
	RecentCourses   []course.Course `json:"recentCourses,omitempty"`
}

type Streak struct {
	Current    int       `json:"current"`
	Longest    int       `json:"longest"`
	LastActive time.Time `json:"lastActive"`
}

// QuizSubmission carries a student's answers for one topic quiz: question id
// to chosen option index.
type QuizSubmission struct {
	CourseID string         `json:"courseId" validate:"required"`
	TopicID  string         `json:"topicId" validate:"required"`
	Answers  map[string]int `json:"answers" validate:"required,min=1"`
}

func (qs *QuizSubmission) Validate(validate *validator.Validate, translator ut.Translator) error {
	if err := validate.Struct(qs); err != nil {
		return core.TranslateValidationErrors(err, translator)
	}
	return nil
}

type QuizResult struct {
	Score  int  `json:"score"`
	Total  int  `json:"total"`
	Passed bool `json:"passed"`
}
