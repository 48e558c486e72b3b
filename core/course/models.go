// Package course covers the catalog: browsing and search for everyone,
// authoring for teachers, moderation for admins.
package course

import (
	"net/url"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/seekhobharat/client/core"
)

// Course is fetched, never owned: the backend is the system of record and
// the nested chapter/topic/quiz structure is consumed for display only.
type Course struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Instructor  string    `json:"instructor"`
	Category    string    `json:"category"`
	Level       string    `json:"level"`
	Price       float64   `json:"price"`
	Thumbnail   string    `json:"thumbnail"`
	Chapters    []Chapter `json:"chapters,omitempty"`
}

type Chapter struct {
	ID     string  `json:"id"`
	Title  string  `json:"title"`
	Topics []Topic `json:"topics,omitempty"`
}

type Topic struct {
	ID       string         `json:"id"`
	Title    string         `json:"title"`
	VideoURL string         `json:"videoUrl,omitempty"`
	Content  string         `json:"content,omitempty"`
	Quiz     []QuizQuestion `json:"quiz,omitempty"`
}

type QuizQuestion struct {
	ID       string   `json:"id"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

// SearchFilter narrows the catalog query. Empty fields are omitted.
type SearchFilter struct {
	Query    string
	Category string
	Level    string
}

func (f SearchFilter) IsEmpty() bool {
	return f.Query == "" && f.Category == "" && f.Level == ""
}

func (f SearchFilter) Values() url.Values {
	v := make(url.Values)
	if f.Query != "" {
		v.Set("query", f.Query)
	}
	if f.Category != "" {
		v.Set("category", f.Category)
	}
	if f.Level != "" {
		v.Set("level", f.Level)
	}
	return v
}

// CourseInput is the authoring copy: a mutable, independently validated
// payload built while creating or editing a course, discarded after submit.
type CourseInput struct {
	Title       string         `json:"title" validate:"required"`
	Description string         `json:"description" validate:"required"`
	Category    string         `json:"category" validate:"required"`
	Level       string         `json:"level" validate:"required,oneof=Beginner Intermediate Advanced"`
	Price       float64        `json:"price" validate:"gte=0"`
	Thumbnail   string         `json:"thumbnail" validate:"omitempty,url"`
	Chapters    []ChapterInput `json:"chapters" validate:"omitempty,dive"`
}

type ChapterInput struct {
	Title  string       `json:"title" validate:"required"`
	Topics []TopicInput `json:"topics" validate:"omitempty,dive"`
}

type TopicInput struct {
	Title    string `json:"title" validate:"required"`
	VideoURL string `json:"videoUrl" validate:"omitempty,url"`
	Content  string `json:"content"`
}

func (ci *CourseInput) Validate(validate *validator.Validate, translator ut.Translator) error {
	ci.Title = core.CleanString(ci.Title)
	ci.Category = core.CleanString(ci.Category)
	if err := validate.Struct(ci); err != nil {
		return core.TranslateValidationErrors(err, translator)
	}
	return nil
}
