package assignment

import (
	"context"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/seekhobharat/client/core"
	"github.com/seekhobharat/client/services/rest"
)

type Service struct {
	api        *rest.Client
	log        core.Logger
	validate   *validator.Validate
	translator ut.Translator
}

func NewService(api *rest.Client, log core.Logger, validate *validator.Validate, translator ut.Translator) *Service {
	return &Service{
		api:        api,
		log:        log,
		validate:   validate,
		translator: translator,
	}
}

func (svc *Service) List(ctx context.Context) ([]Assignment, error) {
	var assignments []Assignment
	err := svc.api.Get(ctx, "/assignments", nil, &assignments)
	return assignments, err
}

func (svc *Service) Get(ctx context.Context, id string) (Assignment, error) {
	var asg Assignment
	err := svc.api.Get(ctx, "/assignments/"+id, nil, &asg)
	return asg, err
}

// Submit hands in a student's work for an assignment.
func (svc *Service) Submit(ctx context.Context, id, content string) (Submission, error) {
	body := struct {
		Content string `json:"content"`
	}{Content: content}
	var sub Submission
	err := svc.api.Post(ctx, "/assignments/"+id+"/submit", body, &sub)
	return sub, err
}

// Create publishes a new assignment (teacher only).
func (svc *Service) Create(ctx context.Context, in AssignmentInput) (Assignment, error) {
	if err := in.Validate(svc.validate, svc.translator); err != nil {
		return Assignment{}, err
	}
	var asg Assignment
	err := svc.api.Post(ctx, "/assignments", in, &asg)
	return asg, err
}

// Submissions lists what students handed in for an assignment (teacher only).
func (svc *Service) Submissions(ctx context.Context, id string) ([]Submission, error) {
	var subs []Submission
	err := svc.api.Get(ctx, "/assignments/"+id+"/submissions", nil, &subs)
	return subs, err
}

// Grade scores one submission (teacher only).
func (svc *Service) Grade(ctx context.Context, id string, in GradeInput) error {
	if err := in.Validate(svc.validate, svc.translator); err != nil {
		return err
	}
	return svc.api.Post(ctx, "/assignments/"+id+"/grade", in, nil)
}
