package student

import (
	"context"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/seekhobharat/client/core"
	"github.com/seekhobharat/client/core/state"
	"github.com/seekhobharat/client/services/rest"
)

type Service struct {
	api        *rest.Client
	log        core.Logger
	validate   *validator.Validate
	translator ut.Translator

	// Profile is the student profile slice.
	Profile state.Slice[Profile]
}

func NewService(api *rest.Client, log core.Logger, validate *validator.Validate, translator ut.Translator) *Service {
	return &Service{
		api:        api,
		log:        log,
		validate:   validate,
		translator: translator,
	}
}

func (svc *Service) FetchProfile(ctx context.Context) <-chan state.State[Profile] {
	return svc.Profile.Dispatch(ctx, func(ctx context.Context) (Profile, error) {
		var prof Profile
		err := svc.api.Get(ctx, "/student/profile", nil, &prof)
		return prof, err
	})
}

// UpdateProfile saves the settings form, then replaces the slice data with
// the confirmed profile.
func (svc *Service) UpdateProfile(ctx context.Context, in ProfileInput) (Profile, error) {
	if err := in.Validate(svc.validate, svc.translator); err != nil {
		return Profile{}, err
	}
	var prof Profile
	if err := svc.api.Put(ctx, "/student/profile", in, &prof); err != nil {
		return Profile{}, err
	}
	svc.Profile.Apply(func(Profile) Profile { return prof })
	return prof, nil
}

func (svc *Service) SubmitQuiz(ctx context.Context, sub QuizSubmission) (QuizResult, error) {
	if err := sub.Validate(svc.validate, svc.translator); err != nil {
		return QuizResult{}, err
	}
	var res QuizResult
	err := svc.api.Post(ctx, "/student/quiz_submit", sub, &res)
	return res, err
}

func (svc *Service) Streak(ctx context.Context) (Streak, error) {
	var streak Streak
	err := svc.api.Get(ctx, "/student/streak", nil, &streak)
	return streak, err
}

func (svc *Service) Dashboard(ctx context.Context) (Dashboard, error) {
	var dash Dashboard
	err := svc.api.Get(ctx, "/student/dashboard", nil, &dash)
	return dash, err
}
