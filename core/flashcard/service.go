package flashcard

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

// List fetches the deck for one course.
func (svc *Service) List(ctx context.Context, courseID string) ([]Flashcard, error) {
	var cards []Flashcard
	err := svc.api.Get(ctx, "/api/flashcards/"+courseID, nil, &cards)
	return cards, err
}

func (svc *Service) Create(ctx context.Context, in Input) (Flashcard, error) {
	if err := in.Validate(svc.validate, svc.translator); err != nil {
		return Flashcard{}, err
	}
	var card Flashcard
	err := svc.api.Post(ctx, "/api/flashcards", in, &card)
	return card, err
}

// Review records a recall rating (0-5) for one card.
func (svc *Service) Review(ctx context.Context, id string, quality int) error {
	body := struct {
		Quality int `json:"quality"`
	}{Quality: quality}
	return svc.api.Post(ctx, "/api/flashcards/"+id+"/review", body, nil)
}
