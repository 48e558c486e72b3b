package course

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

	// Catalog is the courses slice: the list every browsing view renders.
	Catalog state.Slice[[]Course]
}

func NewService(api *rest.Client, log core.Logger, validate *validator.Validate, translator ut.Translator) *Service {
	return &Service{
		api:        api,
		log:        log,
		validate:   validate,
		translator: translator,
	}
}

// FetchCatalog dispatches a full catalog fetch into the Catalog slice.
func (svc *Service) FetchCatalog(ctx context.Context) <-chan state.State[[]Course] {
	return svc.Catalog.Dispatch(ctx, func(ctx context.Context) ([]Course, error) {
		var courses []Course
		err := svc.api.Get(ctx, "/courses", nil, &courses)
		return courses, err
	})
}

// SearchCatalog dispatches a filtered fetch into the same slice; the result
// replaces whatever list was there.
func (svc *Service) SearchCatalog(ctx context.Context, filter SearchFilter) <-chan state.State[[]Course] {
	if filter.IsEmpty() {
		return svc.FetchCatalog(ctx)
	}
	return svc.Catalog.Dispatch(ctx, func(ctx context.Context) ([]Course, error) {
		var courses []Course
		err := svc.api.Get(ctx, "/courses/search", filter.Values(), &courses)
		return courses, err
	})
}

// StudentDetail fetches one course with its full chapter/topic/quiz nesting.
func (svc *Service) StudentDetail(ctx context.Context, id string) (Course, error) {
	var crs Course
	err := svc.api.Get(ctx, "/student/courses/"+id, nil, &crs)
	return crs, err
}

// Teacher authoring

func (svc *Service) Create(ctx context.Context, in CourseInput) (Course, error) {
	if err := in.Validate(svc.validate, svc.translator); err != nil {
		return Course{}, err
	}
	var crs Course
	err := svc.api.Post(ctx, "/teacher/courses", in, &crs)
	return crs, err
}

func (svc *Service) Update(ctx context.Context, id string, in CourseInput) (Course, error) {
	if err := in.Validate(svc.validate, svc.translator); err != nil {
		return Course{}, err
	}
	var crs Course
	err := svc.api.Put(ctx, "/teacher/courses/"+id, in, &crs)
	return crs, err
}

func (svc *Service) Delete(ctx context.Context, id string) error {
	return svc.api.Delete(ctx, "/teacher/courses/"+id, nil)
}

// Mine lists the courses authored by the logged-in teacher.
func (svc *Service) Mine(ctx context.Context) ([]Course, error) {
	var courses []Course
	err := svc.api.Get(ctx, "/teacher/courses", nil, &courses)
	return courses, err
}

// Admin moderation

func (svc *Service) AdminList(ctx context.Context) ([]Course, error) {
	var courses []Course
	err := svc.api.Get(ctx, "/admin/courses", nil, &courses)
	return courses, err
}

func (svc *Service) AdminRemove(ctx context.Context, id string) error {
	return svc.api.Delete(ctx, "/admin/courses/"+id, nil)
}
