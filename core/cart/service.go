package cart

import (
	"context"
	"encoding/json"

	"github.com/seekhobharat/client/core"
	"github.com/seekhobharat/client/core/state"
	"github.com/seekhobharat/client/services/rest"
	localstore "github.com/seekhobharat/client/storage/local"
)

type Service struct {
	api     *rest.Client
	storage localstore.Storage
	log     core.Logger

	// Items is the cart slice.
	Items state.Slice[[]Item]
}

func NewService(api *rest.Client, storage localstore.Storage, log core.Logger) *Service {
	return &Service{
		api:     api,
		storage: storage,
		log:     log,
	}
}

// Fetch dispatches a cart fetch into the Items slice, replacing the
// collection wholesale with the projected enrollments.
func (svc *Service) Fetch(ctx context.Context) <-chan state.State[[]Item] {
	return svc.Items.Dispatch(ctx, func(ctx context.Context) ([]Item, error) {
		var enrollments []enrollment
		if err := svc.api.Get(ctx, "/cart", nil, &enrollments); err != nil {
			return nil, err
		}
		return projectItems(enrollments), nil
	})
}

// Add puts a course in the cart. On success the returned item is appended
// locally (unique by ID) and the course id joins the cached enrolled list.
func (svc *Service) Add(ctx context.Context, courseID string) (Item, error) {
	var added enrollment
	if err := svc.api.Post(ctx, "/cart/add/"+courseID, nil, &added); err != nil {
		return Item{}, err
	}

	item := added.item()
	svc.Items.Apply(func(items []Item) []Item {
		for _, it := range items {
			if it.ID == item.ID {
				return items
			}
		}
		return append(items, item)
	})
	svc.cacheEnrolledID(courseID)
	return item, nil
}

// Remove is pessimistic: the backend call goes first and the local
// collection is filtered only after it succeeds. Removing an id not in the
// collection still issues the call and is a local no-op.
func (svc *Service) Remove(ctx context.Context, courseID string) error {
	if err := svc.api.Delete(ctx, "/cart/remove/"+courseID, nil); err != nil {
		return err
	}

	// filter into a fresh slice; snapshots handed out earlier keep aliasing
	// the old backing array and must not see the removal
	svc.Items.Apply(func(items []Item) []Item {
		kept := make([]Item, 0, len(items))
		for _, it := range items {
			if it.ID != courseID {
				kept = append(kept, it)
			}
		}
		return kept
	})
	svc.dropEnrolledID(courseID)
	return nil
}

// UpdateEnrolled finalizes checkout: the backend converts the cart into
// enrollments for the cached course ids.
func (svc *Service) UpdateEnrolled(ctx context.Context) error {
	body := struct {
		CourseIDs []string `json:"courseIds"`
	}{CourseIDs: svc.EnrolledIDs()}
	return svc.api.Put(ctx, "/cart/update-enroll-courses", body, nil)
}

// EnrolledIDs returns the locally cached course id list. The cache is a
// convenience only; the backend cart remains authoritative.
func (svc *Service) EnrolledIDs() []string {
	raw, ok := svc.storage.Get(localstore.KeyEnrolledCourses)
	if !ok || raw == "" {
		return nil
	}
	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		return nil
	}
	return ids
}

func (svc *Service) cacheEnrolledID(courseID string) {
	ids := svc.EnrolledIDs()
	for _, id := range ids {
		if id == courseID {
			return
		}
	}
	svc.saveEnrolledIDs(append(ids, courseID))
}

func (svc *Service) dropEnrolledID(courseID string) {
	ids := svc.EnrolledIDs()
	kept := make([]string, 0, len(ids))
	for _, id := range ids {
		if id != courseID {
			kept = append(kept, id)
		}
	}
	svc.saveEnrolledIDs(kept)
}

func (svc *Service) saveEnrolledIDs(ids []string) {
	data, err := json.Marshal(ids)
	if err != nil {
		return
	}
	if err := svc.storage.Set(localstore.KeyEnrolledCourses, string(data)); err != nil {
		svc.log.Warn("caching enrolled course ids failed", err)
	}
}
