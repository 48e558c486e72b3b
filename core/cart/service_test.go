package cart_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seekhobharat/client/core/cart"
	"github.com/seekhobharat/client/core/course"
	"github.com/seekhobharat/client/core/state"
	localstore "github.com/seekhobharat/client/storage/local"
	testutil "github.com/seekhobharat/client/tests"
)

func setup(t *testing.T) (*cart.Service, *localstore.MemStore, *testutil.Backend) {
	t.Helper()
	backend := testutil.NewBackend()
	backend.Courses = []course.Course{
		{ID: "c-1", Title: "Go Basics", Instructor: "R. Pike", Price: 499, Thumbnail: "go.png"},
		{ID: "c-2", Title: "Advanced SQL", Instructor: "C. Date", Price: 799},
	}
	srv := backend.Start(t)

	storage := localstore.NewMemStore()
	svc := cart.NewService(testutil.NewClient(t, srv.URL), storage, testutil.NewLogger())
	return svc, storage, backend
}

func Test_Service_Fetch_projectsEnrollments(t *testing.T) {
	svc, _, backend := setup(t)
	backend.Cart = []map[string]interface{}{
		{
			"id": "c-1", "title": "Go Basics", "instructor": "R. Pike",
			"price": 499, "thumbnail": "go.png",
			// enrollment fields the cart view never shows
			"chapters": []map[string]interface{}{{"title": "Hello"}},
			"progress": 0.4,
		},
	}

	snap := <-svc.Fetch(context.Background())
	require.Equal(t, state.Success, snap.Status)
	assert.Equal(t, []cart.Item{
		{ID: "c-1", Title: "Go Basics", Instructor: "R. Pike", Price: 499, Thumbnail: "go.png"},
	}, snap.Data)
}

func Test_Service_Add(t *testing.T) {
	svc, storage, backend := setup(t)

	item, err := svc.Add(context.Background(), "c-1")
	require.NoError(t, err)
	assert.Equal(t, "Go Basics", item.Title)
	assert.Equal(t, 1, backend.Calls("POST /cart/add/c-1"))

	snap := svc.Items.Get()
	require.Len(t, snap.Data, 1)

	// adding the same course twice stays unique locally
	_, err = svc.Add(context.Background(), "c-1")
	require.NoError(t, err)
	assert.Len(t, svc.Items.Get().Data, 1)

	raw, ok := storage.Get(localstore.KeyEnrolledCourses)
	require.True(t, ok)
	assert.JSONEq(t, `["c-1"]`, raw)
}

func Test_Service_Add_unknownCourse(t *testing.T) {
	svc, storage, _ := setup(t)

	_, err := svc.Add(context.Background(), "c-404")
	require.Error(t, err)
	assert.Empty(t, svc.Items.Get().Data)
	_, cached := storage.Get(localstore.KeyEnrolledCourses)
	assert.False(t, cached)
}

func Test_Service_Remove(t *testing.T) {
	svc, storage, backend := setup(t)
	_, err := svc.Add(context.Background(), "c-1")
	require.NoError(t, err)
	_, err = svc.Add(context.Background(), "c-2")
	require.NoError(t, err)

	require.NoError(t, svc.Remove(context.Background(), "c-1"))
	assert.Equal(t, 1, backend.Calls("DELETE /cart/remove/c-1"))
	assert.Equal(t, []string{"c-2"}, ids(svc.Items.Get().Data))

	raw, _ := storage.Get(localstore.KeyEnrolledCourses)
	assert.JSONEq(t, `["c-2"]`, raw)
}

func Test_Service_Remove_leavesEarlierSnapshotsIntact(t *testing.T) {
	svc, _, _ := setup(t)
	_, err := svc.Add(context.Background(), "c-1")
	require.NoError(t, err)
	_, err = svc.Add(context.Background(), "c-2")
	require.NoError(t, err)

	// a view holding this snapshot must never observe the removal
	before := svc.Items.Get()
	require.Equal(t, []string{"c-1", "c-2"}, ids(before.Data))

	require.NoError(t, svc.Remove(context.Background(), "c-1"))
	assert.Equal(t, []string{"c-2"}, ids(svc.Items.Get().Data))
	assert.Equal(t, []string{"c-1", "c-2"}, ids(before.Data))
}

func Test_Service_Remove_absentIDStillCallsBackend(t *testing.T) {
	svc, _, backend := setup(t)
	_, err := svc.Add(context.Background(), "c-1")
	require.NoError(t, err)

	require.NoError(t, svc.Remove(context.Background(), "c-404"))
	assert.Equal(t, 1, backend.Calls("DELETE /cart/remove/c-404"))
	assert.Equal(t, []string{"c-1"}, ids(svc.Items.Get().Data))
}

func Test_Service_Remove_backendFailureLeavesCollection(t *testing.T) {
	svc, storage, backend := setup(t)
	_, err := svc.Add(context.Background(), "c-1")
	require.NoError(t, err)
	backend.FailWith["DELETE /cart/remove/c-1"] = "enrollment locked"

	err = svc.Remove(context.Background(), "c-1")
	require.EqualError(t, err, "enrollment locked")

	// removal is pessimistic: nothing changed locally
	assert.Equal(t, []string{"c-1"}, ids(svc.Items.Get().Data))
	raw, _ := storage.Get(localstore.KeyEnrolledCourses)
	assert.JSONEq(t, `["c-1"]`, raw)
}

func Test_Service_UpdateEnrolled(t *testing.T) {
	svc, _, backend := setup(t)
	_, err := svc.Add(context.Background(), "c-1")
	require.NoError(t, err)

	require.NoError(t, svc.UpdateEnrolled(context.Background()))
	assert.Equal(t, 1, backend.Calls("PUT /cart/update-enroll-courses"))
}

func Test_Service_EnrolledIDs_corruptCacheIsEmpty(t *testing.T) {
	svc, storage, _ := setup(t)
	require.NoError(t, storage.Set(localstore.KeyEnrolledCourses, "{not json"))

	assert.Nil(t, svc.EnrolledIDs())
}

func ids(items []cart.Item) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}
