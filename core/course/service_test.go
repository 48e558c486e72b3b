package course_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seekhobharat/client/core"
	"github.com/seekhobharat/client/core/course"
	"github.com/seekhobharat/client/core/state"
	testutil "github.com/seekhobharat/client/tests"
)

func setup(t *testing.T) (*course.Service, *testutil.Backend) {
	t.Helper()
	backend := testutil.NewBackend()
	backend.Courses = []course.Course{
		{ID: "c-1", Title: "Go Basics", Category: "Programming", Level: "Beginner", Price: 499},
		{ID: "c-2", Title: "Advanced SQL", Category: "Databases", Level: "Advanced", Price: 799,
			Chapters: []course.Chapter{{ID: "ch-1", Title: "Joins", Topics: []course.Topic{{ID: "t-1", Title: "Inner"}}}}},
	}
	srv := backend.Start(t)

	validate, translator := core.NewValidator()
	return course.NewService(testutil.NewClient(t, srv.URL), testutil.NewLogger(), validate, translator), backend
}

func Test_Service_FetchCatalog(t *testing.T) {
	svc, _ := setup(t)

	snap := <-svc.FetchCatalog(context.Background())
	require.Equal(t, state.Success, snap.Status)
	require.Len(t, snap.Data, 2)
	assert.Equal(t, "Go Basics", snap.Data[0].Title)
}

func Test_Service_FetchCatalog_failureKeepsLastGoodList(t *testing.T) {
	svc, backend := setup(t)
	require.Equal(t, state.Success, (<-svc.FetchCatalog(context.Background())).Status)

	backend.FailWith["GET /courses"] = "catalog unavailable"
	snap := <-svc.FetchCatalog(context.Background())

	assert.Equal(t, state.Failed, snap.Status)
	assert.Equal(t, "catalog unavailable", snap.Err)
	assert.Len(t, snap.Data, 2, "stale catalog stays renderable")
}

func Test_Service_SearchCatalog(t *testing.T) {
	svc, backend := setup(t)

	snap := <-svc.SearchCatalog(context.Background(), course.SearchFilter{Query: "sql"})
	require.Equal(t, state.Success, snap.Status)
	require.Len(t, snap.Data, 1)
	assert.Equal(t, "Advanced SQL", snap.Data[0].Title)
	assert.Equal(t, 1, backend.Calls("GET /courses/search"))

	// an empty filter is the plain catalog fetch, not an empty search
	snap = <-svc.SearchCatalog(context.Background(), course.SearchFilter{})
	require.Equal(t, state.Success, snap.Status)
	assert.Len(t, snap.Data, 2)
	assert.Equal(t, 1, backend.Calls("GET /courses/search"))
	assert.Equal(t, 1, backend.Calls("GET /courses"))
}

func Test_Service_StudentDetail(t *testing.T) {
	svc, _ := setup(t)

	crs, err := svc.StudentDetail(context.Background(), "c-2")
	require.NoError(t, err)
	require.Len(t, crs.Chapters, 1)
	assert.Equal(t, "Joins", crs.Chapters[0].Title)

	_, err = svc.StudentDetail(context.Background(), "c-404")
	assert.EqualError(t, err, "course not found")
}

func Test_Service_Create(t *testing.T) {
	svc, backend := setup(t)

	crs, err := svc.Create(context.Background(), course.CourseInput{
		Title:       "Intro to Testing",
		Description: "Writing tests that pull their weight.",
		Category:    "Programming",
		Level:       "Beginner",
		Price:       299,
	})
	require.NoError(t, err)
	assert.Equal(t, "c-new", crs.ID)
	assert.Equal(t, 1, backend.Calls("POST /teacher/courses"))
}

func Test_Service_Create_validationShortCircuits(t *testing.T) {
	svc, backend := setup(t)

	_, err := svc.Create(context.Background(), course.CourseInput{
		Title:       "Broken",
		Description: "No such difficulty tier.",
		Category:    "Programming",
		Level:       "Ninja",
	})
	require.Error(t, err)

	var vErr *core.ValidationError
	require.ErrorAs(t, err, &vErr)
	require.Len(t, vErr.Fields, 1)
	assert.Equal(t, "level", vErr.Fields[0].Field)
	assert.Equal(t, 0, backend.Calls("POST /teacher/courses"), "invalid input must not reach the network")
}

func Test_Service_Mine(t *testing.T) {
	svc, _ := setup(t)

	courses, err := svc.Mine(context.Background())
	require.NoError(t, err)
	assert.Len(t, courses, 2)
}

func Test_Service_AdminRemove(t *testing.T) {
	svc, backend := setup(t)

	require.NoError(t, svc.AdminRemove(context.Background(), "c-1"))
	assert.Equal(t, 1, backend.Calls("DELETE /admin/courses/c-1"))

	backend.FailWith["DELETE /admin/courses/c-2"] = "course has enrollments"
	assert.EqualError(t, svc.AdminRemove(context.Background(), "c-2"), "course has enrollments")
}
