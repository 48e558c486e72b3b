package assignment_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seekhobharat/client/core"
	"github.com/seekhobharat/client/core/assignment"
	testutil "github.com/seekhobharat/client/tests"
)

func setup(t *testing.T) (*assignment.Service, *testutil.Backend) {
	t.Helper()
	backend := testutil.NewBackend()
	srv := backend.Start(t)
	validate, translator := core.NewValidator()
	return assignment.NewService(testutil.NewClient(t, srv.URL), testutil.NewLogger(), validate, translator), backend
}

func Test_Service_Submit(t *testing.T) {
	svc, backend := setup(t)

	sub, err := svc.Submit(context.Background(), "a-1", "Concurrency beats parallelism when...")
	require.NoError(t, err)
	assert.Equal(t, "sub-1", sub.ID)
	assert.Equal(t, "a-1", sub.AssignmentID)
	assert.Equal(t, 1, backend.Calls("POST /assignments/a-1/submit"))
}

func Test_Service_Create(t *testing.T) {
	svc, backend := setup(t)

	t.Run("valid", func(t *testing.T) {
		asg, err := svc.Create(context.Background(), assignment.AssignmentInput{
			CourseID:    "c-1",
			Title:       "Essay",
			Description: "Write about goroutines.",
			DueDate:     time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
			MaxScore:    100,
		})
		require.NoError(t, err)
		assert.Equal(t, "new", asg.ID)
	})

	t.Run("zero max score rejected client-side", func(t *testing.T) {
		_, err := svc.Create(context.Background(), assignment.AssignmentInput{
			CourseID:    "c-1",
			Title:       "Essay",
			Description: "Write about goroutines.",
			DueDate:     time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		})
		var vErr *core.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "maxScore", vErr.Fields[0].Field)
		assert.Equal(t, 1, backend.Calls("POST /assignments"))
	})
}

func Test_Service_Grade(t *testing.T) {
	svc, backend := setup(t)

	err := svc.Grade(context.Background(), "a-1", assignment.GradeInput{
		SubmissionID: "sub-1",
		Score:        87,
		Feedback:     "Solid reasoning.",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, backend.Calls("POST /assignments/a-1/grade"))

	err = svc.Grade(context.Background(), "a-1", assignment.GradeInput{Score: 87})
	var vErr *core.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, 1, backend.Calls("POST /assignments/a-1/grade"))
}
