package dashboard_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seekhobharat/client/core/dashboard"
	testutil "github.com/seekhobharat/client/tests"
)

func setup(t *testing.T) (*dashboard.Service, *testutil.Backend) {
	t.Helper()
	backend := testutil.NewBackend()
	srv := backend.Start(t)
	return dashboard.NewService(testutil.NewClient(t, srv.URL), testutil.NewLogger()), backend
}

func Test_Service_TeacherMetrics(t *testing.T) {
	svc, backend := setup(t)

	metrics, err := svc.TeacherMetrics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, metrics.TotalCourses)
	assert.Equal(t, 42, metrics.TotalStudents)
	assert.InDelta(t, 90000, metrics.TotalIncome, 0.001)

	backend.FailWith["GET /teacher/metrics"] = "metrics job behind"
	_, err = svc.TeacherMetrics(context.Background())
	assert.EqualError(t, err, "metrics job behind")
}

func Test_Service_AdminOverview(t *testing.T) {
	svc, _ := setup(t)

	overview, err := svc.AdminOverview(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 100, overview.TotalUsers)
	assert.Equal(t, 12, overview.TotalCourses)
	assert.Equal(t, 2, overview.PendingCourses)
}
