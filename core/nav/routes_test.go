package nav_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/seekhobharat/client/core/nav"
	"github.com/seekhobharat/client/core/session"
)

func Test_RolesFor(t *testing.T) {
	roles, guarded := nav.RolesFor(nav.RouteCart)
	assert.True(t, guarded)
	assert.Equal(t, []session.Role{session.RoleStudent}, roles)

	roles, guarded = nav.RolesFor(nav.RouteProfile)
	assert.True(t, guarded, "profile is guarded even with an empty allow-list")
	assert.Empty(t, roles)

	_, guarded = nav.RolesFor(nav.RouteCourses)
	assert.False(t, guarded)
	_, guarded = nav.RolesFor("/no/such/route")
	assert.False(t, guarded)
}

func Test_Home(t *testing.T) {
	assert.Equal(t, nav.RouteStudentHome, nav.Home(session.RoleStudent))
	assert.Equal(t, nav.RouteTeacherHome, nav.Home(session.RoleTeacher))
	assert.Equal(t, nav.RouteAdminDashboard, nav.Home(session.RoleAdmin))
	assert.Equal(t, nav.RouteHome, nav.Home(session.Role("Superuser")))
}

func Test_ShowChrome(t *testing.T) {
	assert.False(t, nav.ShowChrome(nav.RouteLogin))
	assert.False(t, nav.ShowChrome(nav.RouteRegister))
	assert.True(t, nav.ShowChrome(nav.RouteHome))
	assert.True(t, nav.ShowChrome(nav.RouteCart))
}
