// Package nav is the client's route table: which views exist, who may reach
// them, where each role lands after login, and when the navigation chrome
// (navbar/footer) is shown.
package nav

import "github.com/seekhobharat/client/core/session"

// Routes.
const (
	RouteHome     = "/"
	RouteLogin    = "/login"
	RouteRegister = "/register"
	RouteContact  = "/contact"

	RouteCourses      = "/courses"
	RouteCourseDetail = "/courses/:id"
	RouteCart         = "/cart"
	RouteCheckout     = "/checkout"

	RouteStudentHome      = "/student/home"
	RouteStudentDashboard = "/student/dashboard"
	RouteProfile          = "/student/profile"
	RouteSettings         = "/student/settings"
	RouteQuiz             = "/student/quiz"
	RouteAssignments      = "/assignments"
	RouteFlashcards       = "/flashcards"

	RouteTeacherHome    = "/teacher/home"
	RouteTeacherCourses = "/teacher/courses"
	RouteTeacherMetrics = "/teacher/metrics"

	RouteAdminDashboard = "/admin/dashboard"
	RouteAdminCourses   = "/admin/courses"
)

// allowedRoles is the per-route allow-list consulted by the guard. A route
// mapped to an empty list is an authentication-only gate; a route not listed
// here is public.
var allowedRoles = map[string][]session.Role{
	RouteCart:     {session.RoleStudent},
	RouteCheckout: {session.RoleStudent},

	RouteStudentHome:      {session.RoleStudent},
	RouteStudentDashboard: {session.RoleStudent},
	RouteQuiz:             {session.RoleStudent},

	RouteProfile:  {},
	RouteSettings: {},

	RouteAssignments: {session.RoleStudent, session.RoleTeacher},
	RouteFlashcards:  {session.RoleStudent, session.RoleTeacher},

	RouteTeacherHome:    {session.RoleTeacher},
	RouteTeacherCourses: {session.RoleTeacher},
	RouteTeacherMetrics: {session.RoleTeacher},

	RouteAdminDashboard: {session.RoleAdmin},
	RouteAdminCourses:   {session.RoleAdmin},
}

// RolesFor returns the allow-list for a route and whether the route is
// guarded at all.
func RolesFor(route string) ([]session.Role, bool) {
	roles, ok := allowedRoles[route]
	return roles, ok
}

// Home returns the landing route for a role after login.
func Home(role session.Role) string {
	switch role {
	case session.RoleAdmin:
		return RouteAdminDashboard
	case session.RoleTeacher:
		return RouteTeacherHome
	case session.RoleStudent:
		return RouteStudentHome
	default:
		return RouteHome
	}
}

// ShowChrome reports whether the navbar and footer are rendered on a path.
// Auth screens render bare.
func ShowChrome(path string) bool {
	switch path {
	case RouteLogin, RouteRegister:
		return false
	}
	return true
}
