// Package testutil hosts the stub SeekhoBharat backend that package tests
// run against: an echo server speaking the real API's envelope and routes,
// with per-endpoint failure injection and call recording.
package testutil

import (
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/seekhobharat/client/core"
	"github.com/seekhobharat/client/core/course"
	"github.com/seekhobharat/client/core/session"
	logsvc "github.com/seekhobharat/client/services/logger"
	"github.com/seekhobharat/client/services/rest"
)

var tokenSecret = []byte("test-secret")

// MakeToken returns a signed HS256 token whose payload carries the given
// role claim, shaped like what the real backend issues.
func MakeToken(role session.Role, email string) string {
	claims := jwt.MapClaims{
		"id":    "u-1",
		"email": email,
		"role":  string(role),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	ss, err := token.SignedString(tokenSecret)
	if err != nil {
		panic(err)
	}
	return ss
}

// NewLogger returns a silent app logger for tests.
func NewLogger() core.Logger {
	return logsvc.NewConsoleLogger(log.New(io.Discard, "", 0), false)
}

// NewClient builds a rest client pointed at the stub server.
func NewClient(t *testing.T, baseURL string) *rest.Client {
	t.Helper()
	api, err := rest.NewClient(&core.Config{APIBaseURL: baseURL}, NewLogger())
	if err != nil {
		t.Fatalf("NewClient() failed: %v", err)
	}
	return api
}

type (
	// StubUser is a login fixture.
	StubUser struct {
		Password string
		Role     session.Role
	}

	// Backend is the stub API. Fixture fields may be set before Start;
	// FailWith forces "METHOD /path" to answer {success:false, message}.
	Backend struct {
		*echo.Echo

		mu        sync.Mutex
		calls     map[string]int
		Users     map[string]StubUser // keyed by email
		Courses   []course.Course
		Cart      []map[string]interface{}
		Profile   map[string]interface{}
		Dashboard map[string]interface{}
		FailWith  map[string]string
	}
)

func NewBackend() *Backend {
	b := &Backend{
		Echo:      echo.New(),
		calls:     make(map[string]int),
		Users:     make(map[string]StubUser),
		Profile:   map[string]interface{}{"id": "u-1", "firstName": "Asha", "lastName": "Verma", "email": "asha@example.com"},
		Dashboard: map[string]interface{}{"enrolledCourses": 2, "completedTopics": 7, "hoursSpent": 3.5},
		FailWith:  make(map[string]string),
	}
	b.HideBanner = true
	b.register()
	return b
}

// Start serves the stub over httptest and tears it down with the test.
func (b *Backend) Start(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(b)
	t.Cleanup(srv.Close)
	return srv
}

// Calls returns how many times "METHOD /path" was hit.
func (b *Backend) Calls(key string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.calls[key]
}

func (b *Backend) register() {
	b.Use(b.recordAndInject)

	b.POST("/auth/login", b.login)
	b.POST("/auth/register", b.registerAccount)

	b.GET("/courses", func(c echo.Context) error { return ok(c, b.Courses) })
	b.GET("/courses/search", b.searchCourses)
	b.GET("/student/courses/:id", b.courseDetail)
	b.GET("/teacher/courses", func(c echo.Context) error { return ok(c, b.Courses) })
	b.POST("/teacher/courses", b.createCourse)
	b.PUT("/teacher/courses/:id", b.createCourse)
	b.DELETE("/teacher/courses/:id", func(c echo.Context) error { return ok(c, nil) })
	b.GET("/admin/courses", func(c echo.Context) error { return ok(c, b.Courses) })
	b.DELETE("/admin/courses/:id", func(c echo.Context) error { return ok(c, nil) })

	b.GET("/cart", func(c echo.Context) error { return ok(c, b.cart()) })
	b.POST("/cart/add/:id", b.cartAdd)
	b.DELETE("/cart/remove/:id", b.cartRemove)
	b.PUT("/cart/update-enroll-courses", func(c echo.Context) error { return ok(c, nil) })

	b.GET("/student/profile", func(c echo.Context) error { return ok(c, b.profile()) })
	b.PUT("/student/profile", b.updateProfile)
	b.GET("/student/dashboard", func(c echo.Context) error { return ok(c, b.Dashboard) })
	b.GET("/student/streak", func(c echo.Context) error {
		return ok(c, map[string]interface{}{"current": 4, "longest": 11})
	})
	b.POST("/student/quiz_submit", func(c echo.Context) error {
		return ok(c, map[string]interface{}{"score": 2, "total": 3, "passed": true})
	})

	b.GET("/assignments", func(c echo.Context) error { return ok(c, []map[string]interface{}{}) })
	b.GET("/assignments/:id", func(c echo.Context) error {
		return ok(c, map[string]interface{}{"id": c.Param("id"), "title": "Essay"})
	})
	b.POST("/assignments", b.echoBody)
	b.POST("/assignments/:id/submit", func(c echo.Context) error {
		return ok(c, map[string]interface{}{"id": "sub-1", "assignmentId": c.Param("id")})
	})
	b.GET("/assignments/:id/submissions", func(c echo.Context) error { return ok(c, []map[string]interface{}{}) })
	b.POST("/assignments/:id/grade", func(c echo.Context) error { return ok(c, nil) })

	b.GET("/api/flashcards/:courseId", func(c echo.Context) error {
		return ok(c, []map[string]interface{}{
			{"id": "f-1", "courseId": c.Param("courseId"), "front": "Q", "back": "A"},
		})
	})
	b.POST("/api/flashcards", b.echoBody)
	b.POST("/api/flashcards/:id/review", func(c echo.Context) error { return ok(c, nil) })

	b.GET("/teacher/metrics", func(c echo.Context) error {
		return ok(c, map[string]interface{}{"totalCourses": 3, "totalStudents": 42, "totalIncome": 90000})
	})
	b.GET("/admin/dashboard", func(c echo.Context) error {
		return ok(c, map[string]interface{}{"totalUsers": 100, "totalCourses": 12, "pendingCourses": 2})
	})
}

// recordAndInject counts every call and short-circuits injected failures.
func (b *Backend) recordAndInject(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		key := c.Request().Method + " " + c.Request().URL.Path
		b.mu.Lock()
		b.calls[key]++
		msg, failed := b.FailWith[key]
		b.mu.Unlock()
		if failed {
			return fail(c, http.StatusBadRequest, msg)
		}
		return next(c)
	}
}

// Handlers

func (b *Backend) login(c echo.Context) error {
	var creds struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind(&creds); err != nil {
		return fail(c, http.StatusBadRequest, "bad payload")
	}
	usr, ok := b.Users[creds.Email]
	if !ok || usr.Password != creds.Password {
		return fail(c, http.StatusUnauthorized, "invalid credentials")
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"token":   MakeToken(usr.Role, creds.Email),
		"data":    echo.Map{"role": usr.Role},
	})
}

func (b *Backend) registerAccount(c echo.Context) error {
	var acct struct {
		Email    string       `json:"email"`
		Password string       `json:"password"`
		Type     session.Role `json:"accountType"`
	}
	if err := c.Bind(&acct); err != nil {
		return fail(c, http.StatusBadRequest, "bad payload")
	}
	if _, exists := b.Users[acct.Email]; exists {
		return fail(c, http.StatusConflict, "email already registered")
	}
	b.mu.Lock()
	b.Users[acct.Email] = StubUser{Password: acct.Password, Role: acct.Type}
	b.mu.Unlock()
	return ok(c, nil)
}

func (b *Backend) searchCourses(c echo.Context) error {
	query := c.QueryParam("query")
	matched := make([]course.Course, 0)
	for _, crs := range b.Courses {
		if query == "" || contains(crs.Title, query) {
			matched = append(matched, crs)
		}
	}
	return ok(c, matched)
}

func (b *Backend) courseDetail(c echo.Context) error {
	for _, crs := range b.Courses {
		if crs.ID == c.Param("id") {
			return ok(c, crs)
		}
	}
	return fail(c, http.StatusNotFound, "course not found")
}

func (b *Backend) createCourse(c echo.Context) error {
	var in map[string]interface{}
	if err := c.Bind(&in); err != nil {
		return fail(c, http.StatusBadRequest, "bad payload")
	}
	in["id"] = "c-new"
	return ok(c, in)
}

func (b *Backend) cartAdd(c echo.Context) error {
	id := c.Param("id")
	for _, crs := range b.Courses {
		if crs.ID == id {
			entry := map[string]interface{}{
				"id": crs.ID, "title": crs.Title, "instructor": crs.Instructor,
				"price": crs.Price, "thumbnail": crs.Thumbnail,
			}
			b.mu.Lock()
			b.Cart = append(b.Cart, entry)
			b.mu.Unlock()
			return ok(c, entry)
		}
	}
	return fail(c, http.StatusNotFound, "course not found")
}

func (b *Backend) cartRemove(c echo.Context) error {
	id := c.Param("id")
	b.mu.Lock()
	kept := b.Cart[:0]
	for _, entry := range b.Cart {
		if entry["id"] != id {
			kept = append(kept, entry)
		}
	}
	b.Cart = kept
	b.mu.Unlock()
	return ok(c, nil)
}

func (b *Backend) updateProfile(c echo.Context) error {
	var in map[string]interface{}
	if err := c.Bind(&in); err != nil {
		return fail(c, http.StatusBadRequest, "bad payload")
	}
	b.mu.Lock()
	for k, v := range in {
		b.Profile[k] = v
	}
	prof := b.Profile
	b.mu.Unlock()
	return ok(c, prof)
}

func (b *Backend) echoBody(c echo.Context) error {
	var in map[string]interface{}
	if err := c.Bind(&in); err != nil {
		return fail(c, http.StatusBadRequest, "bad payload")
	}
	in["id"] = "new"
	return ok(c, in)
}

func (b *Backend) cart() []map[string]interface{} {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]map[string]interface{}{}, b.Cart...)
}

func (b *Backend) profile() map[string]interface{} {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.Profile
}

func ok(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": data})
}

func fail(c echo.Context, status int, msg string) error {
	return c.JSON(status, echo.Map{"success": false, "message": msg})
}

func contains(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
