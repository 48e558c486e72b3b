package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seekhobharat/client/apps"
	"github.com/seekhobharat/client/core"
	"github.com/seekhobharat/client/core/assignment"
	"github.com/seekhobharat/client/core/cart"
	"github.com/seekhobharat/client/core/course"
	"github.com/seekhobharat/client/core/dashboard"
	"github.com/seekhobharat/client/core/flashcard"
	"github.com/seekhobharat/client/core/guard"
	"github.com/seekhobharat/client/core/session"
	"github.com/seekhobharat/client/core/student"
	localstore "github.com/seekhobharat/client/storage/local"
	testutil "github.com/seekhobharat/client/tests"
)

func setup(t *testing.T) (*commandLine, *localstore.MemStore, *testutil.Backend) {
	t.Helper()
	backend := testutil.NewBackend()
	backend.Users["asha@example.com"] = testutil.StubUser{Password: "s3cret!pwd", Role: session.RoleStudent}
	backend.Courses = []course.Course{
		{ID: "c-1", Title: "Go Basics", Instructor: "R. Pike", Price: 499},
	}
	srv := backend.Start(t)

	storage := localstore.NewMemStore()
	api := testutil.NewClient(t, srv.URL)
	log := testutil.NewLogger()
	validate, translator := core.NewValidator()
	sessions := session.NewStore(api, storage, log, validate, translator)

	cli := &commandLine{
		conf:        &core.Config{APIBaseURL: srv.URL},
		sessions:    sessions,
		guard:       guard.New(sessions, log),
		courses:     course.NewService(api, log, validate, translator),
		cart:        cart.NewService(api, storage, log),
		students:    student.NewService(api, log, validate, translator),
		assignments: assignment.NewService(api, log, validate, translator),
		flashcards:  flashcard.NewService(api, log, validate, translator),
		dashboards:  dashboard.NewService(api, log),
		validate:    validate,
		translator:  translator,
	}
	return cli, storage, backend
}

func mockPassword(t *testing.T, pwd string) {
	t.Helper()
	orig := readPasswordFunc
	readPasswordFunc = func(int) ([]byte, error) { return []byte(pwd), nil }
	t.Cleanup(func() { readPasswordFunc = orig })
}

func login(t *testing.T, cli *commandLine) {
	t.Helper()
	mockPassword(t, "s3cret!pwd")
	require.NoError(t, cli.run([]string{"shell", "login", "-email", "asha@example.com"}))
}

func Test_commandLine_login(t *testing.T) {
	cli, storage, backend := setup(t)
	login(t, cli)

	token, ok := storage.Get(localstore.KeyToken)
	require.True(t, ok)
	assert.NotEmpty(t, token)

	// a second login is bounced by the inverse guard before any request
	require.NoError(t, cli.run([]string{"shell", "login", "-email", "asha@example.com"}))
	assert.Equal(t, 1, backend.Calls("POST /auth/login"))
}

func Test_commandLine_guardedCommand(t *testing.T) {
	t.Run("no session redirects", func(t *testing.T) {
		cli, _, backend := setup(t)

		assert.ErrorIs(t, cli.run([]string{"shell", "cart"}), errRedirected)
		assert.Zero(t, backend.Calls("GET /cart"))
	})

	t.Run("garbage token redirects and clears storage", func(t *testing.T) {
		cli, storage, backend := setup(t)
		require.NoError(t, storage.Set(localstore.KeyToken, "not-a-token"))
		require.NoError(t, storage.Set(localstore.KeyRole, "Student"))

		assert.ErrorIs(t, cli.run([]string{"shell", "cart"}), errRedirected)
		assert.Zero(t, backend.Calls("GET /cart"))
		_, ok := storage.Get(localstore.KeyToken)
		assert.False(t, ok)
	})
}

func Test_commandLine_checkout(t *testing.T) {
	valid := []string{
		"shell", "checkout",
		"-name", "Asha Verma", "-number", "123456789012", "-expiry", "12/27", "-cvv", "123",
	}

	t.Run("card check precedes the cart read", func(t *testing.T) {
		cli, _, backend := setup(t)
		login(t, cli)

		err := cli.run([]string{
			"shell", "checkout",
			"-name", "Asha Verma", "-number", "1234", "-expiry", "12/27", "-cvv", "123",
		})
		var vErr *core.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Zero(t, backend.Calls("GET /cart"))
		assert.Zero(t, backend.Calls("PUT /cart/update-enroll-courses"))
	})

	t.Run("empty cart refused before enrolling", func(t *testing.T) {
		cli, _, backend := setup(t)
		login(t, cli)

		require.EqualError(t, cli.run(valid), "cart is empty")
		assert.Equal(t, 1, backend.Calls("GET /cart"))
		assert.Zero(t, backend.Calls("PUT /cart/update-enroll-courses"))
	})

	t.Run("full sequence in program order", func(t *testing.T) {
		cli, _, backend := setup(t)
		login(t, cli)
		require.NoError(t, cli.run([]string{"shell", "cart-add", "-id", "c-1"}))

		require.NoError(t, cli.run(valid))
		assert.Equal(t, 1, backend.Calls("GET /cart"))
		assert.Equal(t, 1, backend.Calls("PUT /cart/update-enroll-courses"))
	})
}

func Test_parseAnswers(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    map[string]int
		wantErr string
	}{
		{name: "single", raw: "q1=0", want: map[string]int{"q1": 0}},
		{name: "several with spaces", raw: "q1=0, q2=2,q3=1", want: map[string]int{"q1": 0, "q2": 2, "q3": 1}},
		{name: "empty", raw: "", wantErr: "no answers given"},
		{name: "missing value", raw: "q1", wantErr: `bad answer "q1"`},
		{name: "non-numeric choice", raw: "q1=a", wantErr: `bad answer "q1=a"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseAnswers(tt.raw)
			if tt.wantErr != "" {
				require.EqualError(t, err, tt.wantErr)
				var argErr *apps.ArgumentError
				assert.ErrorAs(t, err, &argErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
