package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kyraymege/bookmarkd/internal/client/api"
	"github.com/kyraymege/bookmarkd/internal/client/storage"
)

// ---- fakes ----

type fakeAPI struct {
	authenticated bool

	signupErr error
	signinErr error

	me    *api.User
	meErr error

	list    []api.Bookmark
	listErr error

	created   *api.Bookmark
	createErr error

	deletedID string
	deleteErr error
}

func (f *fakeAPI) IsAuthenticated() bool { return f.authenticated }
func (f *fakeAPI) Logout()               { f.authenticated = false }

func (f *fakeAPI) Signup(ctx context.Context, email string, password []byte) error {
	if f.signupErr == nil {
		f.authenticated = true
	}
	return f.signupErr
}

func (f *fakeAPI) Signin(ctx context.Context, email string, password []byte) error {
	if f.signinErr == nil {
		f.authenticated = true
	}
	return f.signinErr
}

func (f *fakeAPI) Me(ctx context.Context) (*api.User, error) {
	return f.me, f.meErr
}

func (f *fakeAPI) ListBookmarks(ctx context.Context) ([]api.Bookmark, error) {
	return f.list, f.listErr
}

func (f *fakeAPI) CreateBookmark(ctx context.Context, title, link, description string) (*api.Bookmark, error) {
	return f.created, f.createErr
}

func (f *fakeAPI) DeleteBookmark(ctx context.Context, id string) error {
	f.deletedID = id
	return f.deleteErr
}

// ---- helpers ----

func newTestApp(t *testing.T, f *fakeAPI) *App {
	t.Helper()

	cache, err := storage.Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = cache.Close() })

	return &App{
		api:    f,
		cache:  cache,
		reader: bufio.NewReader(strings.NewReader("")),
	}
}

func stubInput(t *testing.T, lines []string, password string) {
	t.Helper()

	origText := getSimpleText
	origPassword := getPassword
	t.Cleanup(func() {
		getSimpleText = origText
		getPassword = origPassword
	})

	i := 0
	getSimpleText = func(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
		if i >= len(lines) {
			return "", io.EOF
		}
		line := lines[i]
		i++
		return line, nil
	}
	getPassword = func(w io.Writer) ([]byte, error) {
		return []byte(password), nil
	}
}

// ---- tests ----

func TestRegister(t *testing.T) {
	t.Run("success authenticates the session", func(t *testing.T) {
		f := &fakeAPI{}
		a := newTestApp(t, f)
		stubInput(t, []string{"alice@example.com"}, "pass123")

		require.NoError(t, a.Register(context.Background()))
		assert.True(t, a.isLoggedIn())
		assert.Equal(t, "alice@example.com", a.userName)
	})

	t.Run("failure leaves the session anonymous", func(t *testing.T) {
		f := &fakeAPI{signupErr: errors.New("email is already taken")}
		a := newTestApp(t, f)
		stubInput(t, []string{"alice@example.com"}, "pass123")

		require.Error(t, a.Register(context.Background()))
		assert.False(t, a.isLoggedIn())
		assert.Empty(t, a.userName)
	})
}

func TestLogin(t *testing.T) {
	f := &fakeAPI{}
	a := newTestApp(t, f)
	stubInput(t, []string{"alice@example.com"}, "pass123")

	require.NoError(t, a.Login(context.Background()))
	assert.True(t, a.isLoggedIn())

	require.NoError(t, a.Logout(context.Background()))
	assert.False(t, a.isLoggedIn())
	assert.Empty(t, a.userName)
}

func TestList(t *testing.T) {
	t.Run("success refreshes the cache", func(t *testing.T) {
		f := &fakeAPI{list: []api.Bookmark{{ID: "b1", Title: "Go"}}}
		a := newTestApp(t, f)

		require.NoError(t, a.List(context.Background()))

		cached, err := a.cache.List(context.Background())
		require.NoError(t, err)
		require.Len(t, cached, 1)
		assert.Equal(t, "b1", cached[0].ID)
	})

	t.Run("unavailable server falls back to the cache", func(t *testing.T) {
		f := &fakeAPI{listErr: api.ErrUnavailable}
		a := newTestApp(t, f)
		require.NoError(t, a.cache.Replace(context.Background(), []api.Bookmark{{ID: "b1", Title: "Go"}}))

		assert.NoError(t, a.List(context.Background()))
	})

	t.Run("other errors are returned", func(t *testing.T) {
		f := &fakeAPI{listErr: errors.New("boom")}
		a := newTestApp(t, f)

		assert.Error(t, a.List(context.Background()))
	})
}

func TestAdd(t *testing.T) {
	f := &fakeAPI{created: &api.Bookmark{ID: "b1", Title: "Go"}}
	a := newTestApp(t, f)
	stubInput(t, []string{"Go", "https://go.dev", "the language"}, "")

	assert.NoError(t, a.Add(context.Background()))
}

func TestRemove(t *testing.T) {
	f := &fakeAPI{}
	a := newTestApp(t, f)
	stubInput(t, []string{"b1"}, "")

	require.NoError(t, a.Remove(context.Background()))
	assert.Equal(t, "b1", f.deletedID)
}

func TestWhoAmI(t *testing.T) {
	f := &fakeAPI{me: &api.User{ID: "u1", Email: "alice@example.com"}}
	a := newTestApp(t, f)

	assert.NoError(t, a.WhoAmI(context.Background()))
}
