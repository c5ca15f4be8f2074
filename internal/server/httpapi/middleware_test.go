package httpapi

import (
	"bytes"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/questionboard/questionboard/internal/logging"
	"github.com/questionboard/questionboard/internal/server/auth"
	"github.com/questionboard/questionboard/internal/server/config"
	"github.com/questionboard/questionboard/internal/server/services"
)

func newBareServer(t *testing.T) (*Server, *sql.DB) {
	t.Helper()
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	cfg := &config.Config{
		SecretKey:                    "test-secret",
		AccessTokenValidityDuration:  time.Hour,
		RefreshTokenValidityDuration: time.Hour,
	}
	as := services.NewAuthService(db, &fakeRepoManager{u: newFakeUsersRepo(), r: newFakeRefreshRepo()}, cfg)
	return NewServer(":0", logging.NewZerologWriter(&bytes.Buffer{}), as), db
}

// probe records the principal seen by the innermost handler.
func probe(saw *bool, userID *int64) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if p, ok := auth.FromContext(r.Context()); ok {
			*saw = true
			*userID = p.UserID
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthenticate_NoHeaderIsAnonymous(t *testing.T) {
	s, _ := newBareServer(t)

	var saw bool
	var userID int64
	h := s.authenticate(probe(&saw, &userID))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/anything", nil))

	assert.Equal(t, http.StatusOK, rec.Code, "absence of a token must not reject the request")
	assert.False(t, saw)
}

func TestAuthenticate_ValidTokenBindsPrincipal(t *testing.T) {
	s, _ := newBareServer(t)

	tok, err := s.auth.Tokens().Issue(42)
	require.NoError(t, err)

	var saw bool
	var userID int64
	h := s.authenticate(probe(&saw, &userID))

	req := httptest.NewRequest(http.MethodGet, "/anything", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.True(t, saw)
	assert.Equal(t, int64(42), userID)
}

func TestAuthenticate_GarbageStaysAnonymous(t *testing.T) {
	s, _ := newBareServer(t)

	var saw bool
	var userID int64
	h := s.authenticate(probe(&saw, &userID))

	for _, header := range []string{
		"Bearer definitely-not-a-jwt",
		"Basic dXNlcjpwYXNz",
		"Bearer ",
		"Bearer eyJhbGciOiJub25lIn0.e30.",
	} {
		req := httptest.NewRequest(http.MethodGet, "/anything", nil)
		req.Header.Set("Authorization", header)
		rec := httptest.NewRecorder()
		saw, userID = false, 0
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code, "header %q must not produce an error", header)
		assert.False(t, saw, "header %q must not authenticate", header)
	}
}

func TestAuthenticate_ExpiredTokenStaysAnonymous(t *testing.T) {
	s, _ := newBareServer(t)

	expired := auth.NewTokenService([]byte("test-secret"), -time.Second)
	tok, err := expired.Issue(42)
	require.NoError(t, err)

	var saw bool
	var userID int64
	h := s.authenticate(probe(&saw, &userID))

	req := httptest.NewRequest(http.MethodGet, "/anything", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, saw)
}

func TestRecovery_ConvertsPanicTo500(t *testing.T) {
	s, _ := newBareServer(t)

	h := s.recovery(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/anything", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
