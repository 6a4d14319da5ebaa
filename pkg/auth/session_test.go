package auth

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)

	assert.NotEqual(t, "secret123", hash)
	assert.True(t, CheckPassword(hash, "secret123"))
	assert.False(t, CheckPassword(hash, "wrong"))
}

func TestPasswordHashingLongPassword(t *testing.T) {
	long := strings.Repeat("a", 72)
	hash, err := HashPassword(long + "tail")
	require.NoError(t, err)

	assert.True(t, CheckPassword(hash, long+"tail"))
	assert.True(t, CheckPassword(hash, long+"other"))
	assert.False(t, CheckPassword(hash, long[:71]))
}

func TestSessionManager(t *testing.T) {
	t.Run("issue and parse round trip", func(t *testing.T) {
		m := NewSessionManager("test-secret", false)

		token, err := m.Issue(Session{UserID: "u1", Email: "ana@example.com"})
		require.NoError(t, err)

		s, err := m.Parse(token)
		require.NoError(t, err)
		assert.Equal(t, "u1", s.UserID)
		assert.Equal(t, "ana@example.com", s.Email)
	})

	t.Run("rejects token signed with another secret", func(t *testing.T) {
		token, err := NewSessionManager("one", false).Issue(Session{UserID: "u1"})
		require.NoError(t, err)

		_, err = NewSessionManager("two", false).Parse(token)
		assert.ErrorIs(t, err, ErrInvalidSession)
	})

	t.Run("rejects expired token", func(t *testing.T) {
		m := NewSessionManager("test-secret", false)
		issued := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		m.now = func() time.Time { return issued }

		token, err := m.Issue(Session{UserID: "u1"})
		require.NoError(t, err)

		m.now = func() time.Time { return issued.Add(SessionTTL + time.Minute) }
		_, err = m.Parse(token)
		assert.ErrorIs(t, err, ErrInvalidSession)
	})

	t.Run("cookie attributes", func(t *testing.T) {
		m := NewSessionManager("test-secret", true)
		rec := httptest.NewRecorder()

		require.NoError(t, m.SetCookie(rec, Session{UserID: "u2", Email: "b@example.com"}))

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		c := cookies[0]
		assert.Equal(t, SessionCookieName, c.Name)
		assert.Equal(t, "/", c.Path)
		assert.Equal(t, 7*24*60*60, c.MaxAge)
		assert.True(t, c.HttpOnly)
		assert.True(t, c.Secure)
		assert.Equal(t, http.SameSiteLaxMode, c.SameSite)
	})

	t.Run("clear cookie expires it", func(t *testing.T) {
		m := NewSessionManager("test-secret", false)
		rec := httptest.NewRecorder()

		m.ClearCookie(rec)

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, "", cookies[0].Value)
		assert.True(t, cookies[0].MaxAge < 0)
	})
}

func TestOptionalSession(t *testing.T) {
	m := NewSessionManager("test-secret", false)

	var got *Session
	handler := m.OptionalSession(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = SessionFromContext(r.Context())
	}))

	t.Run("no cookie", func(t *testing.T) {
		got = nil
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Nil(t, got)
	})

	t.Run("valid cookie", func(t *testing.T) {
		got = nil
		token, err := m.Issue(Session{UserID: "u3", Email: "c@example.com"})
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})
		handler.ServeHTTP(httptest.NewRecorder(), req)

		require.NotNil(t, got)
		assert.Equal(t, "u3", got.UserID)
	})

	t.Run("garbage cookie is ignored", func(t *testing.T) {
		got = nil
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "not-a-token"})
		handler.ServeHTTP(httptest.NewRecorder(), req)

		assert.Nil(t, got)
	})
}
