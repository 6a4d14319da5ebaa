package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/growshop/internal/user/repository"
	"github.com/tair/growshop/internal/user/usecase/command"
	"github.com/tair/growshop/internal/user/usecase/query"
	"github.com/tair/growshop/pkg/auth"
	"github.com/tair/growshop/pkg/jsonstore"
)

type testServer struct {
	handler  http.Handler
	users    *UserHandler
	sessions *auth.SessionManager
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	repo := repository.NewJSONUserRepository(jsonstore.New(t.TempDir()))
	sessions := auth.NewSessionManager("test-secret", false)

	h := NewUserHandler(
		command.NewRegisterUserHandler(repo),
		command.NewLoginUserHandler(repo),
		query.NewGetUserHandler(repo),
		sessions,
		prometheus.NewRegistry(),
	)

	router := mux.NewRouter()
	h.RegisterRoutes(router)
	return &testServer{handler: sessions.OptionalSession(router), users: h, sessions: sessions}
}

func (s *testServer) do(method, path, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func sessionCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == auth.SessionCookieName {
			return c
		}
	}
	return nil
}

func TestRegister(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodPost, "/api/auth/register", `{"email":"  Ana@Example.com ","name":" Ana ","password":"secret1"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	user := decode(t, rec)["user"].(map[string]interface{})
	assert.Equal(t, "u1", user["id"])
	assert.Equal(t, "ana@example.com", user["email"])
	assert.Equal(t, "Ana", user["name"])
	assert.Equal(t, true, user["ageVerified"])
	assert.NotContains(t, user, "passwordHash")
	assert.Nil(t, sessionCookie(rec))

	tests := []struct {
		name   string
		body   string
		status int
	}{
		{"missing name", `{"email":"b@example.com","password":"secret1"}`, http.StatusBadRequest},
		{"missing email", `{"name":"B","password":"secret1"}`, http.StatusBadRequest},
		{"short password", `{"email":"b@example.com","name":"B","password":"12345"}`, http.StatusBadRequest},
		{"duplicate email", `{"email":"ANA@example.com","name":"Other","password":"secret1"}`, http.StatusConflict},
		{"malformed body", `{`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := s.do(http.MethodPost, "/api/auth/register", tt.body)
			assert.Equal(t, tt.status, rec.Code)
			assert.NotEmpty(t, decode(t, rec)["error"])
		})
	}
}

func TestLoginLogoutMe(t *testing.T) {
	s := newTestServer(t)
	require.Equal(t, http.StatusOK,
		s.do(http.MethodPost, "/api/auth/register", `{"email":"ana@example.com","name":"Ana","password":"secret1"}`).Code)

	t.Run("rejections", func(t *testing.T) {
		assert.Equal(t, http.StatusBadRequest, s.do(http.MethodPost, "/api/auth/login", `{"email":"ana@example.com"}`).Code)
		assert.Equal(t, http.StatusUnauthorized, s.do(http.MethodPost, "/api/auth/login", `{"email":"ana@example.com","password":"wrong"}`).Code)
		assert.Equal(t, http.StatusUnauthorized, s.do(http.MethodPost, "/api/auth/login", `{"email":"nobody@example.com","password":"secret1"}`).Code)
		assert.Equal(t, 2.0, testutil.ToFloat64(s.users.logins.WithLabelValues("rejected")))
	})

	rec := s.do(http.MethodPost, "/api/auth/login", `{"email":"ANA@example.com","password":"secret1"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "u1", decode(t, rec)["user"].(map[string]interface{})["id"])

	cookie := sessionCookie(rec)
	require.NotNil(t, cookie)
	assert.True(t, cookie.HttpOnly)

	t.Run("me with session", func(t *testing.T) {
		rec := s.do(http.MethodGet, "/api/auth/me", "", cookie)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "ana@example.com", decode(t, rec)["user"].(map[string]interface{})["email"])
	})

	t.Run("me without session", func(t *testing.T) {
		rec := s.do(http.MethodGet, "/api/auth/me", "")
		require.Equal(t, http.StatusOK, rec.Code)
		body := decode(t, rec)
		assert.Contains(t, body, "user")
		assert.Nil(t, body["user"])
	})

	t.Run("me for unknown user", func(t *testing.T) {
		token, err := s.sessions.Issue(auth.Session{UserID: "u42", Email: "ghost@example.com"})
		require.NoError(t, err)
		rec := s.do(http.MethodGet, "/api/auth/me", "", &http.Cookie{Name: auth.SessionCookieName, Value: token})
		assert.Nil(t, decode(t, rec)["user"])
	})

	t.Run("logout clears cookie", func(t *testing.T) {
		rec := s.do(http.MethodPost, "/api/auth/logout", "", cookie)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, true, decode(t, rec)["ok"])

		cleared := sessionCookie(rec)
		require.NotNil(t, cleared)
		assert.Less(t, cleared.MaxAge, 0)
	})
}

func TestRegisterLongPassword(t *testing.T) {
	s := newTestServer(t)
	password := strings.Repeat("p", 80)

	rec := s.do(http.MethodPost, "/api/auth/register", `{"email":"ana@example.com","name":"Ana","password":"`+password+`"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = s.do(http.MethodPost, "/api/auth/login", `{"email":"ana@example.com","password":"`+password+`"}`)
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}
