package auth

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// SessionCookieName is the cookie carrying the signed session
	SessionCookieName = "growshop_user"
	// SessionTTL is how long a login stays valid
	SessionTTL = 7 * 24 * time.Hour
)

var (
	ErrNoSession      = errors.New("no session")
	ErrInvalidSession = errors.New("invalid session")
)

// Session identifies a logged in user
type Session struct {
	UserID string `json:"id"`
	Email  string `json:"email"`
}

type sessionClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// SessionManager issues and reads the session cookie. The cookie value is an
// HS256 JWT whose subject is the user id.
type SessionManager struct {
	secret []byte
	secure bool
	ttl    time.Duration
	now    func() time.Time
}

// NewSessionManager creates a session manager. secure marks cookies Secure,
// which is what production deployments behind TLS want.
func NewSessionManager(secret string, secure bool) *SessionManager {
	return &SessionManager{
		secret: []byte(secret),
		secure: secure,
		ttl:    SessionTTL,
		now:    time.Now,
	}
}

// Issue signs a token for the session
func (m *SessionManager) Issue(s Session) (string, error) {
	now := m.now()
	claims := sessionClaims{
		Email: s.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   s.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session: %w", err)
	}
	return signed, nil
}

// Parse validates a signed token and returns its session
func (m *SessionManager) Parse(tokenString string) (*Session, error) {
	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil || !token.Valid {
		return nil, ErrInvalidSession
	}
	if claims.Subject == "" {
		return nil, ErrInvalidSession
	}

	return &Session{UserID: claims.Subject, Email: claims.Email}, nil
}

// SetCookie writes the session cookie to the response
func (m *SessionManager) SetCookie(w http.ResponseWriter, s Session) error {
	token, err := m.Issue(s)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(m.ttl.Seconds()),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// ClearCookie expires the session cookie
func (m *SessionManager) ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// FromRequest reads the session cookie of r
func (m *SessionManager) FromRequest(r *http.Request) (*Session, error) {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil || cookie.Value == "" {
		return nil, ErrNoSession
	}
	return m.Parse(cookie.Value)
}
