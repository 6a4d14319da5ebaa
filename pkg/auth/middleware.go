package auth

import (
	"context"
	"net/http"

	"github.com/tair/growshop/pkg/logger"
)

type contextKey string

const sessionKey contextKey = "session"

// OptionalSession resolves the session cookie if present and stores it in the
// request context. Requests without a valid session pass through untouched.
func (m *SessionManager) OptionalSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, err := m.FromRequest(r)
		if err == nil {
			logger.Debug(r.Context()).
				Str("user_id", session.UserID).
				Msg("Session resolved")
			r = r.WithContext(WithSession(r.Context(), session))
		} else if err == ErrInvalidSession {
			logger.Warn(r.Context()).Msg("Ignoring invalid session cookie")
		}

		next.ServeHTTP(w, r)
	})
}

// WithSession returns a copy of ctx carrying s
func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionKey, s)
}

// SessionFromContext returns the session stored by OptionalSession
func SessionFromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(sessionKey).(*Session)
	return s, ok && s != nil
}
