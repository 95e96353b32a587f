package middleware

import (
	"context"
	"net/http"

	"SellerAgent/app/common/util"

	"github.com/zeromicro/go-zero/core/logx"
)

type SessionProvider interface {
	GetOrCreateSession(ctx context.Context) string
}

// SessionMiddleware resolves the shopper session before the handler runs,
// tags the request context and its logs with it and sets the session cookie.
type SessionMiddleware struct {
	Sessions SessionProvider
}

func NewSessionMiddleware(sessions SessionProvider) *SessionMiddleware {
	return &SessionMiddleware{
		Sessions: sessions,
	}
}

func (m *SessionMiddleware) Handle(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID := m.Sessions.GetOrCreateSession(r.Context())

		util.InjectSessionId2Ctx(r, sessionID)
		*r = *r.WithContext(logx.ContextWithFields(r.Context(), logx.Field("session_id", sessionID)))
		util.SetSessionCookie(w, sessionID)

		next(w, r)
	}
}
