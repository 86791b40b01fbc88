package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkordes/guidebook/internal/auth"
	"github.com/pkordes/guidebook/internal/domain"
	"github.com/pkordes/guidebook/internal/i18n"
)

// SessionResolver turns a session token into the signed-in identity.
// *service.AuthService satisfies it.
type SessionResolver interface {
	SessionUser(ctx context.Context, token string) (auth.Session, error)
}

// NewAuthenticator returns a middleware that resolves the request's session
// token, taken from the session cookie or an "Authorization: Bearer" header,
// and attaches the resulting auth.Session to the request context.
// Requests without a usable token continue anonymously; nothing is rejected here.
func NewAuthenticator(resolver SessionResolver, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := sessionToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}
			sess, err := resolver.SessionUser(r.Context(), token)
			if err != nil {
				if !errors.Is(err, domain.ErrUnauthenticated) {
					log.WarnContext(r.Context(), "session lookup failed", "error", err)
				}
				next.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r.WithContext(auth.WithSession(r.Context(), sess)))
		})
	}
}

// RequireAuth rejects anonymous requests. Browsers asking for HTML are
// redirected (303) to signInPath with the original path in "next"; API
// clients get 401 with the same sign-in URL in the body.
func RequireAuth(signInPath string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := auth.FromContext(r.Context()); !ok {
				rejectAnonymous(w, r, signInPath)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdmin behaves like RequireAuth and additionally answers 403 to
// signed-in users who are not admins.
func RequireAdmin(signInPath string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, ok := auth.FromContext(r.Context())
			if !ok {
				rejectAnonymous(w, r, signInPath)
				return
			}
			if !sess.User.IsAdmin() {
				lang := i18n.FromContext(r.Context())
				writeError(w, r, http.StatusForbidden, "forbidden", i18n.Notice(lang, i18n.AdminRequired))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func rejectAnonymous(w http.ResponseWriter, r *http.Request, signInPath string) {
	target := signInURL(signInPath, r)
	if wantsHTML(r) {
		http.Redirect(w, r, target, http.StatusSeeOther)
		return
	}
	lang := i18n.FromContext(r.Context())
	writeErrorBody(w, http.StatusUnauthorized, errorResponse{
		Error:     errorDetail{Code: "unauthenticated", Message: i18n.Notice(lang, i18n.SignInRequired)},
		SignInURL: target,
	})
}

func signInURL(signInPath string, r *http.Request) string {
	return signInPath + "?" + url.Values{"next": {r.URL.RequestURI()}}.Encode()
}

func wantsHTML(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "text/html")
}

func sessionToken(r *http.Request) string {
	if c, err := r.Cookie(auth.SessionCookieName); err == nil && c.Value != "" {
		return c.Value
	}
	if h := r.Header.Get("Authorization"); len(h) > len("Bearer ") && strings.EqualFold(h[:len("Bearer ")], "Bearer ") {
		return strings.TrimSpace(h[len("Bearer "):])
	}
	return ""
}
