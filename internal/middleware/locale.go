package middleware

import (
	"net/http"

	"github.com/pkordes/guidebook/internal/i18n"
)

// NewLocaleHandler negotiates the response language from Accept-Language
// and stores it in the request context for i18n.FromContext.
func NewLocaleHandler() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tag := i18n.Match(r.Header.Get("Accept-Language"))
			w.Header().Set("Content-Language", tag.String())
			next.ServeHTTP(w, r.WithContext(i18n.WithLanguage(r.Context(), tag)))
		})
	}
}
