// Package i18n negotiates the response language and renders the short,
// user-facing notices the API returns alongside error codes.
package i18n

import (
	"context"

	"golang.org/x/text/language"
)

// Supported lists the languages notices are translated into. The first is
// the fallback.
var Supported = []language.Tag{language.English, language.Spanish, language.French}

var matcher = language.NewMatcher(Supported)

// Match picks the best supported language for an Accept-Language header.
// Unparseable or empty headers yield English.
func Match(acceptLanguage string) language.Tag {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return Supported[0]
	}
	_, idx, _ := matcher.Match(tags...)
	return Supported[idx]
}

// IsSupported reports whether code (e.g. "es") names a supported language.
func IsSupported(code string) bool {
	tag, err := language.Parse(code)
	if err != nil {
		return false
	}
	for _, s := range Supported {
		if s == tag {
			return true
		}
	}
	return false
}

type contextKey struct{}

// WithLanguage returns a copy of ctx carrying tag.
func WithLanguage(ctx context.Context, tag language.Tag) context.Context {
	return context.WithValue(ctx, contextKey{}, tag)
}

// FromContext returns the negotiated language, or English if none was set.
func FromContext(ctx context.Context) language.Tag {
	if tag, ok := ctx.Value(contextKey{}).(language.Tag); ok {
		return tag
	}
	return Supported[0]
}
