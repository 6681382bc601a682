// Copyright (c) ZKAi-DEV
// SPDX-License-Identifier: BUSL-1.1

package i18n

import (
	"context"
	"net/http"
	"strings"
)

type userLanguageContextKey struct{}

var userLanguageContextKeyInstance = userLanguageContextKey{}

// Middleware records the preferred language of the request from the
// Accept-Language header.
func Middleware() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			lng := strings.TrimSpace(r.Header.Get("Accept-Language"))
			if lng != "" {
				ctx = context.WithValue(ctx, userLanguageContextKeyInstance, lng)
				r = r.WithContext(ctx)
			}

			next.ServeHTTP(w, r)
		})
	}
}

// UserLanguage returns the raw Accept-Language value of the request, if any.
func UserLanguage(ctx context.Context) string {
	if lng, ok := ctx.Value(userLanguageContextKeyInstance).(string); ok {
		return lng
	}
	return ""
}

// WithUserLanguage returns a context carrying lng as the user language.
func WithUserLanguage(ctx context.Context, lng string) context.Context {
	return context.WithValue(ctx, userLanguageContextKeyInstance, lng)
}

// LocaleFromContext matches the user language of ctx to a supported Locale.
func LocaleFromContext(ctx context.Context) Locale {
	return Match(UserLanguage(ctx))
}
