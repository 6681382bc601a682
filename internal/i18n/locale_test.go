package i18n

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestWeekday(t *testing.T) {
	tests := []struct {
		name   string
		locale Locale
		date   string
		want   string
	}{
		{name: "indonesian monday", locale: Indonesian, date: "2024-01-01", want: "Senin"},
		{name: "indonesian sunday", locale: Indonesian, date: "2024-01-07", want: "Minggu"},
		{name: "english friday", locale: English, date: "2024-01-05", want: "Friday"},
		{name: "unknown locale falls back", locale: Locale("ja"), date: "2024-01-03", want: "Rabu"},
		{name: "invalid date", locale: Indonesian, date: "01/01/2024", want: ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.locale.Weekday(tc.date); got != tc.want {
				t.Errorf("Weekday(%q) = %q, want %q", tc.date, got, tc.want)
			}
		})
	}
}

func TestMatch(t *testing.T) {
	tests := []struct {
		header string
		want   Locale
	}{
		{header: "", want: Indonesian},
		{header: "id-ID,id;q=0.9", want: Indonesian},
		{header: "en-US,en;q=0.9", want: English},
		{header: "ja-JP", want: Indonesian},
		{header: "not a tag;;", want: Indonesian},
	}
	for _, tc := range tests {
		if got := Match(tc.header); got != tc.want {
			t.Errorf("Match(%q) = %q, want %q", tc.header, got, tc.want)
		}
	}
}

func TestMiddleware(t *testing.T) {
	var got Locale
	h := Middleware()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		got = LocaleFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Language", "en-GB,en;q=0.8")
	h.ServeHTTP(httptest.NewRecorder(), req)
	if got != English {
		t.Errorf("locale = %q, want %q", got, English)
	}

	if l := LocaleFromContext(context.Background()); l != Indonesian {
		t.Errorf("default locale = %q, want %q", l, Indonesian)
	}
}
