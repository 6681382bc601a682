// Copyright (c) ZKAi-DEV
// SPDX-License-Identifier: BUSL-1.1

package i18n

import (
	"time"

	"golang.org/x/text/language"
)

// Locale is a language the service can name weekdays in.
type Locale string

const (
	// Indonesian is the default locale.
	Indonesian Locale = "id"
	English    Locale = "en"
)

// Order matters, the first tag is the fallback of the matcher.
var supported = []language.Tag{language.Indonesian, language.English}

var matcher = language.NewMatcher(supported)

var weekdays = map[Locale][7]string{
	Indonesian: {"Minggu", "Senin", "Selasa", "Rabu", "Kamis", "Jumat", "Sabtu"},
	English:    {"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
}

// Match picks the supported Locale for an Accept-Language value.
func Match(acceptLanguage string) Locale {
	if acceptLanguage == "" {
		return Indonesian
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return Indonesian
	}
	_, idx, _ := matcher.Match(tags...)
	if supported[idx] == language.English {
		return English
	}
	return Indonesian
}

// Weekday returns the weekday name of a YYYY-MM-DD date, or "" when the date
// does not parse. The date is interpreted as a calendar day so the result does
// not depend on the server time zone.
func (l Locale) Weekday(date string) string {
	t, err := time.Parse(time.DateOnly, date)
	if err != nil {
		return ""
	}
	names, ok := weekdays[l]
	if !ok {
		names = weekdays[Indonesian]
	}
	return names[t.Weekday()]
}
