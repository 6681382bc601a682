// Copyright (c) ZKAi-DEV
// SPDX-License-Identifier: BUSL-1.1

package tasks

import (
	"regexp"
	"strings"
)

// MaxChallenges is the number of challenges requested and kept per day.
const MaxChallenges = 5

var listMarker = regexp.MustCompile(`^[-*\d.\s]+`)

// ParseChallenges splits generated text into at most MaxChallenges lines,
// without list markers or blank lines.
func ParseChallenges(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(listMarker.ReplaceAllString(line, ""))
		if line == "" {
			continue
		}
		out = append(out, line)
		if len(out) == MaxChallenges {
			break
		}
	}
	return out
}
