// Copyright (c) ZKAi-DEV
// SPDX-License-Identifier: BUSL-1.1

package llm

import (
	"fmt"

	"github.com/ZKAi-DEV/fokus-lebih-baik/internal/i18n"
)

// ChallengePrompt asks for the daily challenges of date, one per line.
func ChallengePrompt(locale i18n.Locale, date string) string {
	if locale == i18n.English {
		return fmt.Sprintf(challengePromptEN, date)
	}
	return fmt.Sprintf(challengePromptID, date)
}

const challengePromptID = `Buatkan 5 challenge harian bertema disiplin dan pengembangan diri untuk tanggal %s, singkat, actionable, dan berbeda dari hari lain. Format: satu challenge per baris, tanpa penomoran.`

const challengePromptEN = `Create 5 daily challenges about discipline and self-improvement for the date %s. Keep them short, actionable, and different from other days. Format: one challenge per line, without numbering.`
