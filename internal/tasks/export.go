// Copyright (c) ZKAi-DEV
// SPDX-License-Identifier: BUSL-1.1

package tasks

import (
	"strings"

	"github.com/ZKAi-DEV/fokus-lebih-baik/internal/fokusdb"
)

const exportHeader = "Hari\tTanggal\tTask/Challenge\tStatus\n"

// Export renders rows as tab separated text with a header line.
func Export(rows []fokusdb.TaskRow) string {
	var sb strings.Builder
	sb.WriteString(exportHeader)
	for _, r := range rows {
		sb.WriteString(orDash(r.Day))
		sb.WriteByte('\t')
		sb.WriteString(orDash(r.Date))
		sb.WriteByte('\t')
		sb.WriteString(orDash(r.Task))
		sb.WriteByte('\t')
		sb.WriteString(orDash(r.Status))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// ExportFilename is the download name of the export of date.
func ExportFilename(date string) string {
	return "fokus-lebih-baik-" + date + ".txt"
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
