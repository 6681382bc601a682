// Copyright (c) ZKAi-DEV
// SPDX-License-Identifier: BUSL-1.1

package tasks

import (
	"errors"
	"fmt"

	"github.com/ZKAi-DEV/fokus-lebih-baik/internal/fokusdb"
)

// ErrInvalidRow is returned for an out of range index or unknown field.
var ErrInvalidRow = errors.New("tasks: invalid row")

// Field is an editable column of a TaskRow.
type Field string

const (
	FieldTask   Field = "task"
	FieldStatus Field = "status"
)

func blankRow(date, day string) fokusdb.TaskRow {
	return fokusdb.TaskRow{Day: day, Date: date}
}

// AddRow returns rows with a blank row for date appended.
func AddRow(rows []fokusdb.TaskRow, date, day string) []fokusdb.TaskRow {
	out := make([]fokusdb.TaskRow, 0, len(rows)+1)
	out = append(out, rows...)
	return append(out, blankRow(date, day))
}

// RemoveRow returns rows without the row at index.
func RemoveRow(rows []fokusdb.TaskRow, index int) ([]fokusdb.TaskRow, error) {
	if index < 0 || index >= len(rows) {
		return nil, fmt.Errorf("%w: index %d out of range [0, %d)", ErrInvalidRow, index, len(rows))
	}
	out := make([]fokusdb.TaskRow, 0, len(rows)-1)
	out = append(out, rows[:index]...)
	return append(out, rows[index+1:]...), nil
}

// EditRow returns rows with field of the row at index set to value. The row is
// always restamped with date and day, whatever field changed.
func EditRow(rows []fokusdb.TaskRow, index int, field Field, value, date, day string) ([]fokusdb.TaskRow, error) {
	if index < 0 || index >= len(rows) {
		return nil, fmt.Errorf("%w: index %d out of range [0, %d)", ErrInvalidRow, index, len(rows))
	}
	out := make([]fokusdb.TaskRow, len(rows))
	copy(out, rows)
	row := &out[index]
	switch field {
	case FieldTask:
		row.Task = value
	case FieldStatus:
		row.Status = value
	default:
		return nil, fmt.Errorf("%w: unknown field %q", ErrInvalidRow, field)
	}
	row.Date = date
	row.Day = day
	return out, nil
}

// nonEmpty drops rows with neither task nor status.
func nonEmpty(rows []fokusdb.TaskRow) []fokusdb.TaskRow {
	var out []fokusdb.TaskRow
	for _, r := range rows {
		if !r.Empty() {
			out = append(out, r)
		}
	}
	return out
}
