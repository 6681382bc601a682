// Copyright (c) ZKAi-DEV
// SPDX-License-Identifier: BUSL-1.1

package fokusdb

// TaskRow is one challenge row of a day. The firestore field names match the
// documents written by the web client.
type TaskRow struct {
	// Task is the free-form challenge text.
	Task string `firestore:"task" json:"task"`

	// Status is the free-form status, e.g. selesai, proses.
	Status string `firestore:"status" json:"status"`

	// Day is the localized weekday name derived from Date.
	Day string `firestore:"hari" json:"day"`

	// Date is the day the row belongs to, formatted YYYY-MM-DD.
	Date string `firestore:"tanggal" json:"date"`
}

// Empty returns whether the row has neither a task nor a status.
func (r TaskRow) Empty() bool {
	return r.Task == "" && r.Status == ""
}

// TaskDocument holds the rows of a single day. Documents are stored in the
// tasks collection of a user with the ID YYYY-mm-dd.
type TaskDocument struct {
	// Rows are the rows of the day in display order.
	Rows []TaskRow `firestore:"rows" json:"rows"`
}
