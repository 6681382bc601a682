// Copyright (c) ZKAi-DEV
// SPDX-License-Identifier: BUSL-1.1

// Package docstore addresses per-user documents as (userID, collection, docID).
package docstore

import (
	"context"
)

// Ref identifies a document belonging to a user.
type Ref struct {
	UserID     string
	Collection string
	DocID      string
}

func (r Ref) String() string {
	return "users/" + r.UserID + "/" + r.Collection + "/" + r.DocID
}

// Store is a remote document database. Writes overwrite the whole document.
type Store interface {
	// Get decodes the document into dst. It returns false without error when
	// the document does not exist.
	Get(ctx context.Context, ref Ref, dst any) (bool, error)

	// Set overwrites the document with doc.
	Set(ctx context.Context, ref Ref, doc any) error

	// Delete removes the document. Deleting a missing document is not an error.
	Delete(ctx context.Context, ref Ref) error

	// List returns the IDs of the documents in a collection of the user.
	List(ctx context.Context, userID string, collection string) ([]string, error)

	// Users returns the IDs of all users that have data.
	Users(ctx context.Context) ([]string, error)
}
