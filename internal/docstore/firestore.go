// Copyright (c) ZKAi-DEV
// SPDX-License-Identifier: BUSL-1.1

package docstore

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/ZKAi-DEV/fokus-lebih-baik/internal/fokusdb"
)

// NewFirestore returns a Store backed by the given firestore client.
func NewFirestore(client *firestore.Client) *Firestore {
	return &Firestore{
		client: client,
	}
}

// Firestore stores documents under users/{uid}/{collection}/{docID}.
type Firestore struct {
	client *firestore.Client
}

func (f *Firestore) doc(ref Ref) *firestore.DocumentRef {
	return f.client.Collection(fokusdb.CollectionUsers).Doc(ref.UserID).Collection(ref.Collection).Doc(ref.DocID)
}

func (f *Firestore) Get(ctx context.Context, ref Ref, dst any) (bool, error) {
	snap, err := f.doc(ref).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("docstore: getting %s: %w", ref, err)
	}
	if err := snap.DataTo(dst); err != nil {
		return false, fmt.Errorf("docstore: decoding %s: %w", ref, err)
	}
	return true, nil
}

func (f *Firestore) Set(ctx context.Context, ref Ref, doc any) error {
	if _, err := f.doc(ref).Set(ctx, doc); err != nil {
		return fmt.Errorf("docstore: setting %s: %w", ref, err)
	}
	return nil
}

func (f *Firestore) Delete(ctx context.Context, ref Ref) error {
	if _, err := f.doc(ref).Delete(ctx); err != nil {
		return fmt.Errorf("docstore: deleting %s: %w", ref, err)
	}
	return nil
}

func (f *Firestore) List(ctx context.Context, userID string, collection string) ([]string, error) {
	col := f.client.Collection(fokusdb.CollectionUsers).Doc(userID).Collection(collection)
	return collectIDs(col.DocumentRefs(ctx))
}

// Users lists user documents including ones that only have subcollections,
// which is the usual case since nothing is written to users/{uid} itself.
func (f *Firestore) Users(ctx context.Context) ([]string, error) {
	return collectIDs(f.client.Collection(fokusdb.CollectionUsers).DocumentRefs(ctx))
}

func collectIDs(iter *firestore.DocumentRefIterator) ([]string, error) {
	var ids []string
	for {
		ref, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("docstore: listing documents: %w", err)
		}
		ids = append(ids, ref.ID)
	}
	return ids, nil
}
