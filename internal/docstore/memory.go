// Copyright (c) ZKAi-DEV
// SPDX-License-Identifier: BUSL-1.1

package docstore

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"sync"
)

// NewMemory returns an empty in-process Store, used by tests and local runs.
func NewMemory() *Memory {
	return &Memory{
		docs: map[Ref][]byte{},
	}
}

// Memory keeps documents encoded as JSON so callers never share memory with
// the stored copy.
type Memory struct {
	mu   sync.Mutex
	docs map[Ref][]byte

	// Err, when set, is returned from every operation.
	Err error
}

func (m *Memory) Get(_ context.Context, ref Ref, dst any) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return false, m.Err
	}
	b, ok := m.docs[ref]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(b, dst); err != nil {
		return false, fmt.Errorf("docstore: decoding %s: %w", ref, err)
	}
	return true, nil
}

func (m *Memory) Set(_ context.Context, ref Ref, doc any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	b, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("docstore: encoding %s: %w", ref, err)
	}
	m.docs[ref] = b
	return nil
}

func (m *Memory) Delete(_ context.Context, ref Ref) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	delete(m.docs, ref)
	return nil
}

func (m *Memory) List(_ context.Context, userID string, collection string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	var ids []string
	for ref := range m.docs {
		if ref.UserID == userID && ref.Collection == collection {
			ids = append(ids, ref.DocID)
		}
	}
	slices.Sort(ids)
	return ids, nil
}

func (m *Memory) Users(_ context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	var ids []string
	for ref := range m.docs {
		if !slices.Contains(ids, ref.UserID) {
			ids = append(ids, ref.UserID)
		}
	}
	slices.Sort(ids)
	return ids, nil
}

// Exists reports whether a document is stored.
func (m *Memory) Exists(ref Ref) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.docs[ref]
	return ok
}
