package tasks

import (
	"context"
	"time"

	"github.com/ZKAi-DEV/fokus-lebih-baik/internal/docstore"
	"github.com/ZKAi-DEV/fokus-lebih-baik/internal/fokusdb"
)

type fakeGen struct {
	text   string
	err    error
	prompt string

	// started and release, when set, let a test hold a call in flight.
	started chan struct{}
	release chan struct{}
}

func (f *fakeGen) Prompt(_ context.Context, _ string, prompt string) (string, error) {
	f.prompt = prompt
	if f.started != nil {
		close(f.started)
	}
	if f.release != nil {
		<-f.release
	}
	return f.text, f.err
}

func (f *fakeGen) Chat(context.Context, string, []fokusdb.ChatMessage) (string, error) {
	return f.text, f.err
}

// slowStore holds every Get until release is closed.
type slowStore struct {
	docstore.Store

	started chan struct{}
	release chan struct{}
}

func (s *slowStore) Get(ctx context.Context, ref docstore.Ref, dst any) (bool, error) {
	close(s.started)
	<-s.release
	return s.Store.Get(ctx, ref, dst)
}

func newTestManager(gen *fakeGen, now string) (*Manager, *docstore.Memory) {
	store := docstore.NewMemory()
	m := NewManager(store, gen)
	t, err := time.Parse(time.DateOnly, now)
	if err != nil {
		panic(err)
	}
	m.now = func() time.Time { return t.Add(10 * time.Hour) }
	m.SetLocation(time.UTC)
	return m, store
}
