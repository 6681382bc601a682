package conversation

import (
	"context"
	"slices"

	"github.com/ZKAi-DEV/fokus-lebih-baik/internal/fokusdb"
)

type fakeGen struct {
	text string
	err  error
	sent []fokusdb.ChatMessage

	started chan struct{}
	release chan struct{}
}

func (f *fakeGen) Prompt(context.Context, string, string) (string, error) {
	return f.text, f.err
}

func (f *fakeGen) Chat(_ context.Context, _ string, messages []fokusdb.ChatMessage) (string, error) {
	f.sent = slices.Clone(messages)
	if f.started != nil {
		close(f.started)
	}
	if f.release != nil {
		<-f.release
	}
	return f.text, f.err
}
