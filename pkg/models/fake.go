package models

import (
	"context"

	"github.com/liftoff-labs/liftoff/pkg/intent"
	"github.com/liftoff-labs/liftoff/pkg/scaffold"
)

// FakeBackend is a lightweight Backend for wiring tests without a provider.
// It feeds its canned raw payload through the normal normalization path.
type FakeBackend struct {
	Raw   any
	Err   error
	Calls int
}

func (f *FakeBackend) GenerateProject(_ context.Context, _ string, _ intent.Metadata) (scaffold.FileTree, error) {
	f.Calls++
	if f.Err != nil {
		return nil, f.Err
	}
	return Normalize("fake", f.Raw)
}

var _ Backend = (*FakeBackend)(nil)
