package mirror

import (
	"context"
	"sync"

	"github.com/google/go-containerregistry/pkg/name"
	v1 "github.com/google/go-containerregistry/pkg/v1"
	"github.com/google/go-containerregistry/pkg/v1/empty"
)

// fakeEngine records every call so tests can assert exactly which transfers
// were attempted.
type fakeEngine struct {
	mu        sync.Mutex
	tags      []string
	listErr   error
	pullErr   map[string]error
	pushErr   map[string]error
	listCalls int
	pulled    []string
	pushed    []string
}

func newFakeEngine(tags ...string) *fakeEngine {
	return &fakeEngine{
		tags:    tags,
		pullErr: make(map[string]error),
		pushErr: make(map[string]error),
	}
}

func (f *fakeEngine) ListTags(_ context.Context, _ name.Repository) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls += 1
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.tags, nil
}

func (f *fakeEngine) Pull(_ context.Context, ref name.Reference) (v1.Image, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pulled = append(f.pulled, ref.Identifier())
	if err := f.pullErr[ref.Identifier()]; err != nil {
		return nil, err
	}
	return empty.Image, nil
}

func (f *fakeEngine) Push(_ context.Context, ref name.Reference, _ v1.Image) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.pushErr[ref.Identifier()]; err != nil {
		return err
	}
	f.pushed = append(f.pushed, ref.Identifier())
	return nil
}

func (f *fakeEngine) pulledTags() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string{}, f.pulled...)
}

func (f *fakeEngine) pushedTags() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string{}, f.pushed...)
}
