package mirror

import (
	"context"

	"github.com/google/go-containerregistry/pkg/name"
	v1 "github.com/google/go-containerregistry/pkg/v1"
	"github.com/google/go-containerregistry/pkg/v1/remote"
)

// Engine is the registry client the orchestrator delegates to. Retagging has
// no operation of its own: pushing a pulled image under a new reference is
// the retag.
type Engine interface {
	ListTags(ctx context.Context, repo name.Repository) ([]string, error)
	Pull(ctx context.Context, ref name.Reference) (v1.Image, error)
	Push(ctx context.Context, ref name.Reference, img v1.Image) error
}

type remoteEngine struct {
	remoteOptions []remote.Option
}

func (e *remoteEngine) opts(ctx context.Context) []remote.Option {
	res := make([]remote.Option, 0, len(e.remoteOptions)+1)
	res = append(res, e.remoteOptions...)
	return append(res, remote.WithContext(ctx))
}

func (e *remoteEngine) ListTags(ctx context.Context, repo name.Repository) ([]string, error) {
	return remote.List(repo, e.opts(ctx)...)
}

func (e *remoteEngine) Pull(ctx context.Context, ref name.Reference) (v1.Image, error) {
	return remote.Image(ref, e.opts(ctx)...)
}

func (e *remoteEngine) Push(ctx context.Context, ref name.Reference, img v1.Image) error {
	return remote.Write(ref, img, e.opts(ctx)...)
}
