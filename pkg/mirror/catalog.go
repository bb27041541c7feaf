package mirror

import (
	"github.com/google/go-containerregistry/pkg/name"
	"github.com/google/go-containerregistry/pkg/v1/remote"
)

// Catalog lists the repositories of a registry.
func Catalog(registryName string, opt ...Option) ([]string, error) {
	opts := makeOptions(opt...)
	reg, err := name.NewRegistry(registryName, opts.nameOptions()...)
	if err != nil {
		return nil, &InvalidReferenceError{Ref: registryName, Err: err}
	}
	return remote.Catalog(opts.ctx, reg, opts.remoteOptions...)
}
