package mirror

import (
	"github.com/google/go-containerregistry/pkg/name"
)

// Retag copies a single tagged image to a new reference. On a registry this
// is a pull of the manifest followed by a push under the new name; blobs
// already present at the destination are not transferred again.
func Retag(oldImageRef, newImageRef string, opt ...Option) error {
	opts := makeOptions(opt...)

	oldRef, err := name.ParseReference(oldImageRef, opts.nameOptions()...)
	if err != nil {
		return &InvalidReferenceError{Ref: oldImageRef, Err: err}
	}
	newRef, err := name.ParseReference(newImageRef, opts.nameOptions()...)
	if err != nil {
		return &InvalidReferenceError{Ref: newImageRef, Err: err}
	}

	img, err := opts.engine.Pull(opts.ctx, oldRef)
	if err != nil {
		return &TransferError{Image: oldRef.Name(), Err: err}
	}
	if err := opts.engine.Push(opts.ctx, newRef, img); err != nil {
		return &TransferError{Image: newRef.Name(), Err: err}
	}
	return nil
}
