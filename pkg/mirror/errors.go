package mirror

import (
	"errors"
	"fmt"
)

var errMissingNamespace = errors.New("repository must be of the form [registry/]namespace/name")

// InvalidReferenceError reports a reference that could not be parsed.
type InvalidReferenceError struct {
	Ref string
	Err error
}

func (e *InvalidReferenceError) Error() string {
	return fmt.Sprintf("invalid reference %q: %v", e.Ref, e.Err)
}

func (e *InvalidReferenceError) Unwrap() error { return e.Err }

// SourceNotFoundError reports a source repository whose tags could not be
// listed, either because it does not exist or because it is unreachable.
type SourceNotFoundError struct {
	Repository string
	Err        error
}

func (e *SourceNotFoundError) Error() string {
	return fmt.Sprintf("unable to list tags of %q: %v", e.Repository, e.Err)
}

func (e *SourceNotFoundError) Unwrap() error { return e.Err }

// TransferError reports a failed pull or push of a single image.
type TransferError struct {
	Image string
	Err   error
}

func (e *TransferError) Error() string {
	return fmt.Sprintf("unable to transfer %s: %v", e.Image, e.Err)
}

func (e *TransferError) Unwrap() error { return e.Err }
