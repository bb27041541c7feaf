package mirror

import (
	"strings"

	"github.com/google/go-containerregistry/pkg/name"
)

// parseRepository parses a whole-repository reference of the form
// [registry[:port]/]namespace/name. Tags and digests are rejected: the tool
// operates on every tag of a repository, not on single images.
func parseRepository(rawRef string, o *options) (name.Repository, error) {
	repo, err := name.NewRepository(rawRef, o.nameOptions()...)
	if err != nil {
		return name.Repository{}, &InvalidReferenceError{Ref: rawRef, Err: err}
	}
	// NewRepository defaults a bare name like "myimage" to "library/myimage"
	// on Docker Hub. The namespace has to be explicit here.
	repoPath := repo.RepositoryStr()
	if !strings.Contains(repoPath, "/") ||
		(strings.HasPrefix(repoPath, "library/") && !strings.Contains(rawRef, "library/")) {
		return name.Repository{}, &InvalidReferenceError{Ref: rawRef, Err: errMissingNamespace}
	}
	return repo, nil
}
