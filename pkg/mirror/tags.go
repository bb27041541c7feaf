package mirror

// ListTags returns all tags of the given repository.
func ListTags(rawRef string, opt ...Option) ([]string, error) {
	opts := makeOptions(opt...)
	repo, err := parseRepository(rawRef, opts)
	if err != nil {
		return nil, err
	}
	tags, err := opts.engine.ListTags(opts.ctx, repo)
	if err != nil {
		return nil, &SourceNotFoundError{Repository: rawRef, Err: err}
	}
	return tags, nil
}
