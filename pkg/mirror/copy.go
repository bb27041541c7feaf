package mirror

import (
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Copy enumerates all tags of the source repository and copies each of them
// to the destination repository. Without WithApply it only reports the
// planned copies. A failed tag does not stop the remaining ones; failures
// are joined into the returned error after every tag has been attempted.
func Copy(src, dst string, opt ...Option) (*Result, error) {
	opts := makeOptions(opt...)

	srcRepo, err := parseRepository(src, opts)
	if err != nil {
		return nil, err
	}
	dstRepo, err := parseRepository(dst, opts)
	if err != nil {
		return nil, err
	}

	tags, err := opts.engine.ListTags(opts.ctx, srcRepo)
	if err != nil {
		return nil, &SourceNotFoundError{Repository: src, Err: err}
	}

	plan := newPlan(src, dst, srcRepo, dstRepo, tags)
	res := &Result{Planned: len(plan.Items)}

	if !opts.apply {
		for _, pc := range plan.Items {
			fmt.Fprintln(opts.out, plan.Line(pc))
		}
		return res, nil
	}

	var mu sync.Mutex
	g := new(errgroup.Group)
	g.SetLimit(opts.jobs)
	for _, pc := range plan.Items {
		pc := pc
		g.Go(func() error {
			fmt.Fprintf(opts.out, "copying %s\n", plan.Line(pc))
			err := copyOne(opts, pc)
			if err != nil {
				mu.Lock()
				res.Failed = append(res.Failed, &TransferError{Image: pc.Src.Name(), Err: err})
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()

	res.Copied = res.Planned - len(res.Failed)
	if len(res.Failed) > 0 {
		errs := make([]error, 0, len(res.Failed))
		for _, f := range res.Failed {
			errs = append(errs, f)
		}
		return res, errors.Join(errs...)
	}
	return res, nil
}

func copyOne(opts *options, pc PendingCopy) error {
	img, err := opts.engine.Pull(opts.ctx, pc.Src)
	if err != nil {
		return err
	}
	return opts.engine.Push(opts.ctx, pc.Dst, img)
}
