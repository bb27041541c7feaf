package mirror

import (
	"context"
	"io"
	"log"
	"os"

	"github.com/google/go-containerregistry/pkg/authn"
	"github.com/google/go-containerregistry/pkg/logs"
	"github.com/google/go-containerregistry/pkg/name"
	"github.com/google/go-containerregistry/pkg/v1/remote"
)

type options struct {
	apply         bool
	jobs          int
	insecure      bool
	verbose       bool
	engine        Engine
	out           io.Writer
	remoteOptions []remote.Option
	ctx           context.Context
}

type Option func(opts *options)

// WithApply enables real execution. Without it every operation is a dry run
// that only reports what would happen.
func WithApply(apply bool) Option {
	return func(o *options) {
		o.apply = apply
	}
}

// WithJobs sets the number of tag copies performed at the same time.
// The default of 1 copies tags one at a time.
func WithJobs(jobs int) Option {
	return func(o *options) {
		if jobs > 0 {
			o.jobs = jobs
		}
	}
}

func WithInsecure() Option {
	return func(o *options) {
		o.insecure = true
	}
}

func WithVerbose(verbose bool) Option {
	return func(o *options) {
		o.verbose = verbose
	}
}

// WithEngine replaces the default registry-backed engine. Used by tests to
// run against an in-memory implementation.
func WithEngine(engine Engine) Option {
	return func(o *options) {
		o.engine = engine
	}
}

func WithOutput(w io.Writer) Option {
	return func(o *options) {
		o.out = w
	}
}

func WithContext(ctx context.Context) Option {
	return func(o *options) {
		o.ctx = ctx
	}
}

func makeOptions(opts ...Option) *options {
	res := options{
		apply: false,
		jobs:  1,
		out:   os.Stdout,
		remoteOptions: []remote.Option{
			remote.WithAuthFromKeychain(authn.DefaultKeychain),
		},
		ctx: context.Background(),
	}
	for _, o := range opts {
		o(&res)
	}
	if res.verbose {
		logs.Progress = log.New(os.Stderr, "", log.LstdFlags)
	}
	if res.engine == nil {
		res.engine = &remoteEngine{remoteOptions: res.remoteOptions}
	}
	return &res
}

func (o *options) nameOptions() []name.Option {
	if o.insecure {
		return []name.Option{name.Insecure}
	}
	return nil
}
