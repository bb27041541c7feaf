package mirror

import (
	"fmt"

	"github.com/google/go-containerregistry/pkg/name"
)

// PendingCopy is a single tag of the source repository paired with its
// destination image.
type PendingCopy struct {
	Tag string
	Src name.Tag
	Dst name.Tag
}

// Plan is the set of copies one invocation will perform. It is rebuilt from
// the live tag list on every run and never persisted.
type Plan struct {
	// SrcArg and DstArg keep the user's spelling of the references, so that
	// reports read back exactly what was typed.
	SrcArg string
	DstArg string
	Items  []PendingCopy
}

func newPlan(srcArg, dstArg string, src, dst name.Repository, tags []string) *Plan {
	p := Plan{SrcArg: srcArg, DstArg: dstArg}
	for _, tag := range tags {
		p.Items = append(p.Items, PendingCopy{
			Tag: tag,
			Src: src.Tag(tag),
			Dst: dst.Tag(tag),
		})
	}
	return &p
}

// Line renders one pending copy the way it shows up in a dry-run report.
func (p *Plan) Line(pc PendingCopy) string {
	return fmt.Sprintf("%s:%s -> %s:%s", p.SrcArg, pc.Tag, p.DstArg, pc.Tag)
}

// Result summarizes one invocation.
type Result struct {
	Planned int
	Copied  int
	Failed  []*TransferError
}
