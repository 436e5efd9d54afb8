package replay

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/younwookim/motionkit/internal/application/sim"
)

// ErrDesync is returned when two runs of one trace diverge
var ErrDesync = errors.New("replay: runs diverged")

// DriverFactory builds a fresh simulation for one run
type DriverFactory func() (*sim.Driver, error)

// Result is the outcome of playing one trace
type Result struct {
	TraceID string
	Frames  int
	Digests []uint64 // one per frame
	Final   sim.Snapshot
}

// FinalDigest returns the digest of the last frame, 0 for an empty trace
func (r Result) FinalDigest() uint64 {
	if len(r.Digests) == 0 {
		return 0
	}
	return r.Digests[len(r.Digests)-1]
}

// Run plays data on a fresh driver and records a digest after every frame.
// It stops early when ctx is cancelled.
func Run(ctx context.Context, data ReplayData, newDriver DriverFactory) (Result, error) {
	d, err := newDriver()
	if err != nil {
		return Result{}, fmt.Errorf("replay %s: %w", data.ID, err)
	}

	r := NewReplayer(data)
	res := Result{
		TraceID: data.ID,
		Digests: make([]uint64, 0, r.TotalFrames()),
	}
	for {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		in, ok := r.GetInput()
		if !ok {
			break
		}
		if err := d.Step(r.DT(), in); err != nil {
			return res, fmt.Errorf("replay %s frame %d: %w", data.ID, r.CurrentFrame()-1, err)
		}
		res.Digests = append(res.Digests, Digest(d.Snapshot()))
		res.Frames++
	}
	res.Final = d.Snapshot()
	return res, nil
}

// Verify plays every trace twice and compares the runs frame by frame.
// Traces run concurrently, at most limit at a time (limit <= 0 means no
// limit); the first failure cancels the rest.
func Verify(ctx context.Context, traces []ReplayData, newDriver DriverFactory, limit int) ([]Result, error) {
	results := make([]Result, len(traces))

	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, trace := range traces {
		g.Go(func() error {
			first, err := Run(ctx, trace, newDriver)
			if err != nil {
				return err
			}
			second, err := Run(ctx, trace, newDriver)
			if err != nil {
				return err
			}
			if err := compare(trace.ID, first, second); err != nil {
				return err
			}
			results[i] = first
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func compare(id string, a, b Result) error {
	if len(a.Digests) != len(b.Digests) {
		return fmt.Errorf("%w: trace %s ran %d vs %d frames", ErrDesync, id, len(a.Digests), len(b.Digests))
	}
	for f := range a.Digests {
		if a.Digests[f] != b.Digests[f] {
			return fmt.Errorf("%w: trace %s frame %d (%016x != %016x)", ErrDesync, id, f, a.Digests[f], b.Digests[f])
		}
	}
	return nil
}
