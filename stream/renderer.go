package stream

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Renderer evaluates scene frames on a bounded pool of goroutines.
type Renderer struct {
	scene   *Scene
	workers int
}

// NewRenderer creates an instance of a Renderer. workers below one selects
// GOMAXPROCS.
func NewRenderer(scene *Scene, workers int) *Renderer {
	r := new(Renderer)
	r.scene = scene
	r.workers = workers
	if r.workers < 1 {
		r.workers = runtime.GOMAXPROCS(0)
	}
	return r
}

// Render evaluates the given frame indices in parallel. The result at i is
// always the frame for frames[i], whatever order the workers ran in.
func (r *Renderer) Render(ctx context.Context, frames []int) ([]*Frame, error) {
	out := make([]*Frame, len(frames))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)
	for i, n := range frames {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out[i] = r.scene.Frame(n)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// RenderRange renders frames [from, to).
func (r *Renderer) RenderRange(ctx context.Context, from, to int) ([]*Frame, error) {
	if to < from {
		return nil, fmt.Errorf("stream: empty range [%d, %d)", from, to)
	}
	frames := make([]int, 0, to-from)
	for n := from; n < to; n++ {
		frames = append(frames, n)
	}
	return r.Render(ctx, frames)
}
