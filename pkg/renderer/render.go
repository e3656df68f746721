package renderer

import (
	"context"
	"runtime"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/raywerk/whitted/pkg/world"
)

// Renderer traces one ray per pixel and distributes canvas rows across a
// bounded pool of goroutines. Rows are independent, so workers never share
// mutable state beyond their own canvas slots.
type Renderer struct {
	workers int
	logger  *zap.Logger
}

// NewRenderer creates a renderer with the given worker count. A count of
// zero or less means one worker per CPU. A nil logger disables logging.
func NewRenderer(workers int, logger *zap.Logger) *Renderer {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Renderer{workers: workers, logger: logger}
}

// Render traces every pixel of the camera's canvas through the world. The
// world is validated up front so malformed scenes fail before any pixel is
// traced. Cancelling the context abandons the render.
func (r *Renderer) Render(ctx context.Context, camera *Camera, w *world.World) (*Canvas, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}

	canvas := NewCanvas(camera.HSize(), camera.VSize())
	start := time.Now()
	r.logger.Info("render started",
		zap.Int("width", camera.HSize()),
		zap.Int("height", camera.VSize()),
		zap.Int("workers", r.workers),
		zap.Int("shapes", len(w.Shapes)),
		zap.Int("lights", len(w.Lights)))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)
	for y := 0; y < camera.VSize(); y++ {
		y := y // per-iteration copy; go directive is 1.21 for the local toolchain
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return r.renderRow(camera, w, canvas, y)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	r.logger.Info("render finished", zap.Duration("elapsed", time.Since(start)))
	return canvas, nil
}

func (r *Renderer) renderRow(camera *Camera, w *world.World, canvas *Canvas, y int) error {
	for x := 0; x < camera.HSize(); x++ {
		ray, err := camera.RayForPixel(x, y)
		if err != nil {
			return err
		}
		color, err := w.ColorAt(ray, w.Config.MaxDepth)
		if err != nil {
			return err
		}
		if err := canvas.WritePixel(x, y, color); err != nil {
			return err
		}
	}
	return nil
}

// Render is a convenience wrapper that renders with per-CPU workers and no
// logging.
func Render(camera *Camera, w *world.World) (*Canvas, error) {
	return NewRenderer(0, nil).Render(context.Background(), camera, w)
}
