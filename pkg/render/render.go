// Package render fills grayscale intensity buffers with escape-time renders of the Mandelbrot set.
package render

import (
	"context"
	"fmt"
	"github.com/wineuwu/programming-rust-practice/pkg/escape"
	"github.com/wineuwu/programming-rust-practice/pkg/viewport"
	"log/slog"
	"sync"
)

// Renderer computes intensity buffers.
//
// The zero value renders sequentially with escape.DefaultLimit.
type Renderer struct {
	// Limit is the maximum number of iterations per point. Zero means escape.DefaultLimit.
	// Counts at or above 255 clamp to black.
	Limit int

	// Workers is the number of goroutines rows are spread across.
	// Values below 2 render every row on the calling goroutine.
	Workers int
}

// Render fills buffer with the image of v at the given bounds, sequentially and with
// the default limit.
//
// Render panics if len(buffer) != bounds.Len().
func Render(buffer []uint8, bounds viewport.Bounds, v viewport.Viewport) {
	// A background context is never cancelled.
	_ = Renderer{}.Render(context.Background(), buffer, bounds, v)
}

// Intensity is the gray value of a pixel: black for points that never escape,
// brighter the sooner a point escapes.
func Intensity(count int, escaped bool) uint8 {
	if !escaped || count >= 255 {
		return 0
	}
	return uint8(255 - count)
}

// Render overwrites buffer with the image of v. Every byte is written unless ctx is
// cancelled first, in which case ctx.Err() is returned and the buffer is partially filled.
//
// Render panics if len(buffer) != bounds.Len().
func (r Renderer) Render(ctx context.Context, buffer []uint8, bounds viewport.Bounds, v viewport.Viewport) error {
	if len(buffer) != bounds.Len() {
		panic(fmt.Sprintf("render: buffer length %d does not match %dx%d bounds",
			len(buffer), bounds.Width, bounds.Height))
	}

	limit := r.Limit
	if limit <= 0 {
		limit = escape.DefaultLimit
	}

	log := Logger()
	log.Debug("rendering",
		slog.Int("width", bounds.Width),
		slog.Int("height", bounds.Height),
		slog.Int("limit", limit),
		slog.Int("workers", r.Workers))

	if r.Workers < 2 {
		for row := 0; row < bounds.Height; row++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			renderRow(buffer, bounds, v, row, limit)
		}
		return nil
	}

	rows := make(chan int)

	go func() {
		defer close(rows)
		for row := 0; row < bounds.Height; row++ {
			select {
			case rows <- row:
			case <-ctx.Done():
				return
			}
		}
	}()

	wg := sync.WaitGroup{}
	wg.Add(r.Workers)
	for i := 0; i < r.Workers; i++ {
		go func() {
			defer wg.Done()
			for row := range rows {
				renderRow(buffer, bounds, v, row, limit)
			}
		}()
	}
	wg.Wait()

	return ctx.Err()
}

func renderRow(buffer []uint8, bounds viewport.Bounds, v viewport.Viewport, row, limit int) {
	line := buffer[row*bounds.Width : (row+1)*bounds.Width]

	for col := range line {
		point := v.PointAt(bounds, viewport.Pixel{Col: col, Row: row})
		line[col] = Intensity(escape.Time(point, limit))
	}
}
