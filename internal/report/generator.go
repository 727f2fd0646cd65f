package report

import (
	"context"
	"sync/atomic"
	"time"

	"esgweb/internal/schema"

	"github.com/rs/zerolog/log"
)

const failureMessage = "Couldn't generate the PDF report"

// Generator turns a rendered html report section into a downloadable PDF
type Generator struct {
	rasterizer rasterizer
	toaster    toaster
	width      int
	timeout    time.Duration
	inFlight   atomic.Int32
}

func NewGenerator(rasterizer rasterizer, toaster toaster, width int, timeout time.Duration) *Generator {
	return &Generator{
		rasterizer: rasterizer,
		toaster:    toaster,
		width:      width,
		timeout:    timeout,
	}
}

func (g *Generator) Loading() bool {
	return g.inFlight.Load() > 0
}

func (g *Generator) InFlight() int {
	return int(g.inFlight.Load())
}

// Generate renders html and assembles the PDF in memory, failures queue one error toast
func (g *Generator) Generate(ctx context.Context, html string) ([]byte, bool) {
	g.inFlight.Add(1)
	defer g.inFlight.Add(-1)

	renderCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	start := time.Now()
	img, err := g.rasterizer.Rasterize(renderCtx, html, g.width)
	if err != nil {
		g.fail(ctx, err)
		return nil, false
	}

	doc, err := Assemble(img)
	if err != nil {
		g.fail(ctx, err)
		return nil, false
	}

	log.Info().Str("latency", time.Since(start).String()).Int("bytes", len(doc)).Msg("pdf report generated")
	return doc, true
}

func (g *Generator) fail(ctx context.Context, err error) {
	log.Error().Err(err).Msg(failureMessage)
	g.toaster.Push(ctx, schema.Toast{Level: schema.ToastError, Message: failureMessage})
}
