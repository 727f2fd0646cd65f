package report

import (
	"context"

	"esgweb/internal/schema"
)

type rasterizer interface {
	Rasterize(ctx context.Context, html string, width int) ([]byte, error)
}

type toaster interface {
	Push(ctx context.Context, toast schema.Toast)
}
