package main

import (
	"bytes"
	"context"
	"fmt"
	"image/png"
	"os"
	"time"

	"esgweb/internal/report"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type cli struct {
	Render   renderCmd   `cmd:"" help:"Render an HTML report in headless Chrome and write a paginated A4 PDF."`
	Assemble assembleCmd `cmd:"" help:"Lay an already rendered PNG out over A4 pages."`
	Pages    pagesCmd    `cmd:"" help:"Print how many A4 pages an image of the given size needs."`
}

type renderCmd struct {
	Input   string        `arg:"" type:"existingfile" help:"HTML file to render."`
	Out     string        `short:"o" required:"" type:"path" help:"Destination PDF file."`
	Width   int           `default:"1024" help:"CSS width of the rendering viewport in pixels."`
	Chrome  string        `env:"CHROME_BIN" help:"Chrome binary, rod downloads one when empty."`
	Timeout time.Duration `default:"30s" help:"Deadline of the whole rendering."`
}

type assembleCmd struct {
	Input string `arg:"" type:"existingfile" help:"PNG image of the full report."`
	Out   string `short:"o" required:"" type:"path" help:"Destination PDF file."`
}

type pagesCmd struct {
	Width  int `arg:"" help:"Image width in pixels."`
	Height int `arg:"" help:"Image height in pixels."`
}

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	ctx := kong.Parse(&cli{},
		kong.Description("Offline renderer of ESG PDF reports."),
		kong.UsageOnError(),
	)
	err := ctx.Run(context.Background())
	ctx.FatalIfErrorf(err)
}

func (cmd *renderCmd) Run(ctx context.Context) error {
	html, err := os.ReadFile(cmd.Input)
	if err != nil {
		return fmt.Errorf("reportctl: read html: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, cmd.Timeout)
	defer cancel()

	chrome := report.NewChrome(cmd.Chrome)
	defer func() {
		if err := chrome.Close(); err != nil {
			log.Warn().Err(err).Msg("couldn't stop chrome")
		}
	}()

	img, err := chrome.Rasterize(ctx, string(html), cmd.Width)
	if err != nil {
		return fmt.Errorf("reportctl: %w", err)
	}
	return writePDF(img, cmd.Out)
}

func (cmd *assembleCmd) Run(_ context.Context) error {
	img, err := os.ReadFile(cmd.Input)
	if err != nil {
		return fmt.Errorf("reportctl: read image: %w", err)
	}
	return writePDF(img, cmd.Out)
}

func (cmd *pagesCmd) Run(_ context.Context) error {
	if cmd.Width <= 0 || cmd.Height <= 0 {
		return fmt.Errorf("reportctl: width and height must be positive")
	}
	fmt.Printf("slice height %dpx, %d page(s)\n", report.SliceHeight(cmd.Width), report.PageCount(cmd.Width, cmd.Height))
	return nil
}

func writePDF(img []byte, out string) error {
	cfg, err := png.DecodeConfig(bytes.NewReader(img))
	if err != nil {
		return fmt.Errorf("reportctl: decode png: %w", err)
	}

	doc, err := report.Assemble(img)
	if err != nil {
		return fmt.Errorf("reportctl: %w", err)
	}
	if err := os.WriteFile(out, doc, 0o644); err != nil {
		return fmt.Errorf("reportctl: write pdf: %w", err)
	}

	log.Info().
		Str("out", out).
		Int("width", cfg.Width).
		Int("height", cfg.Height).
		Int("pages", report.PageCount(cfg.Width, cfg.Height)).
		Msg("report written")
	return nil
}
