package main

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePNG(t *testing.T, width, height int) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, width, height))))

	path := filepath.Join(t.TempDir(), "report.png")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
	return path
}

func TestAssembleCmd(t *testing.T) {
	out := filepath.Join(t.TempDir(), "report.pdf")
	cmd := &assembleCmd{Input: writePNG(t, 210, 600), Out: out}

	require.NoError(t, cmd.Run(context.Background()))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}

func TestAssembleCmd_NotPNG(t *testing.T) {
	input := filepath.Join(t.TempDir(), "report.png")
	require.NoError(t, os.WriteFile(input, []byte("<html></html>"), 0o644))

	cmd := &assembleCmd{Input: input, Out: filepath.Join(t.TempDir(), "report.pdf")}
	assert.Error(t, cmd.Run(context.Background()))
}

func TestPagesCmd(t *testing.T) {
	assert.NoError(t, (&pagesCmd{Width: 1024, Height: 4000}).Run(context.Background()))
	assert.Error(t, (&pagesCmd{Width: 0, Height: 4000}).Run(context.Background()))
}
