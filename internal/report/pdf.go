package report

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"math"

	"github.com/go-pdf/fpdf"
)

// A4 in millimetres
const (
	a4Width  = 210.0
	a4Height = 297.0
)

var ErrEmptyImage = errors.New("rendered image is empty")

// SliceHeight pixel height of one A4 page for an image of the given width
func SliceHeight(width int) int {
	return int(math.Round(float64(width) * a4Height / a4Width))
}

// PageCount A4 pages needed for an image, the last one may be partial
func PageCount(width, height int) int {
	if width <= 0 || height <= 0 {
		return 0
	}
	slice := SliceHeight(width)
	return (height + slice - 1) / slice
}

// Slices cuts img into page-high strips, top to bottom
func Slices(img image.Image) []image.Image {
	bounds := img.Bounds()
	pages := PageCount(bounds.Dx(), bounds.Dy())
	slice := SliceHeight(bounds.Dx())

	result := make([]image.Image, 0, pages)
	for i := 0; i < pages; i++ {
		top := bounds.Min.Y + i*slice
		bottom := min(top+slice, bounds.Max.Y)

		strip := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bottom-top))
		draw.Draw(strip, strip.Bounds(), img, image.Point{X: bounds.Min.X, Y: top}, draw.Src)
		result = append(result, strip)
	}
	return result
}

// Assemble lays a rendered PNG out over A4 pages and returns the PDF document
func Assemble(data []byte) ([]byte, error) {
	doc, err := assemble(data)
	if err != nil {
		return nil, err
	}

	var out bytes.Buffer
	if err := doc.Output(&out); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}
	return out.Bytes(), nil
}

func assemble(data []byte) (*fpdf.Fpdf, error) {
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode png: %w", err)
	}
	width := img.Bounds().Dx()
	if width == 0 || img.Bounds().Dy() == 0 {
		return nil, ErrEmptyImage
	}

	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetMargins(0, 0, 0)
	doc.SetAutoPageBreak(false, 0)

	options := fpdf.ImageOptions{ImageType: "PNG"}
	for i, strip := range Slices(img) {
		var buf bytes.Buffer
		if err := png.Encode(&buf, strip); err != nil {
			return nil, fmt.Errorf("encode page %d: %w", i+1, err)
		}

		name := fmt.Sprintf("page-%d", i+1)
		doc.RegisterImageOptionsReader(name, options, &buf)
		doc.AddPage()
		// partial last page keeps its proportional height, anchored at the top
		height := a4Width * float64(strip.Bounds().Dy()) / float64(width)
		doc.ImageOptions(name, 0, 0, a4Width, height, false, options, 0, "")
	}

	if err := doc.Error(); err != nil {
		return nil, fmt.Errorf("assemble pdf: %w", err)
	}
	return doc, nil
}
