package preprocess

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
	"image"
	"image/color"
	"math"
)

// ErrInvalidShape is returned when raw pixel data does not describe a
// rectangular 8 bit image with 1, 3 or 4 channels
var ErrInvalidShape = errors.New("invalid pixel data shape")

// Array is a raw row-major pixel array in height, width, channel order.  Shape
// is either (H, W) for gray data or (H, W, C) where C is 1, 3 or 4.
type Array struct {
	Shape []int
	Data  []uint8
}

// FromImage converts an image to the canonical RGB form.  The result is always
// a new image with its origin at (0,0) and every pixel fully opaque.  Alpha is
// discarded without compositing, the same as converting RGBA data to RGB.
func FromImage(img image.Image) (*image.RGBA, error) {

	if img == nil {
		return nil, errors.New("nil image")
	}

	b := img.Bounds()

	if b.Empty() {
		return nil, errors.Wrapf(ErrInvalidShape, "empty image bounds %v", b)
	}

	dst := newCanvas(b.Dx(), b.Dy())

	switch src := img.(type) {
	case *image.NRGBA:
		for y := 0; y < b.Dy(); y++ {
			for x := 0; x < b.Dx(); x++ {
				c := src.NRGBAAt(b.Min.X+x, b.Min.Y+y)
				setRGB(dst, x, y, c.R, c.G, c.B)
			}
		}

	case *image.Gray:
		for y := 0; y < b.Dy(); y++ {
			for x := 0; x < b.Dx(); x++ {
				v := src.GrayAt(b.Min.X+x, b.Min.Y+y).Y
				setRGB(dst, x, y, v, v, v)
			}
		}

	default:
		for y := 0; y < b.Dy(); y++ {
			for x := 0; x < b.Dx(); x++ {
				c := color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
				setRGB(dst, x, y, c.R, c.G, c.B)
			}
		}
	}

	return dst, nil
}

// FromArray converts a raw pixel array to the canonical RGB form.  The data
// is copied, the array is not retained.
func FromArray(a Array) (*image.RGBA, error) {

	var h, w, ch int

	switch len(a.Shape) {
	case 2:
		h, w, ch = a.Shape[0], a.Shape[1], 1
	case 3:
		h, w, ch = a.Shape[0], a.Shape[1], a.Shape[2]
	default:
		return nil, errors.Wrapf(ErrInvalidShape, "array has %d dimensions", len(a.Shape))
	}

	if h <= 0 || w <= 0 {
		return nil, errors.Wrapf(ErrInvalidShape, "array shape %v", a.Shape)
	}

	if !validChannels(ch) {
		return nil, errors.Wrapf(ErrInvalidShape, "unsupported channel count %d", ch)
	}

	if len(a.Data) != h*w*ch {
		return nil, errors.Wrapf(ErrInvalidShape, "shape %v needs %d bytes, got %d",
			a.Shape, h*w*ch, len(a.Data))
	}

	dst := newCanvas(w, h)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			setPixel(dst, x, y, a.Data[(y*w+x)*ch:(y*w+x+1)*ch])
		}
	}

	return dst, nil
}

// FromRows converts a nested list of pixel rows to the canonical RGB form.
// Every pixel must have the same number of channels, either 1, 3 or 4, and
// every row the same length.
func FromRows(rows [][][]uint8) (*image.RGBA, error) {

	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, errors.Wrap(ErrInvalidShape, "no pixel rows")
	}

	h, w := len(rows), len(rows[0])
	ch := len(rows[0][0])

	if !validChannels(ch) {
		return nil, errors.Wrapf(ErrInvalidShape, "unsupported channel count %d", ch)
	}

	dst := newCanvas(w, h)

	for y, row := range rows {
		if len(row) != w {
			return nil, errors.Wrapf(ErrInvalidShape, "row %d has %d pixels, expected %d",
				y, len(row), w)
		}

		for x, px := range row {
			if len(px) != ch {
				return nil, errors.Wrapf(ErrInvalidShape, "pixel (%d,%d) has %d channels, expected %d",
					x, y, len(px), ch)
			}

			setPixel(dst, x, y, px)
		}
	}

	return dst, nil
}

// FromGrayRows converts a nested list of gray intensity rows to the canonical
// RGB form
func FromGrayRows(rows [][]uint8) (*image.RGBA, error) {

	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, errors.Wrap(ErrInvalidShape, "no pixel rows")
	}

	h, w := len(rows), len(rows[0])
	dst := newCanvas(w, h)

	for y, row := range rows {
		if len(row) != w {
			return nil, errors.Wrapf(ErrInvalidShape, "row %d has %d pixels, expected %d",
				y, len(row), w)
		}

		for x, v := range row {
			setRGB(dst, x, y, v, v, v)
		}
	}

	return dst, nil
}

// FromMatrix converts a matrix of gray intensities to the canonical RGB form.
// Values are rounded and clamped to the 0 to 255 range.
func FromMatrix(m mat.Matrix) (*image.RGBA, error) {

	if m == nil {
		return nil, errors.New("nil matrix")
	}

	h, w := m.Dims()

	if h <= 0 || w <= 0 {
		return nil, errors.Wrapf(ErrInvalidShape, "matrix dims %dx%d", h, w)
	}

	dst := newCanvas(w, h)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := clampUint8(m.At(y, x))
			setRGB(dst, x, y, v, v, v)
		}
	}

	return dst, nil
}

func newCanvas(w, h int) *image.RGBA {
	return image.NewRGBA(image.Rect(0, 0, w, h))
}

func validChannels(ch int) bool {
	return ch == 1 || ch == 3 || ch == 4
}

// setPixel writes a 1, 3 or 4 channel pixel, dropping any alpha channel
func setPixel(dst *image.RGBA, x, y int, px []uint8) {
	if len(px) == 1 {
		setRGB(dst, x, y, px[0], px[0], px[0])
		return
	}

	setRGB(dst, x, y, px[0], px[1], px[2])
}

func setRGB(dst *image.RGBA, x, y int, r, g, b uint8) {
	i := dst.PixOffset(x, y)
	dst.Pix[i+0] = r
	dst.Pix[i+1] = g
	dst.Pix[i+2] = b
	dst.Pix[i+3] = 0xff
}

func clampUint8(v float64) uint8 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}

	if v >= 255 {
		return 255
	}

	return uint8(math.Round(v))
}
