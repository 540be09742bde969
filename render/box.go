package render

import (
	"github.com/fogleman/gg"
	"github.com/pkg/errors"
	"github.com/swdee/go-detviz/detection"
	"github.com/swdee/go-detviz/preprocess"
	"golang.org/x/image/font"
	"image"
	"image/color"
	"math"
	"strconv"
)

// boxLabel defines where the detection object label should be rendered on
// the image
type boxLabel struct {
	rect     image.Rectangle
	text     string
	baseline float64
}

// DrawDetections renders the bounding boxes around each detected object and
// labels them with the class name and score.  The image is converted to RGB
// and a new image is returned, img is not modified.
//
// Detections are drawn from last to first so the first detection ends up on
// top where boxes overlap.  With no detections the converted image is
// returned without resolving the palette or loading the font.
func DrawDetections(img image.Image, dets []detection.Detection,
	classNames []string, opts Options) (*image.RGBA, error) {

	canvas, err := preprocess.FromImage(img)

	if err != nil {
		return nil, errors.Wrap(err, "error converting image")
	}

	if len(dets) == 0 {
		return canvas, nil
	}

	if err := detection.Validate(dets, classNames); err != nil {
		return nil, err
	}

	colors, err := opts.palette()

	if err != nil {
		return nil, err
	}

	if opts.FontSize <= 0 {
		return nil, errors.Errorf("invalid font size %v", opts.FontSize)
	}

	face, err := LoadFont(opts.FontPath, opts.FontSize)

	if err != nil {
		return nil, errors.Wrap(err, "error loading label font")
	}

	defer face.Close()

	dc := gg.NewContextForRGBA(canvas)
	dc.SetFontFace(face)

	for i := len(dets) - 1; i >= 0; i-- {
		det := dets[i]

		// Get the color for this object
		key := i
		if opts.ColorByClass {
			key = det.ClassID
		}

		useClr := colors.At(key)
		corners := snapBox(det.Box)

		// draw rectangle around detected object
		drawOutline(dc, corners, opts.LineThickness, useClr)

		// draw label with background box
		label := measureLabel(face, corners,
			labelText(classNames[det.ClassID], det, opts.ExplicitScores))

		dc.SetColor(useClr)
		dc.DrawRectangle(float64(label.rect.Min.X), float64(label.rect.Min.Y),
			float64(label.rect.Dx()), float64(label.rect.Dy()))
		dc.Fill()

		dc.SetColor(opts.TextColor)
		dc.DrawString(label.text, float64(label.rect.Min.X), label.baseline)
	}

	return canvas, nil
}

// pixelBox are the box corners snapped to whole pixels, in the order given
type pixelBox struct {
	x1, y1, x2, y2 int
}

// snapBox floors the box corners to whole pixels so the outline and label
// share the same pixel grid and are drawn without antialiasing
func snapBox(box detection.Box) pixelBox {
	return pixelBox{
		x1: int(math.Floor(box.X1)),
		y1: int(math.Floor(box.Y1)),
		x2: int(math.Floor(box.X2)),
		y2: int(math.Floor(box.Y2)),
	}
}

// drawOutline fills the box edges with bands of the given thickness.  The
// corners are inclusive pixel coordinates and the bands grow inward, so the
// outline covers the smaller to the larger of x1 and x2 (and y1 and y2)
// whatever the thickness or corner order.
func drawOutline(dc *gg.Context, box pixelBox, thickness int, clr color.Color) {

	if thickness <= 0 {
		return
	}

	t := float64(thickness)
	left, right := float64(min(box.x1, box.x2)), float64(max(box.x1, box.x2)+1)
	top, bottom := float64(min(box.y1, box.y2)), float64(max(box.y1, box.y2)+1)
	w, h := right-left, bottom-top

	dc.SetColor(clr)
	dc.DrawRectangle(left, top, w, t)
	dc.DrawRectangle(left, bottom-t, w, t)
	dc.DrawRectangle(left, top, t, h)
	dc.DrawRectangle(right-t, top, t, h)
	dc.Fill()
}

// labelText creates the text for a detection label, the class name with the
// score to two decimal places when there is one
func labelText(name string, det detection.Detection, explicitScores bool) string {

	if !det.HasScore || (det.Score == 0 && !explicitScores) {
		return name
	}

	return name + ": " + formatScore(det.Score)
}

// formatScore formats a score to two decimal places, spelling non finite
// values in lower case
func formatScore(score float64) string {

	switch {
	case math.IsNaN(score):
		return "nan"
	case math.IsInf(score, 1):
		return "inf"
	case math.IsInf(score, -1):
		return "-inf"
	}

	return strconv.FormatFloat(score, 'f', 2, 64)
}

// measureLabel calculates the background box of a label.  The box is the
// size of the text and sits on top of the bounding box with its bottom left
// corner on the box's top left corner.
func measureLabel(face font.Face, box pixelBox, text string) boxLabel {

	metrics := face.Metrics()
	w := font.MeasureString(face, text).Ceil()
	h := (metrics.Ascent + metrics.Descent).Ceil()

	x, y := box.x1, box.y1

	return boxLabel{
		rect:     image.Rect(x, y-h, x+w, y),
		text:     text,
		baseline: float64(y-h) + float64(metrics.Ascent.Ceil()),
	}
}
