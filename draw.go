package detviz

import (
	"github.com/swdee/go-detviz/detection"
	"github.com/swdee/go-detviz/render"
	"image"
)

// DrawDetections draws the bounding boxes of each detection onto a copy of img
// and labels them.  boxes, classIDs and scores are parallel slices where each
// box is x1, y1, x2, y2 in pixels.  Pass nil scores to label detections with
// the class name only.  A length mismatch between the slices is an error and
// nothing is drawn.
func DrawDetections(img image.Image, boxes [][4]float64, classIDs []int,
	classNames []string, scores []float64, opts render.Options) (*image.RGBA, error) {

	dets, err := detection.New(boxes, classIDs, scores)

	if err != nil {
		return nil, err
	}

	return render.DrawDetections(img, dets, classNames, opts)
}
