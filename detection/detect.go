package detection

import (
	"github.com/pkg/errors"
)

var (
	// ErrLengthMismatch is returned when the parallel boxes, class id and
	// score slices handed to New are not all of the same length
	ErrLengthMismatch = errors.New("detection slices have different lengths")

	// ErrClassOutOfRange is returned when a class id does not index into the
	// class names table
	ErrClassOutOfRange = errors.New("class id out of range")
)

// Box are the corner coordinates of the bounding box of a detected object in
// pixels.  The corners are kept exactly as given, they are not sorted or
// clamped to the image.
type Box struct {
	X1 float64
	Y1 float64
	X2 float64
	Y2 float64
}

// Detection defines the attributes of a single object detected
type Detection struct {
	// Box is the bounding box of the object location
	Box Box
	// ClassID is the zero based index into the class names table the model
	// was trained on
	ClassID int
	// Score is the confidence score of the object detected, only meaningful
	// when HasScore is set
	Score float64
	// HasScore is true when a confidence score was supplied
	HasScore bool
}

// New builds the detection records from the parallel slices of boxes, class
// ids and optional scores.  Pass a nil scores slice when the detections have
// no confidence score.
func New(boxes [][4]float64, classIDs []int, scores []float64) ([]Detection, error) {

	if len(boxes) != len(classIDs) {
		return nil, errors.Wrapf(ErrLengthMismatch, "%d boxes, %d class ids",
			len(boxes), len(classIDs))
	}

	if scores != nil && len(scores) != len(boxes) {
		return nil, errors.Wrapf(ErrLengthMismatch, "%d boxes, %d scores",
			len(boxes), len(scores))
	}

	dets := make([]Detection, len(boxes))

	for i, b := range boxes {
		dets[i] = Detection{
			Box:     Box{X1: b[0], Y1: b[1], X2: b[2], Y2: b[3]},
			ClassID: classIDs[i],
		}

		if scores != nil {
			dets[i].Score = scores[i]
			dets[i].HasScore = true
		}
	}

	return dets, nil
}

// Validate checks every detection's class id is a valid index into
// classNames
func Validate(dets []Detection, classNames []string) error {

	for i, d := range dets {
		if d.ClassID < 0 || d.ClassID >= len(classNames) {
			return errors.Wrapf(ErrClassOutOfRange, "detection %d has class id %d, %d class names",
				i, d.ClassID, len(classNames))
		}
	}

	return nil
}
