// Package cvimage converts between OpenCV Mats and the canonical RGB image
// form used for drawing detections.
package cvimage

import (
	"github.com/pkg/errors"
	"github.com/swdee/go-detviz/detection"
	"github.com/swdee/go-detviz/preprocess"
	"github.com/swdee/go-detviz/render"
	"gocv.io/x/gocv"
	"image"
)

// FromMat converts a CV8UC1 gray, CV8UC3 BGR or CV8UC4 BGRA Mat to the
// canonical RGB form
func FromMat(mat gocv.Mat) (*image.RGBA, error) {

	if mat.Empty() {
		return nil, errors.Wrap(preprocess.ErrInvalidShape, "empty Mat")
	}

	var code gocv.ColorConversionCode

	switch mat.Type() {
	case gocv.MatTypeCV8UC1:
		code = gocv.ColorGrayToRGB
	case gocv.MatTypeCV8UC3:
		code = gocv.ColorBGRToRGB
	case gocv.MatTypeCV8UC4:
		code = gocv.ColorBGRAToRGB
	default:
		return nil, errors.Wrapf(preprocess.ErrInvalidShape, "unsupported Mat type %v", mat.Type())
	}

	rgb := gocv.NewMat()
	defer rgb.Close()

	gocv.CvtColor(mat, &rgb, code)

	return preprocess.FromArray(preprocess.Array{
		Shape: []int{rgb.Rows(), rgb.Cols(), 3},
		Data:  rgb.ToBytes(),
	})
}

// ToMat converts an image to a CV8UC3 BGR Mat.  The caller must Close the
// returned Mat.
func ToMat(img *image.RGBA) (gocv.Mat, error) {

	mat, err := gocv.ImageToMatRGB(img)

	if err != nil {
		return gocv.NewMat(), errors.Wrap(err, "error converting image to Mat")
	}

	return mat, nil
}

// DrawDetections renders the detections onto the Mat in place.  The Mat is
// replaced by a CV8UC3 BGR Mat of the same size holding the annotated image.
func DrawDetections(mat *gocv.Mat, dets []detection.Detection,
	classNames []string, opts render.Options) error {

	img, err := FromMat(*mat)

	if err != nil {
		return err
	}

	out, err := render.DrawDetections(img, dets, classNames, opts)

	if err != nil {
		return err
	}

	resMat, err := ToMat(out)

	if err != nil {
		return err
	}

	defer resMat.Close()

	resMat.CopyTo(mat)

	return nil
}
