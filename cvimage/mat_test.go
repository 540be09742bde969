package cvimage

import (
	"errors"
	"github.com/swdee/go-detviz/detection"
	"github.com/swdee/go-detviz/preprocess"
	"github.com/swdee/go-detviz/render"
	"gocv.io/x/gocv"
	"image/color"
	"testing"
)

func TestFromMat(t *testing.T) {

	tests := []struct {
		name    string
		matType gocv.MatType
		pixel   []uint8
		want    color.RGBA
	}{
		{"gray", gocv.MatTypeCV8UC1, []uint8{90}, color.RGBA{R: 90, G: 90, B: 90, A: 255}},
		{"bgr", gocv.MatTypeCV8UC3, []uint8{10, 20, 30}, color.RGBA{R: 30, G: 20, B: 10, A: 255}},
		{"bgra", gocv.MatTypeCV8UC4, []uint8{10, 20, 30, 0}, color.RGBA{R: 30, G: 20, B: 10, A: 255}},
	}

	for _, tc := range tests {
		mat := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(0, 0, 0, 0), 4, 6, tc.matType)

		for i, v := range tc.pixel {
			mat.SetUCharAt(2, 3*len(tc.pixel)+i, v)
		}

		img, err := FromMat(mat)

		if err != nil {
			t.Errorf("%s: unexpected error %v", tc.name, err)
			mat.Close()
			continue
		}

		if img.Bounds().Dx() != 6 || img.Bounds().Dy() != 4 {
			t.Errorf("%s: image size %v, expected 6x4", tc.name, img.Bounds())
		}

		if got := img.RGBAAt(3, 2); got != tc.want {
			t.Errorf("%s: pixel = %+v, expected %+v", tc.name, got, tc.want)
		}

		mat.Close()
	}
}

func TestFromMatInvalid(t *testing.T) {

	empty := gocv.NewMat()
	defer empty.Close()

	if _, err := FromMat(empty); !errors.Is(err, preprocess.ErrInvalidShape) {
		t.Errorf("expected ErrInvalidShape for empty Mat, got %v", err)
	}

	floats := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(0, 0, 0, 0), 2, 2, gocv.MatTypeCV32FC1)
	defer floats.Close()

	if _, err := FromMat(floats); !errors.Is(err, preprocess.ErrInvalidShape) {
		t.Errorf("expected ErrInvalidShape for float Mat, got %v", err)
	}
}

func TestToMatRoundTrip(t *testing.T) {

	mat := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(0, 0, 0, 0), 3, 3, gocv.MatTypeCV8UC3)
	defer mat.Close()

	mat.SetUCharAt(1, 3, 200) // B
	mat.SetUCharAt(1, 4, 100) // G
	mat.SetUCharAt(1, 5, 50)  // R

	img, err := FromMat(mat)

	if err != nil {
		t.Fatalf("FromMat failed: %v", err)
	}

	back, err := ToMat(img)

	if err != nil {
		t.Fatalf("ToMat failed: %v", err)
	}

	defer back.Close()

	if back.Type() != gocv.MatTypeCV8UC3 {
		t.Fatalf("expected CV8UC3 Mat, got %v", back.Type())
	}

	if b, g, r := back.GetUCharAt(1, 3), back.GetUCharAt(1, 4), back.GetUCharAt(1, 5); b != 200 || g != 100 || r != 50 {
		t.Errorf("round trip pixel BGR = %d,%d,%d, expected 200,100,50", b, g, r)
	}
}

func TestDrawDetectionsMat(t *testing.T) {

	mat := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(0, 0, 0, 0), 100, 100, gocv.MatTypeCV8UC3)
	defer mat.Close()

	dets, err := detection.New([][4]float64{{10, 30, 60, 80}}, []int{0}, []float64{0.9})

	if err != nil {
		t.Fatalf("failed to build detections: %v", err)
	}

	opts := render.DefaultOptions()
	opts.FontPath = "goregular"
	opts.Colors = render.Palette{{R: 255, A: 255}}

	if err := DrawDetections(&mat, dets, []string{"cat"}, opts); err != nil {
		t.Fatalf("DrawDetections failed: %v", err)
	}

	// left band of the box is red, stored as BGR
	if b, g, r := mat.GetUCharAt(55, 11*3), mat.GetUCharAt(55, 11*3+1), mat.GetUCharAt(55, 11*3+2); b != 0 || g != 0 || r != 255 {
		t.Errorf("outline pixel BGR = %d,%d,%d, expected 0,0,255", b, g, r)
	}

	// inside the box is untouched
	if v := mat.GetUCharAt(55, 35*3+2); v != 0 {
		t.Errorf("inside pixel R = %d, expected 0", v)
	}
}
