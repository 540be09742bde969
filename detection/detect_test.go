package detection

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {

	tests := []struct {
		name     string
		boxes    [][4]float64
		classIDs []int
		scores   []float64
		wantErr  bool
	}{
		{"empty", nil, nil, nil, false},
		{"no scores", [][4]float64{{1, 2, 3, 4}}, []int{0}, nil, false},
		{"with scores", [][4]float64{{1, 2, 3, 4}, {5, 6, 7, 8}}, []int{0, 1}, []float64{0.5, 0.9}, false},
		{"class ids short", [][4]float64{{1, 2, 3, 4}, {5, 6, 7, 8}}, []int{0}, nil, true},
		{"scores short", [][4]float64{{1, 2, 3, 4}}, []int{0}, []float64{}, true},
		{"scores long", [][4]float64{{1, 2, 3, 4}}, []int{0}, []float64{0.1, 0.2}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dets, err := New(tc.boxes, tc.classIDs, tc.scores)

			if tc.wantErr {
				if !errors.Is(err, ErrLengthMismatch) {
					t.Fatalf("expected ErrLengthMismatch, got %v", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if len(dets) != len(tc.boxes) {
				t.Fatalf("expected %d detections, got %d", len(tc.boxes), len(dets))
			}

			for i, d := range dets {
				want := Box{X1: tc.boxes[i][0], Y1: tc.boxes[i][1], X2: tc.boxes[i][2], Y2: tc.boxes[i][3]}

				if d.Box != want {
					t.Errorf("detection %d box = %+v, expected %+v", i, d.Box, want)
				}

				if d.ClassID != tc.classIDs[i] {
					t.Errorf("detection %d class = %d, expected %d", i, d.ClassID, tc.classIDs[i])
				}

				if d.HasScore != (tc.scores != nil) {
					t.Errorf("detection %d HasScore = %v", i, d.HasScore)
				}

				if tc.scores != nil && d.Score != tc.scores[i] {
					t.Errorf("detection %d score = %f, expected %f", i, d.Score, tc.scores[i])
				}
			}
		})
	}
}

func TestValidate(t *testing.T) {

	names := []string{"cat", "dog"}

	tests := []struct {
		classID int
		wantErr bool
	}{
		{0, false},
		{1, false},
		{2, true},
		{-1, true},
	}

	for _, tc := range tests {
		err := Validate([]Detection{{ClassID: 0}, {ClassID: tc.classID}}, names)

		if tc.wantErr && !errors.Is(err, ErrClassOutOfRange) {
			t.Errorf("class %d: expected ErrClassOutOfRange, got %v", tc.classID, err)
		}

		if !tc.wantErr && err != nil {
			t.Errorf("class %d: unexpected error %v", tc.classID, err)
		}
	}
}
