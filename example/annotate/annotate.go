/*
Example code showing how to render detection results onto an image.  The
detections are read from a YAML file in the format

	class_names: [person, bicycle, car]
	colors: ["#ff0000", teal]
	detections:
	  - box: [10, 20, 110, 220]
	    class: 0
	    score: 0.8

class_names is optional when a labels file is given with -l, colors is optional
and overrides the -c color map.  Omit score on every detection to draw labels
with class names only.
*/
package main

import (
	"flag"
	"github.com/swdee/go-detviz"
	"github.com/swdee/go-detviz/cvimage"
	"github.com/swdee/go-detviz/detection"
	"github.com/swdee/go-detviz/render"
	"gocv.io/x/gocv"
	"gopkg.in/yaml.v3"
	"log"
	"os"
)

// detectionFile is the layout of the YAML detections file
type detectionFile struct {
	ClassNames []string `yaml:"class_names"`
	Colors     []string `yaml:"colors"`
	Detections []struct {
		Box   [4]float64 `yaml:"box"`
		Class int        `yaml:"class"`
		Score *float64   `yaml:"score"`
	} `yaml:"detections"`
}

func main() {
	// disable logging timestamps
	log.SetFlags(0)

	// read in cli flags
	imgFile := flag.String("i", "../data/bus.jpg", "Image file to draw detections on")
	detFile := flag.String("d", "../data/bus-detections.yaml", "YAML file of detections")
	labelFile := flag.String("l", "", "Text file of class names, one per line")
	saveFile := flag.String("o", "../data/bus-out.jpg", "The output JPG file with object detection markers")
	fontFile := flag.String("f", render.DefaultFontPath, "The TTF font to use, or name of an installed font")
	colorMap := flag.String("c", "material", "Built-in color map to use")
	byInstance := flag.Bool("instance", false, "Color each detection instead of each class")

	flag.Parse()

	raw, err := os.ReadFile(*detFile)

	if err != nil {
		log.Fatal("Error reading detections file: ", err)
	}

	var df detectionFile

	if err := yaml.Unmarshal(raw, &df); err != nil {
		log.Fatal("Error parsing detections file: ", err)
	}

	classNames := df.ClassNames

	if *labelFile != "" {
		classNames, err = detviz.LoadLabels(*labelFile)

		if err != nil {
			log.Fatal("Error loading labels: ", err)
		}
	}

	// build parallel slices for the detections
	boxes := make([][4]float64, 0, len(df.Detections))
	classIDs := make([]int, 0, len(df.Detections))
	var scores []float64

	for i, d := range df.Detections {
		boxes = append(boxes, d.Box)
		classIDs = append(classIDs, d.Class)

		if d.Score != nil {
			if scores == nil && i > 0 {
				log.Fatal("Error in detections file: score must be given for all detections or none")
			}

			scores = append(scores, *d.Score)
		}
	}

	dets, err := detection.New(boxes, classIDs, scores)

	if err != nil {
		log.Fatal("Error in detections file: ", err)
	}

	opts := render.DefaultOptions()
	opts.ColorMap = *colorMap
	opts.ColorByClass = !*byInstance
	opts.FontPath = *fontFile

	if len(df.Colors) > 0 {
		opts.Colors, err = render.ParsePalette(df.Colors)

		if err != nil {
			log.Fatal("Error parsing colors: ", err)
		}
	}

	// load image
	img := gocv.IMRead(*imgFile, gocv.IMReadColor)

	if img.Empty() {
		log.Fatal("Error reading image from: ", *imgFile)
	}

	defer img.Close()

	if err := cvimage.DrawDetections(&img, dets, classNames, opts); err != nil {
		log.Fatal("Error drawing detections: ", err)
	}

	// Save the result
	if ok := gocv.IMWrite(*saveFile, img); !ok {
		log.Fatal("Failed to save the image")
	}

	log.Printf("Saved %d detections to %s\n", len(dets), *saveFile)
}
