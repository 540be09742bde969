/*
go-detviz renders object detection results onto images for visual inspection.
Each detection's bounding box is outlined and labelled with its class name and
confidence score using a cycling color palette.

Images can be supplied as an image.Image, a raw pixel array, nested pixel rows,
a gonum matrix or an OpenCV Mat, all of which are converted to a single
canonical RGB form before drawing.

See example code and usage in the example subdirectory.
*/
package detviz
