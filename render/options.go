package render

import "image/color"

// DefaultFontPath is the font used for labels when none is configured
const DefaultFontPath = "D2Coding.ttf"

// Options defines the parameters for rendering detections onto an image
type Options struct {
	// ColorMap is the name of the built-in palette to use
	ColorMap string
	// Colors is a custom palette, when not nil it is used instead of ColorMap
	Colors Palette
	// ColorByClass picks the color by class id so objects of the same class
	// share a color, otherwise the color is picked per detection
	ColorByClass bool
	// FontPath is a path to a font file or the name of an installed or
	// built-in font
	FontPath string
	// FontSize is the point size of the label text
	FontSize float64
	// LineThickness is the width of the box outline in pixels, drawn inward
	// from the box edges
	LineThickness int
	// TextColor is the color of the label text
	TextColor color.RGBA
	// ExplicitScores renders every supplied score in the label.  When false a
	// score of exactly zero is treated as no score and only the class name is
	// shown.
	ExplicitScores bool
}

// DefaultOptions returns default render settings
func DefaultOptions() Options {
	return Options{
		ColorMap:      "material",
		ColorByClass:  true,
		FontPath:      DefaultFontPath,
		FontSize:      16,
		LineThickness: 4,
		TextColor:     White,
	}
}

// palette resolves the colors to draw with
func (o Options) palette() (Palette, error) {

	if o.Colors != nil {
		if len(o.Colors) == 0 {
			return nil, ErrEmptyPalette
		}

		return o.Colors, nil
	}

	p, err := LookupPalette(o.ColorMap)

	if err != nil {
		return nil, err
	}

	if len(p) == 0 {
		return nil, ErrEmptyPalette
	}

	return p, nil
}
