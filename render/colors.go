package render

import (
	"github.com/pkg/errors"
	"golang.org/x/image/colornames"
	"image/color"
	"strconv"
	"strings"
)

var (
	// ErrUnknownPalette is returned when a color map name is not in the
	// built-in palette registry
	ErrUnknownPalette = errors.New("unknown color map")

	// ErrEmptyPalette is returned when there are detections to draw but the
	// palette has no colors to pick from
	ErrEmptyPalette = errors.New("empty color palette")

	// ErrInvalidColor is returned when a color string can not be parsed
	ErrInvalidColor = errors.New("invalid color")
)

// Palette is an ordered list of colors which are cycled over by index
type Palette []color.RGBA

// At returns the color for the given key, wrapping around the palette
func (p Palette) At(key int) color.RGBA {
	i := key % len(p)

	if i < 0 {
		i += len(p)
	}

	return p[i]
}

var (
	// palettes is the registry of built-in color maps
	palettes = map[string]Palette{
		// Ref: https://material.io/design/color/#tools-for-picking-colors
		"material": {
			{R: 244, G: 67, B: 54, A: 255},  // #F44336
			{R: 233, G: 30, B: 99, A: 255},  // #E91E63
			{R: 156, G: 39, B: 176, A: 255}, // #9C27B0
			{R: 103, G: 58, B: 183, A: 255}, // #673AB7
			{R: 63, G: 81, B: 181, A: 255},  // #3F51B5
			{R: 33, G: 150, B: 243, A: 255}, // #2196F3
			{R: 3, G: 169, B: 244, A: 255},  // #03A9F4
			{R: 0, G: 188, B: 212, A: 255},  // #00BCD4
			{R: 0, G: 150, B: 136, A: 255},  // #009688
			{R: 76, G: 175, B: 80, A: 255},  // #4CAF50
			{R: 139, G: 195, B: 74, A: 255}, // #8BC34A
			{R: 205, G: 220, B: 57, A: 255}, // #CDDC39
			{R: 255, G: 235, B: 59, A: 255}, // #FFEB3B
			{R: 255, G: 193, B: 7, A: 255},  // #FFC107
			{R: 255, G: 152, B: 0, A: 255},  // #FF9800
			{R: 255, G: 87, B: 34, A: 255},  // #FF5722
		},

		// high contrast colors commonly used by YOLO tooling
		"distinct": {
			{R: 255, G: 56, B: 56, A: 255},   // #FF3838
			{R: 255, G: 112, B: 31, A: 255},  // #FF701F
			{R: 255, G: 178, B: 29, A: 255},  // #FFB21D
			{R: 207, G: 210, B: 49, A: 255},  // #CFD231
			{R: 72, G: 249, B: 10, A: 255},   // #48F90A
			{R: 26, G: 147, B: 52, A: 255},   // #1A9334
			{R: 0, G: 212, B: 187, A: 255},   // #00D4BB
			{R: 0, G: 194, B: 255, A: 255},   // #00C2FF
			{R: 52, G: 69, B: 147, A: 255},   // #344593
			{R: 100, G: 115, B: 255, A: 255}, // #6473FF
			{R: 0, G: 24, B: 236, A: 255},    // #0018EC
			{R: 132, G: 56, B: 255, A: 255},  // #8438FF
			{R: 82, G: 0, B: 133, A: 255},    // #520085
			{R: 255, G: 149, B: 200, A: 255}, // #FF95C8
			{R: 255, G: 55, B: 199, A: 255},  // #FF37C7
			{R: 255, G: 157, B: 151, A: 255}, // #FF9D97
			{R: 44, G: 153, B: 168, A: 255},  // #2C99A8
			{R: 61, G: 219, B: 134, A: 255},  // #3DDB86
			{R: 203, G: 56, B: 255, A: 255},  // #CB38FF
			{R: 146, G: 204, B: 23, A: 255},  // #92CC17
		},
	}

	White = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// LookupPalette returns a copy of the named built-in palette
func LookupPalette(name string) (Palette, error) {

	p, ok := palettes[name]

	if !ok {
		return nil, errors.Wrapf(ErrUnknownPalette, "%q", name)
	}

	return append(Palette(nil), p...), nil
}

// PaletteNames returns the names of the built-in palettes
func PaletteNames() []string {
	names := make([]string, 0, len(palettes))

	for name := range palettes {
		names = append(names, name)
	}

	return names
}

// ParsePalette builds a custom palette from color strings, see ParseColor for
// the accepted formats
func ParsePalette(colors []string) (Palette, error) {

	p := make(Palette, 0, len(colors))

	for _, s := range colors {
		c, err := ParseColor(s)

		if err != nil {
			return nil, err
		}

		p = append(p, c)
	}

	return p, nil
}

// ParseColor parses a hex color (#RGB, #RRGGBB or #RRGGBBAA), an rgb(r, g, b)
// function or an SVG color name such as "teal"
func ParseColor(s string) (color.RGBA, error) {

	str := strings.ToLower(strings.TrimSpace(s))

	switch {
	case strings.HasPrefix(str, "#"):
		return parseHex(str[1:], s)

	case strings.HasPrefix(str, "rgb(") && strings.HasSuffix(str, ")"):
		parts := strings.Split(str[4:len(str)-1], ",")

		if len(parts) != 3 {
			return color.RGBA{}, errors.Wrapf(ErrInvalidColor, "%q", s)
		}

		var ch [3]uint8

		for i, part := range parts {
			v, err := strconv.ParseUint(strings.TrimSpace(part), 10, 8)

			if err != nil {
				return color.RGBA{}, errors.Wrapf(ErrInvalidColor, "%q", s)
			}

			ch[i] = uint8(v)
		}

		return color.RGBA{R: ch[0], G: ch[1], B: ch[2], A: 255}, nil
	}

	if c, ok := colornames.Map[str]; ok {
		return c, nil
	}

	return color.RGBA{}, errors.Wrapf(ErrInvalidColor, "%q", s)
}

func parseHex(hex string, orig string) (color.RGBA, error) {

	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}

	if len(hex) == 6 {
		hex += "ff"
	}

	if len(hex) != 8 {
		return color.RGBA{}, errors.Wrapf(ErrInvalidColor, "%q", orig)
	}

	v, err := strconv.ParseUint(hex, 16, 32)

	if err != nil {
		return color.RGBA{}, errors.Wrapf(ErrInvalidColor, "%q", orig)
	}

	// hex values are not alpha premultiplied
	c := color.NRGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}

	return color.RGBAModel.Convert(c).(color.RGBA), nil
}
