package render

import (
	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/gofont/gosmallcaps"
	"golang.org/x/image/font/opentype"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// ErrFontNotFound is returned when a font path or name can not be resolved
var ErrFontNotFound = errors.New("font not found")

// builtinFonts are the Go fonts compiled into the binary, these resolve
// without any fonts installed on the host
var builtinFonts = map[string][]byte{
	"goregular":    goregular.TTF,
	"gobold":       gobold.TTF,
	"goitalic":     goitalic.TTF,
	"gobolditalic": gobolditalic.TTF,
	"gomedium":     gomedium.TTF,
	"gomono":       gomono.TTF,
	"gomonobold":   gomonobold.TTF,
	"gosmallcaps":  gosmallcaps.TTF,
}

// LoadFont loads a TTF or OTF font and creates a type face of the given point
// size.  The path is resolved in order as a built-in Go font name, a font file
// on disk and finally a font file name in the host's font directories.  The
// caller must Close the returned face.
func LoadFont(path string, size float64) (font.Face, error) {

	fontBytes, err := readFont(path)

	if err != nil {
		return nil, err
	}

	// parse the font
	f, err := opentype.Parse(fontBytes)

	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse font %q", path)
	}

	// create a type face
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})

	if err != nil {
		return nil, errors.Wrapf(err, "failed to create type face for %q", path)
	}

	return face, nil
}

// readFont returns the raw font data for the given path or font name
func readFont(path string) ([]byte, error) {

	name := strings.ToLower(strings.TrimSuffix(filepath.Base(path), ".ttf"))

	if data, ok := builtinFonts[name]; ok && !strings.ContainsRune(path, os.PathSeparator) {
		return data, nil
	}

	data, err := os.ReadFile(path)

	if err == nil {
		return data, nil
	}

	// only a missing file falls back to the host font directories
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, errors.Wrap(err, "failed to load font")
	}

	if file := findFontFile(path); file != "" {
		data, err := os.ReadFile(file)

		if err != nil {
			return nil, errors.Wrap(err, "failed to load font")
		}

		return data, nil
	}

	return nil, errors.Wrapf(ErrFontNotFound, "%q", path)
}

// findFontFile searches the host font directories for a font file matching
// the base name of path.  When the name has no extension the .ttf and .otf
// extensions are tried.
func findFontFile(path string) string {

	base := filepath.Base(path)
	candidates := []string{strings.ToLower(base)}

	if filepath.Ext(base) == "" {
		candidates = append(candidates, strings.ToLower(base+".ttf"),
			strings.ToLower(base+".otf"))
	}

	for _, dir := range fontDirs() {
		var found string

		filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				// unreadable directories are skipped
				return nil
			}

			if d.IsDir() {
				return nil
			}

			name := strings.ToLower(d.Name())

			for _, c := range candidates {
				if name == c {
					found = p
					return fs.SkipAll
				}
			}

			return nil
		})

		if found != "" {
			return found
		}
	}

	return ""
}

// fontDirs returns the directories fonts are installed to on this host
func fontDirs() []string {

	var dirs []string

	home, _ := os.UserHomeDir()

	switch runtime.GOOS {
	case "windows":
		dirs = append(dirs, filepath.Join(os.Getenv("WINDIR"), "Fonts"))

		if local := os.Getenv("LOCALAPPDATA"); local != "" {
			dirs = append(dirs, filepath.Join(local, "Microsoft", "Windows", "Fonts"))
		}

	case "darwin":
		dirs = append(dirs, "/Library/Fonts", "/System/Library/Fonts")

		if home != "" {
			dirs = append(dirs, filepath.Join(home, "Library", "Fonts"))
		}

	default:
		dirs = append(dirs, "/usr/share/fonts", "/usr/local/share/fonts")

		if home != "" {
			dirs = append(dirs, filepath.Join(home, ".fonts"),
				filepath.Join(home, ".local", "share", "fonts"))
		}
	}

	return dirs
}
