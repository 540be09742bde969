package render

import (
	"errors"
	"golang.org/x/image/font/gofont/goregular"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFontBuiltin(t *testing.T) {

	for _, name := range []string{"goregular", "gomono.ttf", "GoBold"} {
		face, err := LoadFont(name, 16)

		if err != nil {
			t.Errorf("%s: unexpected error %v", name, err)
			continue
		}

		if h := face.Metrics().Height.Ceil(); h < 16 {
			t.Errorf("%s: line height %d too small for 16pt face", name, h)
		}

		face.Close()
	}
}

func TestLoadFontFile(t *testing.T) {

	dir := t.TempDir()
	path := filepath.Join(dir, "regular.ttf")

	if err := os.WriteFile(path, goregular.TTF, 0644); err != nil {
		t.Fatalf("failed to write font file: %v", err)
	}

	face, err := LoadFont(path, 16)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	face.Close()
}

func TestLoadFontErrors(t *testing.T) {

	if _, err := LoadFont("no-such-font-b7d2e1.ttf", 16); !errors.Is(err, ErrFontNotFound) {
		t.Errorf("expected ErrFontNotFound, got %v", err)
	}

	path := filepath.Join(t.TempDir(), "broken.ttf")

	if err := os.WriteFile(path, []byte("not a font"), 0644); err != nil {
		t.Fatalf("failed to write font file: %v", err)
	}

	_, err := LoadFont(path, 16)

	if err == nil {
		t.Fatal("expected parse error for invalid font data")
	}

	if errors.Is(err, ErrFontNotFound) {
		t.Errorf("expected parse error, got %v", err)
	}

	// a directory exists so its read error is returned rather than searching
	// the host font directories
	_, err = LoadFont(t.TempDir(), 16)

	if err == nil {
		t.Fatal("expected error loading a directory as a font")
	}

	if errors.Is(err, ErrFontNotFound) {
		t.Errorf("expected read error, got %v", err)
	}
}
