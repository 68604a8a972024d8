package term

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWidthNotTerminal(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if IsTerminal(f) {
		t.Error("regular file reported as terminal")
	}
	if w := Width(f); w != DefaultWidth {
		t.Errorf("Wanted %d, got %d", DefaultWidth, w)
	}
	if w := Width(nil); w != DefaultWidth {
		t.Errorf("nil: Wanted %d, got %d", DefaultWidth, w)
	}
}
