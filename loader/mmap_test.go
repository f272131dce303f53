//go:build unix || windows

package loader

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestMapFile_ReadOnlyView(t *testing.T) {
	t.Parallel()

	content := []byte("0123456789abcdef")
	path := filepath.Join(t.TempDir(), "region.bin")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer f.Close()

	m, err := mapFile(f, len(content))
	if err != nil {
		t.Fatalf("mapFile() error = %v, want nil", err)
	}

	if !bytes.Equal(m.data, content) {
		t.Errorf("mapped data = %q, want %q", m.data, content)
	}

	if err := m.unmap(); err != nil {
		t.Fatalf("unmap() error = %v, want nil", err)
	}
	if m.data != nil {
		t.Error("data still set after unmap")
	}
	if err := m.unmap(); !errors.Is(err, errMmapNotMapped) {
		t.Errorf("second unmap() error = %v, want errMmapNotMapped", err)
	}
}
