package logging

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRotatingWriter(t *testing.T) {
	t.Run("appends below the limit", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "audit.log")
		w, err := NewRotatingWriter(path, 1024)
		if err != nil {
			t.Fatalf("NewRotatingWriter failed: %v", err)
		}
		defer w.Close()

		if _, err := w.Write([]byte("line one\n")); err != nil {
			t.Fatalf("Write failed: %v", err)
		}
		if _, err := w.Write([]byte("line two\n")); err != nil {
			t.Fatalf("Write failed: %v", err)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("reading log: %v", err)
		}
		if string(data) != "line one\nline two\n" {
			t.Errorf("unexpected contents: %q", string(data))
		}
	})

	t.Run("rotates into old/ when the limit is hit", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "audit.log")
		w, err := NewRotatingWriter(path, 16)
		if err != nil {
			t.Fatalf("NewRotatingWriter failed: %v", err)
		}
		defer w.Close()

		w.Write([]byte("0123456789\n"))
		w.Write([]byte("this line forces rotation\n"))

		archives, err := filepath.Glob(filepath.Join(dir, "old", "audit.log.*"))
		if err != nil {
			t.Fatalf("globbing archives: %v", err)
		}
		if len(archives) != 1 {
			t.Fatalf("expected 1 archive, found %d", len(archives))
		}

		data, _ := os.ReadFile(path)
		if string(data) != "this line forces rotation\n" {
			t.Errorf("fresh log has unexpected contents: %q", string(data))
		}
	})
}
