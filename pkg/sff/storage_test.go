package sff

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestWriteAndOpenRawXML(t *testing.T) {
	base := filepath.Join(t.TempDir(), "script")

	path, err := Save(sampleDocument(), RawXML, base)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if path != base+".sffx" {
		t.Errorf("path = %q, want %q", path, base+".sffx")
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(raw) != goldenXML {
		t.Errorf("stored XML = %q, want golden vector", string(raw))
	}

	d, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if got := d.XML(); got != goldenXML {
		t.Errorf("reopened XML() = %q, want golden vector", got)
	}
}

func TestWriteAndOpenCompressedXML(t *testing.T) {
	base := filepath.Join(t.TempDir(), "script")

	path, err := Save(sampleDocument(), CompressedXML, base)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if path != base+".sffz" {
		t.Errorf("path = %q, want %q", path, base+".sffz")
	}

	stored, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(stored) == goldenXML {
		t.Error("compressed form stored as raw XML")
	}

	d, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if got := d.XML(); got != goldenXML {
		t.Errorf("reopened XML() = %q, want golden vector", got)
	}
}

func TestWriteAndOpenPlainText(t *testing.T) {
	base := filepath.Join(t.TempDir(), "script")

	path, err := Save(sampleDocument(), PlainText, base)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	stored, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(stored) != "OT: numnam\n\n(): num" {
		t.Errorf("stored text = %q", string(stored))
	}

	d, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if got := d.BalloonCount(); got != 2 {
		t.Fatalf("BalloonCount() = %d, want 2", got)
	}
	if d.Balloons[0].Kind != OverText || d.Balloons[0].Translation[0] != "numnam" {
		t.Errorf("balloon 0 = %v %v", d.Balloons[0].Kind, d.Balloons[0].Translation)
	}
	if d.Balloons[1].Kind != Dialogue || d.Balloons[1].Translation[0] != "num" {
		t.Errorf("balloon 1 = %v %v", d.Balloons[1].Kind, d.Balloons[1].Translation)
	}
}

func TestOpenUnsupportedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.doc")
	if err := os.WriteFile(path, []byte("whatever"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	_, err := Open(path)
	if !errors.Is(err, ErrUnsupportedExtension) {
		t.Errorf("err = %v, want ErrUnsupportedExtension", err)
	}
}

func TestOpenNotFound(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.sffx"))
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestOpenCorruptCompressed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.sffz")
	if err := os.WriteFile(path, []byte("not zlib data"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, err := Open(path); err == nil {
		t.Error("expected error opening corrupt .sffz")
	}
}
