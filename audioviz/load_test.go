package audioviz

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "audio.bin")
	if err := os.WriteFile(path, []byte{0x80, 0xff, 0x00}, 0o666); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path)
	if err != nil || !bytes.Equal(got, []byte{0x80, 0xff, 0x00}) {
		t.Errorf("Load = %v, %v", got, err)
	}

	empty := filepath.Join(dir, "empty.bin")
	if err := os.WriteFile(empty, nil, 0o666); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(empty); !errors.Is(err, ErrEmpty) {
		t.Errorf("empty: err = %v, want ErrEmpty", err)
	}
}

func TestCapture(t *testing.T) {
	got, err := Capture(bytes.NewReader([]byte("abcdef")), 4)
	if err != nil || string(got) != "abcd" {
		t.Errorf("Capture = %q, %v", got, err)
	}

	got, err = Capture(bytes.NewReader([]byte("ab")), 4)
	if !errors.Is(err, io.ErrUnexpectedEOF) || string(got) != "ab" {
		t.Errorf("short Capture = %q, %v", got, err)
	}

	if _, err := Capture(bytes.NewReader(nil), 0); !errors.Is(err, ErrEmpty) {
		t.Errorf("zero Capture err = %v", err)
	}
}

func TestCentered(t *testing.T) {
	tests := []struct {
		b    byte
		want float32
	}{
		{0x00, -1},
		{0x80, 0},
		{0xc0, 0.5},
		{0xff, 127.0 / 128},
	}
	for _, tt := range tests {
		if got := Centered(tt.b); got != tt.want {
			t.Errorf("Centered(%d) = %v, want %v", tt.b, got, tt.want)
		}
	}
}
