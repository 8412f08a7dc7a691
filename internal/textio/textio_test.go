package textio

import (
	"bytes"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

func TestReadLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"unix newlines", "L.#\n#.L\n", []string{"L.#", "#.L"}},
		{"no trailing newline", "L.#\n#.L", []string{"L.#", "#.L"}},
		{"windows newlines", "L.#\r\n#.L\r\n", []string{"L.#", "#.L"}},
		{"trailing blank lines dropped", "LL\n\n\n", []string{"LL"}},
		{"inner blank line kept", "LL\n\nLL\n", []string{"LL", "", "LL"}},
		{"empty", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadLines(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("ReadLines: %v", err)
			}
			if !slices.Equal(got, tt.want) {
				t.Fatalf("ReadLines = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.txt")
	if err := os.WriteFile(path, []byte("L.L\nLLL\n"), 0644); err != nil {
		t.Fatal(err)
	}
	got, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !slices.Equal(got, []string{"L.L", "LLL"}) {
		t.Fatalf("ReadFile = %q", got)
	}

	if _, err := ReadFile(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestWriteLines(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteLines(&buf, []string{"#.L", "L.#"}); err != nil {
		t.Fatalf("WriteLines: %v", err)
	}
	if got := buf.String(); got != "#.L\nL.#\n" {
		t.Fatalf("WriteLines wrote %q", got)
	}
}
