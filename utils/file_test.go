package utils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFileNameWithoutExt(t *testing.T) {
	cases := []struct{ in, want string }{
		{"report.pdf", "report"},
		{"/tmp/uploads/scan.v2.png", "scan.v2"},
		{"noextension", "noextension"},
		{".hidden", ".hidden"},
	}
	for _, tc := range cases {
		if got := FileNameWithoutExt(tc.in); got != tc.want {
			t.Errorf("FileNameWithoutExt(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSanitizeFileName(t *testing.T) {
	got := SanitizeFileName("my report (final) #2.pdf")
	if strings.ContainsAny(got, " ()#") {
		t.Errorf("unsafe characters survived: %q", got)
	}
	if got != "my_report__final___2.pdf" {
		t.Errorf("SanitizeFileName = %q", got)
	}
}

func TestWriteBlobWithTimestamp(t *testing.T) {
	dir := t.TempDir()
	path, err := WriteBlobWithTimestamp([]byte("payload"), "note.txt", dir)
	if err != nil {
		t.Fatalf("WriteBlobWithTimestamp failed: %v", err)
	}
	if filepath.Dir(path) != dir {
		t.Errorf("path %q not under %q", path, dir)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read archived file: %v", err)
	}
	if string(data) != "payload" {
		t.Errorf("archived content = %q", data)
	}
	if !strings.HasSuffix(path, ".txt") {
		t.Errorf("extension lost: %q", path)
	}
}
