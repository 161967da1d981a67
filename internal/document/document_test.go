package document

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestExtractText(t *testing.T) {
	tests := []struct {
		name       string
		file       string
		content    string
		wantFormat string
	}{
		{name: "markdown", file: "notes.md", content: "# Heading\n\nSome body text.", wantFormat: "md"},
		{name: "plain text", file: "report.txt", content: "Plain report contents.", wantFormat: "txt"},
		{name: "csv", file: "data.csv", content: "year,revenue\n2025,42", wantFormat: "csv"},
		{name: "unknown extension treated as text", file: "readme.rst", content: "Restructured text.", wantFormat: "rst"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Extract(writeTemp(t, tt.file, tt.content))
			if err != nil {
				t.Fatalf("Extract() error = %v", err)
			}
			if doc.Content != tt.content {
				t.Errorf("content = %q, want %q", doc.Content, tt.content)
			}
			if doc.Metadata.SourceFormat != tt.wantFormat {
				t.Errorf("format = %q, want %q", doc.Metadata.SourceFormat, tt.wantFormat)
			}
			if doc.Metadata.WordCount == 0 {
				t.Error("word count is zero")
			}
		})
	}
}

func TestExtractTitleFromFilename(t *testing.T) {
	doc, err := Extract(writeTemp(t, "q3-board-update.md", "content here"))
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if got := doc.Metadata.Title; got != "q3-board-update" {
		t.Errorf("title = %q, want %q", got, "q3-board-update")
	}
}

func TestExtractErrors(t *testing.T) {
	tests := []struct {
		name    string
		path    func(t *testing.T) string
		wantErr string
	}{
		{
			name:    "missing file",
			path:    func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope.txt") },
			wantErr: "not found",
		},
		{
			name:    "office format rejected",
			path:    func(t *testing.T) string { return writeTemp(t, "deck.docx", "zipbytes") },
			wantErr: "convert to PDF",
		},
		{
			name:    "empty file",
			path:    func(t *testing.T) string { return writeTemp(t, "empty.txt", "   \n\t ") },
			wantErr: "no readable text",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Extract(tt.path(t))
			if err == nil {
				t.Fatalf("Extract() succeeded, want error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Extract() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestPreviewTruncation(t *testing.T) {
	long := strings.Repeat("word ", 100)
	doc, err := Extract(writeTemp(t, "long.txt", long))
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if !strings.HasSuffix(doc.Preview, "...") {
		t.Error("long preview not truncated")
	}
	if len([]rune(doc.Preview)) > previewLen+3 {
		t.Errorf("preview length = %d, want at most %d", len([]rune(doc.Preview)), previewLen+3)
	}

	short, err := Extract(writeTemp(t, "short.txt", "tiny"))
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if short.Preview != "tiny" {
		t.Errorf("short preview = %q, want full content", short.Preview)
	}
}

func TestFileSizeHuman(t *testing.T) {
	tests := []struct {
		bytes int64
		want  string
	}{
		{bytes: 512, want: "512 B"},
		{bytes: 2048, want: "2.0 KB"},
		{bytes: 3 * 1024 * 1024, want: "3.0 MB"},
	}

	for _, tt := range tests {
		m := Metadata{FileSizeBytes: tt.bytes}
		if got := m.FileSizeHuman(); got != tt.want {
			t.Errorf("FileSizeHuman(%d) = %q, want %q", tt.bytes, got, tt.want)
		}
	}
}
