package document

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const previewLen = 280

// Extract reads a source file and returns its plain text. Supported
// formats: pdf (embedded text layer), txt, md, csv, json. Binary office
// formats are rejected with a convert-first message rather than producing
// garbage text.
func Extract(path string) (*Document, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("file not found: %s", path)
		}
		return nil, err
	}

	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(absPath)), ".")

	var content string
	var pageCount *int

	switch format {
	case "pdf":
		content, pageCount, err = extractPDF(absPath)
	case "txt", "md", "markdown", "csv", "json":
		content, err = extractText(absPath)
	case "docx", "pptx", "doc", "ppt":
		return nil, fmt.Errorf("%s files are not supported, convert to PDF or plain text first", strings.ToUpper(format))
	default:
		// Unknown extensions get the plain-text treatment; the caller
		// surfaces an input error if nothing readable comes out.
		content, err = extractText(absPath)
	}
	if err != nil {
		return nil, err
	}

	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("no readable text in %s", filepath.Base(absPath))
	}

	return &Document{
		Content: content,
		Preview: preview(content),
		Metadata: Metadata{
			Title:         strings.TrimSuffix(filepath.Base(absPath), filepath.Ext(absPath)),
			SourcePath:    absPath,
			SourceFormat:  format,
			FileSizeBytes: info.Size(),
			PageCount:     pageCount,
			WordCount:     len(strings.Fields(content)),
			ExtractedAt:   time.Now(),
		},
	}, nil
}

func extractText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}
	return string(data), nil
}

func preview(content string) string {
	runes := []rune(content)
	if len(runes) <= previewLen {
		return content
	}
	return string(runes[:previewLen]) + "..."
}
