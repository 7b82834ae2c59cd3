// Package intake turns a document on disk into the opaque payload the
// assistant actions consume. Files are validated by extension and size only;
// their content is never parsed.
package intake

import (
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/resumepilot/resumepilot/internal/ai"
)

// MaxSize is the largest accepted document, 5 MiB.
const MaxSize = 5 * 1024 * 1024

var (
	// ErrUnsupportedType is returned for anything other than pdf, docx or txt.
	ErrUnsupportedType = errors.New("only PDF, DOCX and TXT files are supported")
	// ErrTooLarge is returned when the file exceeds MaxSize.
	ErrTooLarge = errors.New("file size must be under 5MB")
)

var mimeByExtension = map[string]string{
	".pdf":  "application/pdf",
	".txt":  "text/plain",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

// Read validates the file at path and returns its payload, base64-encoded.
// Validation failures never reach the gate or the provider.
func Read(path string) (ai.FileData, error) {
	ext := strings.ToLower(filepath.Ext(path))
	mimeType, ok := mimeByExtension[ext]
	if !ok {
		return ai.FileData{}, ErrUnsupportedType
	}

	info, err := os.Stat(path)
	if err != nil {
		return ai.FileData{}, fmt.Errorf("reading %q: %w", path, err)
	}
	if info.Size() > MaxSize {
		return ai.FileData{}, ErrTooLarge
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return ai.FileData{}, fmt.Errorf("reading %q: %w", path, err)
	}

	return ai.FileData{
		Name: filepath.Base(path),
		Type: mimeType,
		Data: base64.StdEncoding.EncodeToString(raw),
	}, nil
}
