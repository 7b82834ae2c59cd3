package intake

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, content, 0o600))
	return path
}

func TestReadEncodesPayload(t *testing.T) {
	content := []byte("plain text resume")
	path := writeFile(t, "resume.txt", content)

	file, err := Read(path)
	require.NoError(t, err)

	assert.Equal(t, "resume.txt", file.Name)
	assert.Equal(t, "text/plain", file.Type)
	assert.Equal(t, base64.StdEncoding.EncodeToString(content), file.Data)
}

func TestReadMapsExtensionsToMIME(t *testing.T) {
	tests := []struct {
		name string
		mime string
	}{
		{"resume.pdf", "application/pdf"},
		{"resume.PDF", "application/pdf"},
		{"resume.docx", "application/vnd.openxmlformats-officedocument.wordprocessingml.document"},
	}

	for _, tt := range tests {
		path := writeFile(t, tt.name, []byte("x"))
		file, err := Read(path)
		require.NoError(t, err)
		assert.Equal(t, tt.mime, file.Type, "file %s", tt.name)
	}
}

func TestReadRejectsUnsupportedType(t *testing.T) {
	path := writeFile(t, "resume.png", []byte("x"))

	_, err := Read(path)
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestReadRejectsOversizedFile(t *testing.T) {
	path := writeFile(t, "resume.txt", make([]byte, MaxSize+1))

	_, err := Read(path)
	assert.ErrorIs(t, err, ErrTooLarge)
}

func TestReadMissingFile(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "missing.pdf"))
	assert.Error(t, err)
}
