package validation

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "attestcli/internal/errors"
)

func newValidator() *FileValidator {
	return NewFileValidator(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestValidateWorkbookPath(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "book.xlsx")
	require.NoError(t, os.WriteFile(good, []byte("content"), 0644))
	empty := filepath.Join(dir, "empty.xlsx")
	require.NoError(t, os.WriteFile(empty, nil, 0644))
	wrongExt := filepath.Join(dir, "book.csv")
	require.NoError(t, os.WriteFile(wrongExt, []byte("content"), 0644))

	v := newValidator()

	tests := []struct {
		name    string
		path    string
		wantErr string
	}{
		{"valid workbook", good, ""},
		{"missing file", filepath.Join(dir, "nope.xlsx"), "does not exist"},
		{"directory", dir, "is a directory"},
		{"wrong extension", wrongExt, "unsupported workbook extension"},
		{"empty file", empty, "is empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateWorkbookPath(tt.path)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateWorkbookPath_MissingFileErrorType(t *testing.T) {
	v := newValidator()
	err := v.ValidateWorkbookPath(filepath.Join(t.TempDir(), "nope.xlsx"))
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrTypeNotFound, appErr.Type)
}

func TestValidateWorkbookPath_UppercaseExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "BOOK.XLSX")
	require.NoError(t, os.WriteFile(path, []byte("content"), 0644))

	assert.NoError(t, newValidator().ValidateWorkbookPath(path))
}

func TestValidateOutputDirectory_CreatesMissing(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports", "run1")
	require.NoError(t, newValidator().ValidateOutputDirectory(dir))
	assert.DirExists(t, dir)
}

func TestValidateOutputDirectory_ExistingDirectory(t *testing.T) {
	assert.NoError(t, newValidator().ValidateOutputDirectory(t.TempDir()))
}

func TestValidateOutputDirectory_FileInTheWay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))

	err := newValidator().ValidateOutputDirectory(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a directory")
}
