package validation

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wellpulse/internal/errors"
)

func newValidator() *FileValidator {
	return NewFileValidator(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestValidateFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "survey.xlsx")
	require.NoError(t, os.WriteFile(path, []byte("content"), 0644))

	v := newValidator()
	assert.NoError(t, v.ValidateFile(path))
}

func TestValidateFileMissing(t *testing.T) {
	v := newValidator()
	err := v.ValidateFile(filepath.Join(t.TempDir(), "missing.xlsx"))
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrTypeNotFound))
}

func TestValidateFileDirectory(t *testing.T) {
	v := newValidator()
	err := v.ValidateFile(t.TempDir())
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrTypeValidation))
}

func TestValidateExcelFile(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name     string
		file     string
		wantErr  bool
		wantType errors.ErrorType
	}{
		{name: "xlsx accepted", file: "survey.xlsx", wantErr: false},
		{name: "xls accepted", file: "survey.xls", wantErr: false},
		{name: "wrong extension", file: "survey.csv", wantErr: true, wantType: errors.ErrTypeValidation},
		{name: "excel lock file", file: "~$survey.xlsx", wantErr: true, wantType: errors.ErrTypeValidation},
	}

	v := newValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.file)
			require.NoError(t, os.WriteFile(path, []byte("content"), 0644))

			err := v.ValidateExcelFile(path)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.IsType(err, tt.wantType))
		})
	}
}

func TestValidateOutputDirectoryCreates(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "charts", "nested")

	v := newValidator()
	require.NoError(t, v.ValidateOutputDirectory(dir))
	assert.DirExists(t, dir)

	// The write probe must not linger.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestValidateOutputDirectoryExisting(t *testing.T) {
	dir := t.TempDir()
	v := newValidator()
	assert.NoError(t, v.ValidateOutputDirectory(dir))
}
