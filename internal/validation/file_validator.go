package validation

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"attestcli/internal/errors"
)

// FileValidator checks the processor's input workbook and output directory
// before a run starts, so path mistakes fail fast instead of surfacing as
// parser errors halfway through.
type FileValidator struct {
	logger *slog.Logger
}

// NewFileValidator creates a file validator.
func NewFileValidator(logger *slog.Logger) *FileValidator {
	if logger == nil {
		logger = slog.Default()
	}
	return &FileValidator{logger: logger}
}

// ValidateWorkbookPath checks that the path names an existing, non-empty
// Excel workbook.
func (v *FileValidator) ValidateWorkbookPath(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		v.logger.Error("Workbook not found", slog.String("path", path))
		return errors.NewNotFoundError(fmt.Sprintf("workbook %s does not exist", path), err)
	}
	if err != nil {
		return errors.NewValidationError(fmt.Sprintf("failed to stat workbook %s: %v", path, err))
	}
	if info.IsDir() {
		v.logger.Error("Workbook path is a directory", slog.String("path", path))
		return errors.NewValidationError(fmt.Sprintf("%s is a directory, not a workbook", path))
	}

	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".xlsx" && ext != ".xls" {
		v.logger.Error("Unsupported workbook extension",
			slog.String("path", path),
			slog.String("extension", ext))
		return errors.NewValidationError(fmt.Sprintf("unsupported workbook extension %q, expected .xlsx or .xls", ext))
	}

	if info.Size() == 0 {
		v.logger.Error("Workbook is empty", slog.String("path", path))
		return errors.NewValidationError(fmt.Sprintf("workbook %s is empty", path))
	}

	v.logger.Debug("Workbook path validated",
		slog.String("path", path),
		slog.Int64("size", info.Size()))
	return nil
}

// ValidateOutputDirectory checks that the output directory either exists as a
// writable directory or can be created.
func (v *FileValidator) ValidateOutputDirectory(dir string) error {
	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0755); err != nil {
			v.logger.Error("Failed to create output directory",
				slog.String("directory", dir),
				slog.String("error", err.Error()))
			return errors.NewStorageError(fmt.Sprintf("failed to create output directory %s", dir), err)
		}
		v.logger.Info("Created output directory", slog.String("directory", dir))
		return nil
	}
	if err != nil {
		return errors.NewValidationError(fmt.Sprintf("failed to stat output directory %s: %v", dir, err))
	}
	if !info.IsDir() {
		return errors.NewValidationError(fmt.Sprintf("output path %s is not a directory", dir))
	}

	// Probe writability with a throwaway file.
	probe := filepath.Join(dir, ".write_probe")
	f, err := os.Create(probe)
	if err != nil {
		v.logger.Error("Output directory is not writable",
			slog.String("directory", dir),
			slog.String("error", err.Error()))
		return errors.NewStorageError(fmt.Sprintf("output directory %s is not writable", dir), err)
	}
	f.Close()
	os.Remove(probe)
	return nil
}
