package files

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"attestcli/internal/errors"
)

// WorkbookInfo describes one discovered workbook candidate.
type WorkbookInfo struct {
	Path    string
	Name    string
	Size    int64
	ModTime time.Time
}

// Discovery locates attestation workbooks on disk. Paths passed to its
// methods are resolved against the base path unless already absolute.
type Discovery struct {
	basePath string
}

// NewDiscovery creates a discovery instance rooted at the given base path.
func NewDiscovery(basePath string) *Discovery {
	return &Discovery{basePath: basePath}
}

func (d *Discovery) resolve(dir string) string {
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(d.basePath, dir)
}

// FindWorkbooks lists the Excel workbooks in the given directory, newest
// first. Temporary Office lock files (the "~$" prefix) are skipped.
func (d *Discovery) FindWorkbooks(dir string) ([]WorkbookInfo, error) {
	fullPath := d.resolve(dir)
	entries, err := os.ReadDir(fullPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", fullPath, err)
	}

	var books []WorkbookInfo
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		lower := strings.ToLower(name)
		if !strings.HasSuffix(lower, ".xlsx") && !strings.HasSuffix(lower, ".xls") {
			continue
		}
		if strings.HasPrefix(name, "~$") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		books = append(books, WorkbookInfo{
			Path:    filepath.Join(fullPath, name),
			Name:    name,
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}

	sort.Slice(books, func(i, j int) bool {
		return books[i].ModTime.After(books[j].ModTime)
	})
	return books, nil
}

// FindWorkbook resolves the workbook to process: the named file when it
// exists in the directory, otherwise the most recently modified workbook.
// Directories without a single workbook yield a not-found error.
func (d *Discovery) FindWorkbook(dir, preferredName string) (WorkbookInfo, error) {
	books, err := d.FindWorkbooks(dir)
	if err != nil {
		return WorkbookInfo{}, err
	}
	if preferredName != "" {
		for _, b := range books {
			if b.Name == preferredName {
				return b, nil
			}
		}
	}
	if len(books) == 0 {
		return WorkbookInfo{}, errors.NewNotFoundError(
			fmt.Sprintf("no workbook found in %s", d.resolve(dir)), nil)
	}
	return books[0], nil
}
