package romloader

import (
	"fmt"
	"path/filepath"

	"github.com/bodgit/sevenzip"
)

// extractFrom7z extracts the first .ch8 file from a 7z archive
func extractFrom7z(path string) ([]byte, string, error) {
	r, err := sevenzip.OpenReader(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open 7z: %w", err)
	}
	defer r.Close()

	for _, file := range r.File {
		if file.FileInfo().IsDir() {
			continue
		}
		if !isROMFile(file.Name) {
			continue
		}

		rc, err := file.Open()
		if err != nil {
			return nil, "", fmt.Errorf("failed to open %s: %w", file.Name, err)
		}
		data, err := limitedRead(rc)
		rc.Close()
		if err != nil {
			return nil, "", fmt.Errorf("failed to read %s: %w", file.Name, err)
		}
		return data, filepath.Base(file.Name), nil
	}

	return nil, "", ErrNoROMFile
}
