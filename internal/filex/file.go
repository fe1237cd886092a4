// Package filex holds small filesystem helpers.
package filex

import (
	"errors"
	"fmt"
	"os"
)

// ErrNotRegular is returned for paths that exist but are not regular files.
var ErrNotRegular = errors.New("not a regular file")

// Size returns the size in bytes of the regular file at path.
func Size(path string) (int64, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("stat %s: %w", path, err)
	}

	if !fi.Mode().IsRegular() {
		return 0, fmt.Errorf("%s: %w", path, ErrNotRegular)
	}

	return fi.Size(), nil
}
