package gen

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteUnit writes u into outputDir, creating the directory if it doesn't
// exist and truncating any existing file. The file is closed on every path;
// a failure part way leaves whatever was written so far.
func WriteUnit(u *Unit, outputDir string) (_ string, err error) {
	if err := os.MkdirAll(outputDir, dirPerm); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	target := filepath.Join(outputDir, u.Filename)

	f, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, filePerm)
	if err != nil {
		return "", fmt.Errorf("opening file %s: %w", u.Filename, err)
	}

	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing file %s: %w", u.Filename, cerr)
		}
	}()

	w := bufio.NewWriter(f)

	if _, err := w.Write(u.Content); err != nil {
		return "", fmt.Errorf("writing file %s: %w", u.Filename, err)
	}

	if err := w.Flush(); err != nil {
		return "", fmt.Errorf("writing file %s: %w", u.Filename, err)
	}

	return target, nil
}
