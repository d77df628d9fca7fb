package files

import (
	"fmt"
	"io"
	"os"
)

func Exists(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return true, nil
	} else if os.IsNotExist(err) {
		return false, nil
	} else {
		return false, fmt.Errorf("Failed to determine if %s exists: %w", path, err)
	}
}

func CopyFile(src string, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("Failed to open %s while copying to %s: %w", src, dest, err)
	}
	defer in.Close()

	out, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("Failed to create %s while copying %s: %w", dest, src, err)
	}
	defer out.Close()

	_, err = io.Copy(out, in)
	if err != nil {
		return fmt.Errorf("Failed to copy %s to %s: %w", src, dest, err)
	}
	return out.Close()
}

// TempCopy copies src into a hidden temporary file in the current directory
// and returns its path plus a cleanup function. The copy lives inside the
// build context so docker can COPY it, and it shields the original from
// concurrent modification while a build is running. Cleanup is safe to call
// on every exit path; for an empty src it returns an empty path and a no-op.
func TempCopy(src string) (string, func(), error) {
	if src == "" {
		return "", func() {}, nil
	}

	tmp, err := os.CreateTemp(".", ".skiff-tmp-*")
	if err != nil {
		return "", nil, fmt.Errorf("Failed to create temporary copy of %s: %w", src, err)
	}
	if err := tmp.Close(); err != nil {
		return "", nil, err
	}

	if err := CopyFile(src, tmp.Name()); err != nil {
		os.Remove(tmp.Name())
		return "", nil, err
	}

	return tmp.Name(), func() { os.Remove(tmp.Name()) }, nil
}
