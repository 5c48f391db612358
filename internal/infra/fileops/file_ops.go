// Where: internal/infra/fileops/file_ops.go
// What: Shared filesystem writes for config, mapping, schema and .env files.
// Why: Keep permissions and directory handling consistent across writers.
package fileops

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	dirPerm  os.FileMode = 0o755
	filePerm os.FileMode = 0o644
)

func EnsureDir(path string) error {
	return os.MkdirAll(path, dirPerm)
}

// WriteFile creates parent directories and overwrites path in place.
// The write is not atomic; a crash mid-write can truncate the file.
func WriteFile(path string, content []byte) error {
	if err := EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}
	return os.WriteFile(path, content, filePerm)
}

// WriteIntoDir overwrites name inside an existing directory.
// The directory is never created.
func WriteIntoDir(dir, name string, content []byte) error {
	info, err := os.Stat(dir)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}
	return os.WriteFile(filepath.Join(dir, name), content, filePerm)
}

func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
