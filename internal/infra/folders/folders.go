// Where: internal/infra/folders/folders.go
// What: Directory lister used to offer mapping targets.
// Why: List immediate subfolders with an optional base entry.
package folders

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Newmi1988/environmental/internal/domain/failure"
)

// Lister lists immediate subfolders of a base path.
type Lister struct {
	// IncludeBase appends the base path itself after its subfolders.
	IncludeBase bool
}

// ListFolders returns base-joined subfolder paths sorted by name.
// Symlinks that point to directories are included.
func (l Lister) ListFolders(base string) ([]string, error) {
	entries, err := os.ReadDir(base)
	if err != nil {
		return nil, fmt.Errorf("%w: list folders in %s: %w", failure.ErrIO, base, err)
	}
	var out []string
	for _, entry := range entries {
		path := filepath.Join(base, entry.Name())
		if entry.IsDir() {
			out = append(out, path)
			continue
		}
		if entry.Type()&os.ModeSymlink != 0 {
			if info, err := os.Stat(path); err == nil && info.IsDir() {
				out = append(out, path)
			}
		}
	}
	if l.IncludeBase {
		out = append(out, base)
	}
	return out, nil
}
