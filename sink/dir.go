package sink

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// tempPattern names in-flight files; leftovers can be removed by hand.
const tempPattern = ".clientgen-*.tmp"

// Dir writes files below a directory on the local filesystem. Each file is
// written to a temporary file first and renamed into place.
type Dir struct {
	// Root is the base directory for all writes.
	Root string

	// Mode is the file permission mode (default: 0644).
	Mode os.FileMode

	// Overwrite replaces existing files. When false, writing a file that
	// exists is an error.
	Overwrite bool
}

// NewDir returns a Dir rooted at root that overwrites existing files.
func NewDir(root string) *Dir {
	return &Dir{Root: root, Mode: 0o644, Overwrite: true}
}

// WriteFile writes content to name below the root, creating parent
// directories as needed.
func (d *Dir) WriteFile(ctx context.Context, name string, content []byte) error {
	if err := ValidatePath(name); err != nil {
		return fmt.Errorf("invalid path %q: %w", name, err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	full, err := d.resolve(name)
	if err != nil {
		return err
	}
	dir := filepath.Dir(full)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create directories: %w", err)
	}

	tmp, err := os.CreateTemp(dir, tempPattern)
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	_, werr := tmp.Write(content)
	cerr := tmp.Close()
	if err := errors.Join(werr, cerr); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	mode := d.Mode
	if mode == 0 {
		mode = 0o644
	}
	if err := os.Chmod(tmpName, mode); err != nil {
		return fmt.Errorf("set file mode: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if d.Overwrite {
		if err := os.Rename(tmpName, full); err != nil {
			return fmt.Errorf("rename temp file: %w", err)
		}
		committed = true
		return nil
	}
	// Link fails atomically when the target exists.
	if err := os.Link(tmpName, full); err != nil {
		if errors.Is(err, os.ErrExist) {
			return fmt.Errorf("file already exists: %q", name)
		}
		return fmt.Errorf("create file: %w", err)
	}
	return nil
}

// resolve joins name to the root and rejects results outside of it.
func (d *Dir) resolve(name string) (string, error) {
	root, err := filepath.Abs(d.Root)
	if err != nil {
		return "", fmt.Errorf("resolve root directory: %w", err)
	}
	full := filepath.Join(root, filepath.FromSlash(name))
	if !strings.HasPrefix(full, root+string(filepath.Separator)) {
		return "", fmt.Errorf("path escapes root directory: %q", name)
	}
	return full, nil
}
