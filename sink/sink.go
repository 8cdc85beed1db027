// Package sink provides destinations for generated source files.
package sink

import (
	"context"
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"strings"
)

// Sink receives generated files. Implementations must be safe for
// concurrent calls.
type Sink interface {
	// WriteFile stores content under the slash-separated relative name.
	WriteFile(ctx context.Context, name string, content []byte) error
}

// ValidatePath reports whether name is a clean, relative, slash-separated
// path that stays below the sink root.
func ValidatePath(name string) error {
	switch {
	case name == "":
		return errors.New("path is empty")
	case filepath.IsAbs(name), strings.HasPrefix(name, "/"), isDriveLetter(name):
		return errors.New("absolute paths not allowed")
	case strings.Contains(name, `\`):
		return errors.New("path must use / as separator")
	}
	for _, seg := range strings.Split(name, "/") {
		if seg == ".." {
			return errors.New("path traversal not allowed")
		}
	}
	if cleaned := path.Clean(name); cleaned != name {
		return fmt.Errorf("path is not clean (expected %q, got %q)", cleaned, name)
	}
	return nil
}

func isDriveLetter(name string) bool {
	if len(name) < 2 || name[1] != ':' {
		return false
	}
	c := name[0] | 0x20
	return c >= 'a' && c <= 'z'
}
