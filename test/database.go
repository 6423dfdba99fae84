package test

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"
)

// TmpFile returns the path for a fresh database file. Every test gets
// its own file under t.TempDir, so tests never share state and the
// files are cleaned up with the test.
func TmpFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), uuid.NewString()+".db")
}
