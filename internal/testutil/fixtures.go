package testutil

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pgregory.net/rapid"
)

// TB is the subset of testing.TB that rapid.T also implements, letting
// the fixture helpers run inside both unit tests and property tests.
type TB interface {
	Helper()
	Fatalf(format string, args ...any)
}

// WriteTree materializes a directory tree under root. Each element of
// paths is relative to root with forward-slash separators; elements
// ending with a slash are directories, everything else is a regular
// file (parent directories are created as needed).
func WriteTree(t TB, root string, paths []string) {
	t.Helper()

	for _, p := range paths {
		full := filepath.Join(root, filepath.FromSlash(strings.TrimSuffix(p, "/")))
		if strings.HasSuffix(p, "/") {
			if err := os.MkdirAll(full, 0755); err != nil {
				t.Fatalf("Failed to create directory %s: %v", full, err)
			}
			continue
		}
		if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
			t.Fatalf("Failed to create parent directory for %s: %v", full, err)
		}
		if err := os.WriteFile(full, []byte("x"), 0644); err != nil {
			t.Fatalf("Failed to create file %s: %v", full, err)
		}
	}
}

// CreateTree creates a temporary directory, materializes the given tree
// inside it, and returns its path. Cleanup is handled by t.TempDir().
func CreateTree(t *testing.T, paths []string) string {
	t.Helper()

	dir := t.TempDir()
	WriteTree(t, dir, paths)
	return dir
}

// TreePaths draws a random relative tree description for property
// tests: directory elements end with a slash and always precede their
// children. Generated names are unique within each directory, with
// files and directories kept in distinct namespaces so the tree can
// always be materialized.
func TreePaths(t *rapid.T, config TestConfig) []string {
	var paths []string

	var gen func(prefix string, depth int)
	gen = func(prefix string, depth int) {
		nFiles := rapid.IntRange(0, config.MaxFilesPerDir).Draw(t, "fileCount")
		for i := 0; i < nFiles; i++ {
			name := rapid.StringMatching(`[a-z]{1,6}`).Draw(t, "fileName")
			ext := rapid.SampledFrom([]string{".txt", ".log", ".dat"}).Draw(t, "fileExt")
			paths = append(paths, fmt.Sprintf("%sf%d_%s%s", prefix, i, name, ext))
		}

		if depth >= config.MaxDepth {
			return
		}
		nDirs := rapid.IntRange(0, config.MaxDirsPerLevel).Draw(t, "dirCount")
		for i := 0; i < nDirs; i++ {
			name := rapid.StringMatching(`[a-z]{1,6}`).Draw(t, "dirName")
			dir := fmt.Sprintf("%sd%d_%s/", prefix, i, name)
			paths = append(paths, dir)
			gen(dir, depth+1)
		}
	}
	gen("", 0)

	return paths
}

// AllRegularFiles walks base with filepath.WalkDir and returns every
// regular file beneath it, with forward-slash separators. It serves as
// an independent oracle for scanner results.
func AllRegularFiles(t TB, base string) []string {
	t.Helper()

	var files []string
	err := filepath.WalkDir(base, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type().IsRegular() {
			files = append(files, strings.ReplaceAll(path, "\\", "/"))
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Failed to walk %s: %v", base, err)
	}
	return files
}
