// Package pathutil implements the path conventions used throughout the
// scanner: forward-slash separators regardless of platform, exactly one
// trailing slash on directory paths being traversed, and a trailing
// slash marker on reported directory entries.
package pathutil

import "strings"

// NormalizeDir converts a directory path to its canonical traversal
// form: backslashes become forward slashes, trailing slashes are
// stripped, then exactly one trailing slash is appended.
//
// An empty input stays empty so that it cannot silently normalize to
// the filesystem root.
func NormalizeDir(path string) string {
	if path == "" {
		return ""
	}
	p := strings.ReplaceAll(path, "\\", "/")
	p = strings.TrimRight(p, "/")
	return p + "/"
}

// JoinEntry appends a directory entry name to its parent directory,
// normalizing the parent first.
func JoinEntry(dir, name string) string {
	return NormalizeDir(dir) + name
}

// MarkDir returns the reported form of a directory entry, which carries
// a single trailing slash.
func MarkDir(path string) string {
	return strings.TrimRight(path, "/") + "/"
}

// Depth counts the path separators in a path. Comparing the depth of an
// entry against the depth of the base directory gives the number of
// descent steps between them.
func Depth(path string) int {
	count := 0
	for _, c := range path {
		if c == '/' || c == '\\' {
			count++
		}
	}
	return count
}

// RelativeDepth returns the number of descent steps from base to path.
// Trailing slashes on either argument do not affect the result.
func RelativeDepth(base, path string) int {
	b := strings.TrimRight(strings.ReplaceAll(base, "\\", "/"), "/")
	p := strings.TrimRight(strings.ReplaceAll(path, "\\", "/"), "/")
	return Depth(p) - Depth(b)
}
