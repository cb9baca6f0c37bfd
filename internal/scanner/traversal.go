package scanner

import (
	"errors"
	"os"
	"regexp"

	"github.com/mialy/dirscan/internal/logger"
	"github.com/mialy/dirscan/internal/pathutil"
)

// frame is one unit of pending work for the iterative strategy: a
// directory still to be expanded and its depth relative to the base.
type frame struct {
	dir   string
	depth int
}

// walk accumulates the state of a single scan. Both traversal
// strategies feed the same expand step; they differ only in where
// pending directories are held (explicit stack vs. call stack), so they
// always report the same set of paths.
type walk struct {
	opts     Options
	re       *regexp.Regexp
	progress func(int)

	paths   []string
	scanned int
	skipped []SkipRecord
}

// iterate drains an explicit work stack, most recently pushed frame
// first. Sibling order within a directory follows the raw enumeration
// order of the filesystem.
func (w *walk) iterate(base string) {
	stack := []frame{{dir: base, depth: 0}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, sub := range w.expand(f.dir, f.depth) {
			stack = append(stack, frame{dir: sub, depth: f.depth + 1})
		}
	}
}

// recurse walks the tree on the call stack. Extremely deep trees carry
// a stack-growth cost the iterative strategy does not have.
func (w *walk) recurse(dir string, depth int) {
	for _, sub := range w.expand(dir, depth) {
		w.recurse(sub, depth+1)
	}
}

// expand opens one directory, reports its matching entries, and returns
// the subdirectories to descend into. A directory that cannot be opened
// or read is recorded as skipped and produces no children.
//
// Entry classification, per entry:
//   - subdirectory below the depth limit: queued for descent, and
//     reported with a trailing slash when FilesOnly is false
//   - subdirectory at or beyond the depth limit: never descended into,
//     but still reported when FilesOnly is false
//   - regular file: reported when it matches the filter
//   - anything else (symlinks, sockets, devices): ignored
func (w *walk) expand(dir string, depth int) []string {
	norm := pathutil.NormalizeDir(dir)
	if norm == "" {
		w.skip(dir, errors.New("empty directory path"))
		return nil
	}

	handle, err := os.Open(norm)
	if err != nil {
		w.skip(norm, err)
		return nil
	}
	entries, err := handle.ReadDir(-1)
	handle.Close()
	if err != nil {
		w.skip(norm, err)
		return nil
	}

	tooDeep := w.opts.MaxDepth >= 0 && depth >= w.opts.MaxDepth

	var subdirs []string
	for _, entry := range entries {
		name := entry.Name()
		if name == "." || name == ".." {
			continue
		}

		full := norm + name
		w.scanned++
		if w.progress != nil {
			w.progress(w.scanned)
		}

		if entry.IsDir() {
			if !tooDeep {
				subdirs = append(subdirs, full)
			}
			if !w.opts.FilesOnly {
				w.paths = append(w.paths, pathutil.MarkDir(full))
			}
			continue
		}

		if entry.Type().IsRegular() && w.matches(full) {
			w.paths = append(w.paths, full)
		}
	}

	return subdirs
}

// matches reports whether a path passes the compiled filter. A nil
// filter (empty pattern) matches everything. The filter is applied to
// the full normalized path, not just the base name.
func (w *walk) matches(path string) bool {
	return w.re == nil || w.re.MatchString(path)
}

// skip records a directory the traversal could not enter.
func (w *walk) skip(path string, err error) {
	logger.SkippedDir(path, err)
	w.skipped = append(w.skipped, SkipRecord{Path: path, Err: err})
}
