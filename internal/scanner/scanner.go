// Package scanner implements configurable directory tree traversal: it
// enumerates the regular files (and optionally the directories) beneath
// a base directory, bounded by a depth limit, filtered by a regular
// expression, and returned in a chosen order.
//
// Traversal is best-effort by default: a subtree that cannot be opened
// is skipped and recorded, and the scan continues with its siblings.
package scanner

import (
	"fmt"
	"regexp"
	"sort"

	"github.com/samber/lo"

	"github.com/mialy/dirscan/internal/logger"
)

// Scanner owns a fixed traversal configuration and scans its base
// directory on demand. Construction performs no I/O; the base directory
// is not touched until Scan runs. A Scanner may be reused across any
// number of scans, and each scan is independent of prior ones.
type Scanner struct {
	baseDir  string
	opts     Options
	progress func(int)
}

// SkipRecord describes a directory the traversal could not enter, for
// example because of permissions, because it vanished mid-scan, or
// because the path is not a directory at all.
type SkipRecord struct {
	Path string
	Err  error
}

// Result is the detailed outcome of a single scan.
type Result struct {
	// Paths holds the matched entries, ordered per the Sort option.
	// Reported directories carry a trailing slash.
	Paths []string

	// Scanned is the number of directory entries examined.
	Scanned int

	// Skipped lists the directories the traversal could not enter.
	// Their subtrees are absent from Paths.
	Skipped []SkipRecord
}

// NewScanner creates a Scanner rooted at baseDir with the given
// options. Use DefaultOptions as the starting point and adjust fields,
// or ApplyOptionMap for loosely typed configuration input.
func NewScanner(baseDir string, opts Options) *Scanner {
	return &Scanner{
		baseDir: baseDir,
		opts:    opts,
	}
}

// BaseDir returns the traversal root the scanner was created with.
func (s *Scanner) BaseDir() string {
	return s.baseDir
}

// Options returns a copy of the scanner's configuration.
func (s *Scanner) Options() Options {
	return s.opts
}

// SetProgress installs a hook invoked with the running entry count as
// the traversal examines directory entries. Pass nil to disable. The
// hook is called from the scanning goroutine.
func (s *Scanner) SetProgress(fn func(int)) {
	s.progress = fn
}

// Scan traverses the base directory and returns the matching paths.
//
// The filter is a regular expression matched against the full
// normalized path of each regular file; the empty string matches
// everything. A malformed filter fails the scan. A base directory that
// does not exist or cannot be opened yields an empty result, not an
// error, unless the Strict option is set.
func (s *Scanner) Scan(filter string) ([]string, error) {
	res, err := s.ScanDetailed(filter)
	if err != nil {
		return nil, err
	}
	return res.Paths, nil
}

// ScanDetailed is Scan plus the entry count and the skipped-directory
// records accumulated during traversal.
func (s *Scanner) ScanDetailed(filter string) (*Result, error) {
	var re *regexp.Regexp
	if filter != "" {
		var err error
		re, err = regexp.Compile(filter)
		if err != nil {
			return nil, fmt.Errorf("invalid filter pattern %q: %w", filter, err)
		}
	}

	logger.Debug("starting scan",
		"base", s.baseDir,
		"recursion", s.opts.Recursion,
		"maxDepth", s.opts.MaxDepth,
		"filesOnly", s.opts.FilesOnly)

	w := &walk{
		opts:     s.opts,
		re:       re,
		progress: s.progress,
		paths:    make([]string, 0),
	}

	if s.opts.Recursion {
		w.recurse(s.baseDir, 0)
	} else {
		w.iterate(s.baseDir)
	}

	if s.opts.Strict && len(w.skipped) > 0 {
		first := w.skipped[0]
		return nil, fmt.Errorf("scan skipped %d directories, first %s: %w",
			len(w.skipped), first.Path, first.Err)
	}

	switch s.opts.Sort {
	case SortAscending:
		sort.Strings(w.paths)
	case SortDescending:
		sort.Strings(w.paths)
		w.paths = lo.Reverse(w.paths)
	}

	logger.Debug("scan complete",
		"found", len(w.paths),
		"scanned", w.scanned,
		"skipped", len(w.skipped))

	return &Result{
		Paths:   w.paths,
		Scanned: w.scanned,
		Skipped: w.skipped,
	}, nil
}
