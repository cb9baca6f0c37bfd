package scanner

import (
	"math"
	"strings"
)

// SortOrder controls how scan results are ordered before they are
// returned.
type SortOrder int

const (
	// SortAscending orders results by ascending byte order.
	SortAscending SortOrder = iota
	// SortDescending orders results by descending byte order.
	SortDescending
	// SortNone leaves results in traversal order, which depends on the
	// strategy and the underlying directory enumeration order.
	SortNone
)

// String returns the configuration string for the sort order.
func (o SortOrder) String() string {
	switch o {
	case SortAscending:
		return "asc"
	case SortDescending:
		return "desc"
	case SortNone:
		return "none"
	default:
		return "unknown"
	}
}

// ParseSortOrder maps the configuration strings "asc", "desc" and
// "none" onto SortOrder values. The second return value reports whether
// the input was recognized; unrecognized input yields SortAscending.
func ParseSortOrder(s string) (SortOrder, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "asc":
		return SortAscending, true
	case "desc":
		return SortDescending, true
	case "none":
		return SortNone, true
	}
	return SortAscending, false
}

// Options holds the traversal configuration captured when a Scanner is
// created. The zero value is not the default configuration; use
// DefaultOptions.
type Options struct {
	// Recursion selects the call-stack traversal strategy instead of
	// the default explicit-stack iteration. Both strategies report the
	// same set of paths.
	Recursion bool

	// MaxDepth bounds the depth at which directories are still
	// descended into; -1 means unlimited. The base directory itself is
	// depth 0, its children depth 1. A directory at depth >= MaxDepth
	// is never opened, so entries inside it are unreachable, but the
	// directory's own entry is still reported when FilesOnly is false.
	MaxDepth int

	// Sort selects the result ordering applied after traversal.
	Sort SortOrder

	// FilesOnly, when true, reports regular files only. When false,
	// directory entries are reported too, each with a trailing slash.
	FilesOnly bool

	// Strict fails a scan that had to skip unreadable directories
	// instead of returning a degraded result.
	Strict bool
}

// DefaultOptions returns the canonical defaults: iterative traversal,
// unlimited depth, ascending sort, regular files only, best-effort
// skipping of unreadable directories.
func DefaultOptions() Options {
	return Options{
		Recursion: false,
		MaxDepth:  -1,
		Sort:      SortAscending,
		FilesOnly: true,
		Strict:    false,
	}
}

// ApplyOptionMap applies loosely typed option values on top of opts and
// returns the result. Only recognized keys whose values have the
// expected type take effect; unrecognized keys and type-mismatched
// values are silently ignored and the existing value kept. A bad value
// in a config file therefore degrades to the default rather than
// failing the program.
//
// Recognized keys (camelCase or snake_case): recursion, maxDepth, sort,
// filesOnly, strict.
func ApplyOptionMap(opts Options, raw map[string]any) Options {
	for key, value := range raw {
		switch key {
		case "recursion":
			if v, ok := value.(bool); ok {
				opts.Recursion = v
			}
		case "maxDepth", "max_depth":
			if v, ok := toInt(value); ok {
				opts.MaxDepth = v
			}
		case "sort":
			if s, ok := value.(string); ok {
				if order, valid := ParseSortOrder(s); valid {
					opts.Sort = order
				}
			}
		case "filesOnly", "files_only":
			if v, ok := value.(bool); ok {
				opts.FilesOnly = v
			}
		case "strict":
			if v, ok := value.(bool); ok {
				opts.Strict = v
			}
		}
	}
	return opts
}

// toInt accepts the integer representations that YAML and JSON decoders
// produce for numeric option values.
func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		if n == math.Trunc(n) {
			return int(n), true
		}
	}
	return 0, false
}
