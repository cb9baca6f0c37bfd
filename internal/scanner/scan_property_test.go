package scanner

import (
	"os"
	"reflect"
	"regexp"
	"sort"
	"testing"

	"pgregory.net/rapid"

	"github.com/mialy/dirscan/internal/pathutil"
	"github.com/mialy/dirscan/internal/testutil"
)

// scanTree materializes a generated tree in a fresh temporary directory
// and returns its path plus a cleanup function.
func scanTree(t *rapid.T, paths []string) (string, func()) {
	base, err := os.MkdirTemp("", "dirscan-prop")
	if err != nil {
		t.Fatalf("Failed to create temp directory: %v", err)
	}
	testutil.WriteTree(t, base, paths)
	return base, func() { os.RemoveAll(base) }
}

func regexpMustCompile(t *rapid.T, pattern string) *regexp.Regexp {
	re, err := regexp.Compile(pattern)
	if err != nil {
		t.Fatalf("Generated filter %q does not compile: %v", pattern, err)
	}
	return re
}

func TestScanProperty_StrategiesReportIdenticalSets(t *testing.T) {
	config := testutil.GetTestConfig()

	testutil.RapidCheck(t, func(rt *rapid.T) {
		base, cleanup := scanTree(rt, testutil.TreePaths(rt, config))
		defer cleanup()

		opts := DefaultOptions()
		opts.Sort = SortNone
		opts.MaxDepth = testutil.RapidDepthGenerator(config).Draw(rt, "maxDepth")
		opts.FilesOnly = rapid.Bool().Draw(rt, "filesOnly")
		filter := testutil.RapidFilterGenerator().Draw(rt, "filter")

		iterative, err := NewScanner(base, opts).Scan(filter)
		if err != nil {
			rt.Fatalf("Iterative scan failed: %v", err)
		}

		opts.Recursion = true
		recursive, err := NewScanner(base, opts).Scan(filter)
		if err != nil {
			rt.Fatalf("Recursive scan failed: %v", err)
		}

		sort.Strings(iterative)
		sort.Strings(recursive)
		if !reflect.DeepEqual(iterative, recursive) {
			rt.Fatalf("Strategies disagree:\niterative: %v\nrecursive: %v", iterative, recursive)
		}
	})
}

func TestScanProperty_SortOrdersAgree(t *testing.T) {
	config := testutil.GetTestConfig()

	testutil.RapidCheck(t, func(rt *rapid.T) {
		base, cleanup := scanTree(rt, testutil.TreePaths(rt, config))
		defer cleanup()

		opts := DefaultOptions()
		opts.FilesOnly = rapid.Bool().Draw(rt, "filesOnly")
		filter := testutil.RapidFilterGenerator().Draw(rt, "filter")

		scan := func(order SortOrder) []string {
			opts.Sort = order
			paths, err := NewScanner(base, opts).Scan(filter)
			if err != nil {
				rt.Fatalf("Scan failed: %v", err)
			}
			return paths
		}

		asc := scan(SortAscending)
		desc := scan(SortDescending)
		none := scan(SortNone)

		reversed := make([]string, len(desc))
		for i, p := range desc {
			reversed[len(desc)-1-i] = p
		}
		if !reflect.DeepEqual(reversed, asc) {
			rt.Fatalf("Descending is not the reverse of ascending:\nasc: %v\ndesc: %v", asc, desc)
		}

		noneSorted := append([]string(nil), none...)
		sort.Strings(noneSorted)
		if !reflect.DeepEqual(noneSorted, asc) {
			rt.Fatalf("Unsorted result is not a permutation of ascending:\nnone: %v\nasc: %v", none, asc)
		}
	})
}

func TestScanProperty_UnlimitedDepthMatchesWalkOracle(t *testing.T) {
	config := testutil.GetTestConfig()

	testutil.RapidCheck(t, func(rt *rapid.T) {
		base, cleanup := scanTree(rt, testutil.TreePaths(rt, config))
		defer cleanup()

		paths, err := NewScanner(base, DefaultOptions()).Scan("")
		if err != nil {
			rt.Fatalf("Scan failed: %v", err)
		}

		expected := testutil.AllRegularFiles(rt, base)
		sort.Strings(expected)
		if !reflect.DeepEqual(paths, expected) {
			rt.Fatalf("Scan disagrees with WalkDir oracle:\nscan: %v\noracle: %v", paths, expected)
		}
	})
}

func TestScanProperty_DepthBoundHolds(t *testing.T) {
	config := testutil.GetTestConfig()

	testutil.RapidCheck(t, func(rt *rapid.T) {
		base, cleanup := scanTree(rt, testutil.TreePaths(rt, config))
		defer cleanup()

		maxDepth := rapid.IntRange(0, config.MaxDepth).Draw(rt, "maxDepth")

		opts := DefaultOptions()
		opts.MaxDepth = maxDepth
		opts.FilesOnly = rapid.Bool().Draw(rt, "filesOnly")

		paths, err := NewScanner(base, opts).Scan("")
		if err != nil {
			rt.Fatalf("Scan failed: %v", err)
		}

		// Entries live at most one level below the deepest directory
		// that is still opened.
		for _, p := range paths {
			if rel := pathutil.RelativeDepth(base, p); rel > maxDepth+1 {
				rt.Fatalf("Entry %s at relative depth %d exceeds bound %d", p, rel, maxDepth+1)
			}
		}
	})
}

func TestScanProperty_FilterSelectsExactlyMatchingFiles(t *testing.T) {
	config := testutil.GetTestConfig()

	testutil.RapidCheck(t, func(rt *rapid.T) {
		base, cleanup := scanTree(rt, testutil.TreePaths(rt, config))
		defer cleanup()

		filter := testutil.RapidFilterGenerator().Draw(rt, "filter")

		paths, err := NewScanner(base, DefaultOptions()).Scan(filter)
		if err != nil {
			rt.Fatalf("Scan failed: %v", err)
		}

		expected := testutil.AllRegularFiles(rt, base)
		if filter != "" {
			re := regexpMustCompile(rt, filter)
			kept := expected[:0]
			for _, p := range expected {
				if re.MatchString(p) {
					kept = append(kept, p)
				}
			}
			expected = kept
		}
		sort.Strings(expected)

		if !reflect.DeepEqual(paths, expected) {
			rt.Fatalf("Filter mismatch for %q:\nscan: %v\nexpected: %v", filter, paths, expected)
		}
	})
}
