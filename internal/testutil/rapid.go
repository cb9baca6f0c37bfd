package testutil

import (
	"fmt"
	"os"
	"testing"

	"pgregory.net/rapid"
)

// RapidCheck wraps rapid.Check with the iteration count of the current
// test intensity. This is the recommended way to run property tests in
// this project.
//
// rapid v1.2.0 takes its iteration count from the RAPID_CHECKS
// environment variable rather than from per-call options, so the count
// is applied there. rapid also respects t.Deadline(), so tests run with
// -timeout stop cleanly.
func RapidCheck(t *testing.T, fn func(*rapid.T)) {
	t.Helper()

	config := GetTestConfig()
	os.Setenv("RAPID_CHECKS", fmt.Sprintf("%d", config.IterationCount))

	if config.VerboseOutput {
		t.Logf("Property test configured with %d iterations (intensity: %s)",
			config.IterationCount, config.Intensity)
	}

	rapid.Check(t, fn)
}

// RapidDepthGenerator returns a generator for maxDepth option values,
// including -1 for unlimited depth.
func RapidDepthGenerator(config TestConfig) *rapid.Generator[int] {
	return rapid.IntRange(-1, config.MaxDepth+1)
}

// RapidFilterGenerator returns a generator drawing from filter patterns
// that exercise empty, extension-anchored and substring matching.
func RapidFilterGenerator() *rapid.Generator[string] {
	return rapid.SampledFrom([]string{
		"",
		`\.txt$`,
		`\.log$`,
		`d0_`,
		`[a-m]`,
	})
}
