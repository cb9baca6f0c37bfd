// Package testutil provides utilities for configuring and running the
// test suite at different intensity levels, and for materializing
// directory trees used by scanner tests.
package testutil

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// TestIntensity represents the thoroughness level of test execution.
type TestIntensity int

const (
	// IntensityQuick runs tests with small trees for fast feedback during development.
	IntensityQuick TestIntensity = iota
	// IntensityThorough runs tests with larger trees for comprehensive validation in CI.
	IntensityThorough
)

// String returns the string representation of the test intensity.
func (ti TestIntensity) String() string {
	switch ti {
	case IntensityQuick:
		return "quick"
	case IntensityThorough:
		return "thorough"
	default:
		return "unknown"
	}
}

// TestConfig holds configuration parameters for test execution.
type TestConfig struct {
	// Intensity level (quick or thorough)
	Intensity TestIntensity

	// Number of iterations for property tests
	IterationCount int

	// Maximum number of files generated per directory
	MaxFilesPerDir int

	// Maximum number of subdirectories generated per directory
	MaxDirsPerLevel int

	// Maximum depth of generated directory trees
	MaxDepth int

	// Timeout duration for individual tests
	Timeout time.Duration

	// Enable verbose test output
	VerboseOutput bool
}

// GetTestConfig returns the current test configuration based on the
// TEST_INTENSITY, TEST_QUICK and VERBOSE_TESTS environment variables.
// Defaults to quick mode when none are set.
func GetTestConfig() TestConfig {
	config := TestConfig{}

	// TEST_QUICK override takes precedence over TEST_INTENSITY
	if ParseBool(os.Getenv("TEST_QUICK")) {
		config.Intensity = IntensityQuick
	} else {
		config.Intensity = ParseIntensity(os.Getenv("TEST_INTENSITY"))
	}

	switch config.Intensity {
	case IntensityQuick:
		config.IterationCount = 20
		config.MaxFilesPerDir = 4
		config.MaxDirsPerLevel = 2
		config.MaxDepth = 3
		config.Timeout = 30 * time.Second
	case IntensityThorough:
		config.IterationCount = 100
		config.MaxFilesPerDir = 10
		config.MaxDirsPerLevel = 3
		config.MaxDepth = 5
		config.Timeout = 5 * time.Minute
	}

	config.VerboseOutput = ParseBool(os.Getenv("VERBOSE_TESTS"))

	return config
}

// ParseIntensity parses a string into a TestIntensity value.
// Returns IntensityQuick for invalid or empty strings.
func ParseIntensity(s string) TestIntensity {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "thorough":
		return IntensityThorough
	default:
		return IntensityQuick
	}
}

// ParseBool parses a string into a boolean value.
// Accepts "1", "true", "yes" (case-insensitive) as true.
func ParseBool(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "1" || s == "true" || s == "yes" {
		return true
	}
	if i, err := strconv.Atoi(s); err == nil && i != 0 {
		return true
	}
	return false
}

var testConfig TestConfig

func init() {
	testConfig = GetTestConfig()

	fmt.Printf("Test intensity mode: %s\n", testConfig.Intensity)
}
