// Package progress provides in-place progress reporting for long scans
// and the number and duration formatting used by the CLI summary.
package progress

import (
	"fmt"
	"io"
	"time"
)

// redrawInterval throttles how often the progress line is repainted so
// that per-entry updates do not flood the terminal.
const redrawInterval = 100 * time.Millisecond

// Reporter renders a single self-overwriting progress line while a scan
// is running. The total entry count is unknown up front, so the line
// shows entries discovered, discovery rate, and elapsed time.
type Reporter struct {
	out       io.Writer
	startTime time.Time
	lastDraw  time.Time
	drew      bool
}

// NewReporter creates a Reporter writing to out. The start time is
// recorded when the reporter is created.
func NewReporter(out io.Writer) *Reporter {
	return &Reporter{
		out:       out,
		startTime: time.Now(),
	}
}

// Update repaints the progress line with the current entry count. It
// uses \r to overwrite the previous line in place and rate-limits
// itself, so it is cheap to call for every entry.
func (r *Reporter) Update(scanned int) {
	now := time.Now()
	if r.drew && now.Sub(r.lastDraw) < redrawInterval {
		return
	}
	r.lastDraw = now
	r.drew = true

	elapsed := now.Sub(r.startTime)
	fmt.Fprintf(r.out, "\rScanning: %s entries | Rate: %s entries/sec | Elapsed: %s",
		FormatNumber(scanned),
		FormatNumber(int(rate(scanned, elapsed))),
		FormatDuration(elapsed))
}

// Finish terminates the progress line, if one was drawn, so subsequent
// output starts on a fresh line.
func (r *Reporter) Finish() {
	if r.drew {
		fmt.Fprintln(r.out)
	}
}

// Elapsed returns the time since the reporter was created.
func (r *Reporter) Elapsed() time.Duration {
	return time.Since(r.startTime)
}

// rate returns entries per second, or 0 before any time has elapsed.
func rate(scanned int, elapsed time.Duration) float64 {
	if elapsed.Seconds() == 0 {
		return 0
	}
	return float64(scanned) / elapsed.Seconds()
}

// FormatNumber formats a number with thousands separators (commas).
// This makes large counts more readable (e.g., 1,234,567).
func FormatNumber(n int) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	}

	str := fmt.Sprintf("%d", n)
	result := ""
	for i, c := range str {
		if i > 0 && (len(str)-i)%3 == 0 {
			result += ","
		}
		result += string(c)
	}
	return result
}

// FormatDuration formats a duration as "Xh Ym Zs", "Ym Zs" or "Zs".
// Negative durations format as "0s".
func FormatDuration(d time.Duration) string {
	if d < 0 {
		return "0s"
	}

	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60

	if hours > 0 {
		return fmt.Sprintf("%dh %dm %ds", hours, minutes, seconds)
	} else if minutes > 0 {
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	}
	return fmt.Sprintf("%ds", seconds)
}
