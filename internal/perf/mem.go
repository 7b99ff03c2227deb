// Process metrics for run summary.
package perf

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// ReadVMPeak returns the peak virtual memory of the process in KiB.
//
// Returns 0 where /proc is not available.
func ReadVMPeak() int {
	fo, err := os.Open("/proc/self/status")
	if err != nil {
		slog.Debug("Failed to read /proc/self/status.", "err", err)
		return 0
	}
	defer fo.Close() //nolint:errcheck

	return parseStatus(fo, "VmPeak:")
}

func parseStatus(fo *os.File, key string) int {
	scanner := bufio.NewScanner(fo)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, key) {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 2 {
			break
		}
		value, err := strconv.Atoi(fields[1])
		if err != nil {
			slog.Debug("Failed to parse status.", "key", key, "err", err)
			return 0
		}
		return value
	}

	if err := scanner.Err(); err != nil {
		slog.Debug("Failed to read from file.", "err", err)
	}

	return 0
}

// FormatBytes renders a size with binary units. Value is in bytes.
func FormatBytes(value int) string {
	const divisor = 1024.
	const step = 512.
	units := []string{"B", "KiB", "MiB", "GiB", "TiB"}

	unitIndex := 0
	var f float64
	for f = float64(value); f > step && unitIndex < len(units)-1; f /= divisor {
		unitIndex++
	}
	return strings.Replace(fmt.Sprintf("%.1f%s", f, units[unitIndex]), ".0", "", 1)
}
