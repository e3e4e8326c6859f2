// Package util holds formatting helpers for logs and operator output.
package util

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

const day = 24 * time.Hour

// Checksum returns the hex SHA-256 of data.
func Checksum(data []byte) string {
	sum := sha256.Sum256(data)

	return hex.EncodeToString(sum[:])
}

// FormatBytes formats a byte count with binary units (e.g. "1.5 KB").
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", max(bytes, 0))
	}
	const units = "KMGTPEZY"
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit && exp < len(units)-1; n /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), units[exp])
}

// FormatDuration renders the two most significant units of duration
// (e.g. "850ms", "45s", "5m10s", "1h30m", "2d3h"). Negative durations render as "0s".
func FormatDuration(duration time.Duration) string {
	if duration <= 0 {
		return "0s"
	}

	if duration < time.Second {
		return fmt.Sprintf("%dms", duration.Milliseconds())
	}

	duration = duration.Round(time.Second)

	switch {
	case duration < time.Minute:
		return fmt.Sprintf("%ds", int(duration.Seconds()))
	case duration < time.Hour:
		return fmt.Sprintf("%dm%ds", int(duration.Minutes()), int(duration.Seconds())%60)
	case duration < day:
		return fmt.Sprintf("%dh%dm", int(duration.Hours()), int(duration.Minutes())%60)
	default:
		return fmt.Sprintf("%dd%dh", int(duration/day), int(duration.Hours())%24)
	}
}
