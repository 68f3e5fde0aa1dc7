// Package formatx contains small pure helpers for presenting file metadata:
// human-readable sizes, extension extraction, the supported-type check and
// date formatting.
package formatx

import (
	"math"
	"slices"
	"strconv"
	"strings"
	"time"
)

// DateLayout renders like "Jan 2, 2006, 03:04 PM".
const DateLayout = "Jan 2, 2006, 03:04 PM"

var sizeUnits = []string{"Bytes", "KB", "MB", "GB"}

var supportedExtensions = []string{"txt", "jpg", "jpeg", "png", "json", "pdf"}

// FormatSize renders a byte count with 1024-based units, rounded to two
// decimals with trailing zeros dropped: 1536 -> "1.5 KB".
func FormatSize(bytes int64) string {
	if bytes <= 0 {
		return "0 Bytes"
	}

	v := float64(bytes)
	i := 0
	for v >= 1024 && i < len(sizeUnits)-1 {
		v /= 1024
		i++
	}

	v = math.Round(v*100) / 100
	return strconv.FormatFloat(v, 'f', -1, 64) + " " + sizeUnits[i]
}

// Extension returns the lowercased text after the last dot of filename,
// or "" when there is none: "report.JSON" -> "json", "noext" -> "".
func Extension(filename string) string {
	i := strings.LastIndexByte(filename, '.')
	if i < 0 {
		return ""
	}
	return strings.ToLower(filename[i+1:])
}

// IsSupported reports whether filename has an extension the storage
// service accepts for upload.
func IsSupported(filename string) bool {
	return slices.Contains(supportedExtensions, Extension(filename))
}

// SupportedExtensions returns a copy of the accepted upload extensions.
func SupportedExtensions() []string {
	return slices.Clone(supportedExtensions)
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
