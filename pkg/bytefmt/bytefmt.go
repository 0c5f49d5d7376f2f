// Package bytefmt renders byte counts as the human-readable labels stored
// on file records ("240.00 KB", "1.20 MB") and parses them back.
package bytefmt

import (
	"fmt"
	"regexp"
	"strconv"
)

const (
	KB = int64(1024)
	MB = KB * 1024
	GB = MB * 1024
)

var labelRe = regexp.MustCompile(`(\d+\.?\d*)\s*(B|KB|MB|GB)`)

// Format uses base-1024 units with two decimals; plain bytes keep no decimals.
func Format(n int64) string {
	if n < 0 {
		n = 0
	}
	switch {
	case n < KB:
		return fmt.Sprintf("%d B", n)
	case n < MB:
		return fmt.Sprintf("%.2f KB", float64(n)/float64(KB))
	case n < GB:
		return fmt.Sprintf("%.2f MB", float64(n)/float64(MB))
	default:
		return fmt.Sprintf("%.2f GB", float64(n)/float64(GB))
	}
}

// Parse is the tolerant inverse of Format. The label is a lossy rendering,
// so the result may round; ok is false for anything that does not look like
// a size label and callers must treat that as a zero contribution.
func Parse(label string) (int64, bool) {
	m := labelRe.FindStringSubmatch(label)
	if m == nil {
		return 0, false
	}

	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}

	switch m[2] {
	case "B":
		return int64(v), true
	case "KB":
		return int64(v * float64(KB)), true
	case "MB":
		return int64(v * float64(MB)), true
	default:
		return int64(v * float64(GB)), true
	}
}
