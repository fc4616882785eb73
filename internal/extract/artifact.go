package extract

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

// FormatArtifact returns the filename for the nth table, e.g. "table-3.csv".
func FormatArtifact(prefix string, n int) string {
	return fmt.Sprintf("%s-%d.csv", prefix, n)
}

// ParseArtifact extracts the table number from an artifact filename.
// Returns false for names that do not follow the prefix-N.csv pattern.
func ParseArtifact(name string) (int, bool) {
	base := filepath.Base(name)
	base = strings.TrimSuffix(base, ".csv")
	if base == filepath.Base(name) {
		return 0, false
	}
	i := strings.LastIndex(base, "-")
	if i < 0 {
		return 0, false
	}
	n, err := strconv.Atoi(base[i+1:])
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}
