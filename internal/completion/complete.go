package completion

import (
	"errors"
	"os/exec"
	"sort"
	"strings"

	"github.com/pranshuparmar/ps2gv/internal/proc"
)

// CompleteType represents what kind of completion is requested
type CompleteType string

const (
	CompleteLayouts CompleteType = "layouts"
	CompleteFormats CompleteType = "formats"
)

var (
	defaultLayouts = []string{"circo", "dot", "fdp", "neato", "osage", "patchwork", "sfdp", "twopi"}
	defaultFormats = []string{"dot", "gif", "jpg", "json", "pdf", "png", "ps", "svg"}
)

// Candidates returns completion candidates for the given type. The installed
// Graphviz is asked first; the built-in list is used when it cannot answer.
func Candidates(completeType CompleteType) []string {
	switch completeType {
	case CompleteLayouts:
		if l := queryDot("-K"); len(l) > 0 {
			return l
		}
		return defaultLayouts
	case CompleteFormats:
		if f := queryDot("-T"); len(f) > 0 {
			return f
		}
		return defaultFormats
	default:
		return nil
	}
}

// queryDot passes an unknown value to a dot option and reads the list of
// accepted values from the complaint dot prints.
func queryDot(option string) []string {
	_, err := proc.Run("dot", option+"?")
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		return nil
	}
	_, list, ok := strings.Cut(string(exitErr.Stderr), "Use one of:")
	if !ok {
		return nil
	}
	var items []string
	for _, f := range strings.Fields(list) {
		// Formats may carry a renderer qualifier such as png:cairo.
		name, _, _ := strings.Cut(f, ":")
		items = append(items, name)
	}
	return uniqueSorted(items)
}

// shellMetaChars contains characters that are unsafe in shell completion contexts.
const shellMetaChars = " \t\n$`\\\"';&|<>(){}[]!*?~"

// isShellSafe returns true if the string contains no shell metacharacters
func isShellSafe(s string) bool {
	return !strings.ContainsAny(s, shellMetaChars)
}

// uniqueSorted returns a sorted slice with duplicates removed
func uniqueSorted(items []string) []string {
	seen := make(map[string]bool)
	var result []string
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item != "" && !seen[item] && isShellSafe(item) {
			seen[item] = true
			result = append(result, item)
		}
	}
	sort.Strings(result)
	return result
}
