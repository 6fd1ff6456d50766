// Package pathenv enumerates the entries of the process search-path
// environment variable in their original order.
package pathenv

import (
	"os"
	"strings"
)

// statDir allows tests to stub directory existence checks.
var statDir = os.Stat

// Entry is one directory from the search path.
type Entry struct {
	Position  int    // 1-based position in the original value
	Dir       string // the segment as it appeared, surrounding spaces trimmed
	Exists    bool   // directory present on disk
	Duplicate bool   // same directory (case-insensitive) appeared earlier
}

// Parse splits a raw search-path value on sep, dropping blank segments and
// flagging case-insensitive duplicates. Existence is not checked here so the
// function stays pure; Annotate fills it in.
func Parse(raw string, sep rune) []Entry {
	segments := strings.Split(raw, string(sep))
	entries := make([]Entry, 0, len(segments))
	seen := make(map[string]struct{}, len(segments))
	for _, segment := range segments {
		dir := strings.TrimSpace(segment)
		if dir == "" {
			continue
		}
		key := strings.ToLower(dir)
		_, dup := seen[key]
		seen[key] = struct{}{}
		entries = append(entries, Entry{
			Position:  len(entries) + 1,
			Dir:       dir,
			Duplicate: dup,
		})
	}
	return entries
}

// Annotate stats each entry's directory and sets Exists in place.
func Annotate(entries []Entry) {
	for i := range entries {
		if info, err := statDir(entries[i].Dir); err == nil && info.IsDir() {
			entries[i].Exists = true
		}
	}
}

// FromEnv parses the current process PATH and annotates existence.
func FromEnv() []Entry {
	entries := Parse(os.Getenv("PATH"), os.PathListSeparator)
	Annotate(entries)
	return entries
}
