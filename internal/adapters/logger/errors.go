package logger

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// messager describes an error that can report its own message without the chain.
// zerr.Error provides it together with Metadata.
type messager interface {
	Message() string
}

type metadataer interface {
	Metadata() map[string]any
}

// ErrorEntry is one link of an error chain.
type ErrorEntry struct {
	Message string
	// Metadata is nil for errors that cannot carry metadata.
	Metadata map[string]any
}

// collectErrorEntries walks the chain of zerr errors. The first error that is not a
// zerr error ends the walk with its full Error() text.
func collectErrorEntries(err error) []ErrorEntry {
	var entries []ErrorEntry
	for current := err; current != nil; {
		m, ok := current.(messager)
		if !ok {
			entries = append(entries, ErrorEntry{Message: current.Error()})
			break
		}

		entry := ErrorEntry{Message: m.Message()}
		if md, ok := current.(metadataer); ok {
			entry.Metadata = md.Metadata()
		}
		current = errors.Unwrap(current)

		// zerr.With on a plain error wraps it with an empty message; fold it into its cause.
		if entry.Message == "" && current != nil {
			next := collectErrorEntries(current)
			next[0].Metadata = mergeMetadata(entry.Metadata, next[0].Metadata)
			return append(entries, next...)
		}
		entries = append(entries, entry)
	}
	return entries
}

func mergeMetadata(a, b map[string]any) map[string]any {
	if len(a) == 0 {
		return b
	}
	merged := make(map[string]any, len(a)+len(b))
	for k, v := range b {
		merged[k] = v
	}
	for k, v := range a {
		merged[k] = v
	}
	return merged
}

// formatErrorEntries renders the entries as an "Error:" line followed by a "Caused by:" list.
// Metadata follows its message, one sorted "key: value" line each.
func formatErrorEntries(entries []ErrorEntry) string {
	var lines []string

	for i, entry := range entries {
		msgLines := strings.Split(entry.Message, "\n")

		var first, indent string
		if i == 0 {
			first, indent = "Error: ", "       "
		} else {
			if i == 1 {
				lines = append(lines, "", "  Caused by:")
			}
			first, indent = "    → ", "      "
		}

		lines = append(lines, first+msgLines[0])
		for _, line := range msgLines[1:] {
			lines = append(lines, indent+line)
		}
		for _, k := range sortedKeys(entry.Metadata) {
			lines = append(lines, fmt.Sprintf("%s%s: %v", indent, k, entry.Metadata[k]))
		}
	}

	return strings.Join(lines, "\n")
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
