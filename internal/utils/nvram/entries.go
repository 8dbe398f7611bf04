package nvram

import (
	"strings"
)

// Entry is one key=value setting of an extracted NVRAM image
type Entry struct {
	Key   string
	Value string
}

// Entries holds settings in image order
type Entries []Entry

// ParseEntries splits extracted NVRAM text into settings. Empty lines are
// skipped; a line without '=' is kept as a key with an empty value.
func ParseEntries(text string) Entries {
	var entries Entries
	for _, line := range strings.Split(text, "\n") {
		if line == "" {
			continue
		}
		key, value, _ := strings.Cut(line, "=")
		entries = append(entries, Entry{Key: key, Value: value})
	}
	return entries
}

// Get returns the value of key. When a key repeats, the last one wins.
func (e Entries) Get(key string) (string, bool) {
	for i := len(e) - 1; i >= 0; i-- {
		if e[i].Key == key {
			return e[i].Value, true
		}
	}
	return "", false
}

// Map returns the settings as a map, later duplicates overriding earlier ones
func (e Entries) Map() map[string]interface{} {
	m := make(map[string]interface{}, len(e))
	for _, entry := range e {
		m[entry.Key] = entry.Value
	}
	return m
}

// Keys returns the distinct keys in first-seen order
func (e Entries) Keys() []string {
	seen := make(map[string]bool, len(e))
	var keys []string
	for _, entry := range e {
		if !seen[entry.Key] {
			seen[entry.Key] = true
			keys = append(keys, entry.Key)
		}
	}
	return keys
}
