package entry

import (
	"fmt"
	"strings"
)

// Storage is an ordered, append-only collection of entries.
// The zero value is an empty storage.
type Storage struct {
	entries []Entry
}

// Add appends an entry
func (s *Storage) Add(e Entry) {
	s.entries = append(s.entries, e)
}

// Entries returns a copy of the stored entries in insertion order
func (s *Storage) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Len returns the number of stored entries
func (s *Storage) Len() int {
	return len(s.entries)
}

// Values returns the text of each entry in insertion order
func (s *Storage) Values() []string {
	return values(s.entries)
}

// Join returns all entry values joined with sep
func (s *Storage) Join(sep string) string {
	return strings.Join(s.Values(), sep)
}

// Filter returns, in order, the entries for which keep reports true.
// The first predicate error stops the scan.
func (s *Storage) Filter(keep func(index int, e Entry) (bool, error)) ([]Entry, error) {
	out := make([]Entry, 0, len(s.entries))
	for i, e := range s.entries {
		ok, err := keep(i, e)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		if ok {
			out = append(out, e)
		}
	}
	return out, nil
}

// Join returns the values of entries joined with sep
func Join(entries []Entry, sep string) string {
	return strings.Join(values(entries), sep)
}

func values(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.value
	}
	return out
}
