package render

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownOption is returned when a formatting flag name is not recognized
var ErrUnknownOption = errors.New("unknown rendering option")

// Options is a set of independent JSON formatting flags
type Options uint8

const (
	// PrettyPrinted inserts newlines and indentation
	PrettyPrinted Options = 1 << iota

	// SortedKeys orders object keys lexicographically
	SortedKeys
)

var optionNames = []struct {
	flag Options
	name string
}{
	{PrettyPrinted, "prettyPrinted"},
	{SortedKeys, "sortedKeys"},
}

// Has reports whether every flag in flag is set
func (o Options) Has(flag Options) bool {
	return o&flag == flag
}

// String returns the comma-joined flag names, or "" when no flag is set
func (o Options) String() string {
	names := make([]string, 0, len(optionNames))
	for _, opt := range optionNames {
		if o.Has(opt.flag) {
			names = append(names, opt.name)
		}
	}
	return strings.Join(names, ",")
}

// ParseOptions parses a comma-separated list of flag names.
// Names are matched case-insensitively; an empty string yields no flags.
func ParseOptions(s string) (Options, error) {
	var opts Options
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		flag, ok := lookupOption(part)
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrUnknownOption, part)
		}
		opts |= flag
	}
	return opts, nil
}

func lookupOption(name string) (Options, bool) {
	for _, opt := range optionNames {
		if strings.EqualFold(opt.name, name) {
			return opt.flag, true
		}
	}
	return 0, false
}
