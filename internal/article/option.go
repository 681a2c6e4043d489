// Package article holds the article presentation model: the option sets a reader
// can choose from, the selected configuration, and the documents it is applied to.
package article

import (
	"errors"
	"strconv"
	"strings"
)

// ErrOptionNotInSet is returned when an option does not belong to a field's option set.
var ErrOptionNotInSet = errors.New("option not in set")

// Option is a single selectable choice for one configuration field.
// Value is unique within its set; Title is what the reader sees.
type Option struct {
	Value     string
	Title     string
	ClassName string
}

// IsZero reports whether o is the empty option.
func (o Option) IsZero() bool {
	return o == Option{}
}

// Pixels parses values such as "18px" or "1394px".
func (o Option) Pixels() (int, bool) {
	s, ok := strings.CutSuffix(o.Value, "px")
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// OptionSet is the fixed, ordered collection of options for one field.
type OptionSet struct {
	Name    string
	Options []Option
}

// Len returns the number of options in the set.
func (s OptionSet) Len() int {
	return len(s.Options)
}

// Index returns the position of o in the set, or -1.
func (s OptionSet) Index(o Option) int {
	for i, opt := range s.Options {
		if opt == o {
			return i
		}
	}
	return -1
}

// Contains reports whether o is a member of the set.
func (s OptionSet) Contains(o Option) bool {
	return s.Index(o) >= 0
}

// Lookup finds an option by value.
func (s OptionSet) Lookup(value string) (Option, bool) {
	for _, opt := range s.Options {
		if opt.Value == value {
			return opt, true
		}
	}
	return Option{}, false
}

// At returns the option at index i, wrapping around in both directions.
// Returns the zero Option for an empty set.
func (s OptionSet) At(i int) Option {
	n := len(s.Options)
	if n == 0 {
		return Option{}
	}
	i %= n
	if i < 0 {
		i += n
	}
	return s.Options[i]
}
