package argparse

import "slices"

// FlagValue is one matched flag. Value holds the first option value consumed by the flag, or the
// empty string if the flag takes no options.
type FlagValue struct {
	Title string
	Value string
}

// ParsedResult holds the flags and arguments matched by [Parser.Parse], each in order of appearance.
// It is owned by the caller and holds no reference to the parser.
type ParsedResult struct {
	Flags     []FlagValue
	Arguments []string
}

// Flag returns the value of the flag with the given title, without the marker, and whether it was
// present.
func (r *ParsedResult) Flag(title string) (string, bool) {
	for _, f := range r.Flags {
		if f.Title == title {
			return f.Value, true
		}
	}
	return "", false
}

// HasFlag reports whether the flag with the given title was present.
func (r *ParsedResult) HasFlag(title string) bool {
	_, ok := r.Flag(title)
	return ok
}

// HasArgument reports whether the argument with the given title was present.
func (r *ParsedResult) HasArgument(title string) bool {
	return slices.Contains(r.Arguments, title)
}
