package argparse

import (
	"slices"
	"strings"
)

// Marker is the prefix that distinguishes a flag token from an argument token.
const Marker = "-"

// Flag describes one recognized switch. The zero value is a blank flag that can be filled in field by
// field before it is handed to [New].
type Flag struct {
	// Title is the bare name used after the marker, e.g., the "a" in "-a". It must be unique among
	// the flags of a parser.
	Title string

	// Description is shown in the help text.
	Description string

	// Options holds the labels of the option values this flag expects, in order. The number of labels
	// is the flag's arity; an empty list means the flag takes no value.
	Options []string
}

// NewFlag returns a flag with the given title, description and option labels. No validation happens
// here; see [New].
func NewFlag(title, description string, options ...string) Flag {
	return Flag{
		Title:       title,
		Description: description,
		Options:     slices.Clone(options),
	}
}

// Arity returns the number of option values the flag consumes.
func (f Flag) Arity() int {
	return len(f.Options)
}

// Name returns the flag as it is written on the command line, e.g., "-a".
func (f Flag) Name() string {
	return Marker + f.Title
}

func (f Flag) clone() Flag {
	f.Options = slices.Clone(f.Options)
	return f
}

// labels renders the bracketed option labels, e.g., "<some> <thing>".
func (f Flag) labels() string {
	var b strings.Builder
	for i, opt := range f.Options {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString("<" + opt + ">")
	}
	return b.String()
}

// signature renders the flag name followed by its option labels, e.g., "-b <some> <thing>".
func (f Flag) signature() string {
	if len(f.Options) == 0 {
		return f.Name()
	}
	return f.Name() + " " + f.labels()
}
