package argparse

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"unicode"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

const (
	defaultWidth = 80
	minWidth     = 20
)

// Parser is the schema registry: an ordered set of flags and arguments plus project metadata. It is
// read-only after [New] returns and safe for concurrent use.
type Parser struct {
	title       string
	description string

	flags     *orderedmap.OrderedMap[string, Flag]
	arguments *orderedmap.OrderedMap[string, Argument]

	usage  string
	width  int
	logger *slog.Logger
}

// New builds a parser from the project title and description and the given flags and arguments.
// Registration order is preserved for the help text; matching is by title only.
//
// It returns an error if a title is empty, contains whitespace or starts with [Marker], or if two
// flags or two arguments share a title. A flag and an argument may share a title.
func New(title, description string, flags []Flag, args []Argument, opts ...Option) (*Parser, error) {
	p := &Parser{
		title:       title,
		description: description,
		flags:       orderedmap.New[string, Flag](),
		arguments:   orderedmap.New[string, Argument](),
		width:       defaultWidth,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(p)
	}
	for _, f := range flags {
		if err := validateTitle("flag", f.Title); err != nil {
			return nil, err
		}
		if _, ok := p.flags.Get(f.Title); ok {
			return nil, fmt.Errorf("duplicate flag %q", Marker+f.Title)
		}
		p.flags.Set(f.Title, f.clone())
	}
	for _, a := range args {
		if err := validateTitle("argument", a.Title); err != nil {
			return nil, err
		}
		if _, ok := p.arguments.Get(a.Title); ok {
			return nil, fmt.Errorf("duplicate argument %q", a.Title)
		}
		p.arguments.Set(a.Title, a)
	}
	return p, nil
}

// MustNew is like [New] but panics if the schema is invalid. It simplifies safe initialization of
// global parsers.
func MustNew(title, description string, flags []Flag, args []Argument, opts ...Option) *Parser {
	p, err := New(title, description, flags, args, opts...)
	if err != nil {
		panic("argparse: " + err.Error())
	}
	return p
}

func validateTitle(kind, title string) error {
	if title == "" {
		return errors.New(kind + " has no title")
	}
	if strings.IndexFunc(title, unicode.IsSpace) >= 0 {
		return fmt.Errorf("%s title %q contains spaces, must be a single word", kind, title)
	}
	if strings.HasPrefix(title, Marker) {
		return fmt.Errorf("%s title %q must not start with %q", kind, title, Marker)
	}
	return nil
}

// Title returns the project title.
func (p *Parser) Title() string { return p.title }

// Description returns the project description.
func (p *Parser) Description() string { return p.description }

// Flags returns a copy of the registered flags in registration order.
func (p *Parser) Flags() []Flag {
	flags := make([]Flag, 0, p.flags.Len())
	for pair := p.flags.Oldest(); pair != nil; pair = pair.Next() {
		flags = append(flags, pair.Value.clone())
	}
	return flags
}

// Arguments returns a copy of the registered arguments in registration order.
func (p *Parser) Arguments() []Argument {
	args := make([]Argument, 0, p.arguments.Len())
	for pair := p.arguments.Oldest(); pair != nil; pair = pair.Next() {
		args = append(args, pair.Value)
	}
	return args
}

// LookupFlag returns the flag registered under title, without the marker.
func (p *Parser) LookupFlag(title string) (Flag, bool) {
	f, ok := p.flags.Get(title)
	if !ok {
		return Flag{}, false
	}
	return f.clone(), true
}

// LookupArgument returns the argument registered under title.
func (p *Parser) LookupArgument(title string) (Argument, bool) {
	return p.arguments.Get(title)
}

// knownNames lists every token the parser accepts, used for suggestions.
func (p *Parser) knownNames() []string {
	names := make([]string, 0, p.flags.Len()+p.arguments.Len())
	for pair := p.flags.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Value.Name())
	}
	for pair := p.arguments.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}
	return names
}
