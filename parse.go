package argparse

import (
	"fmt"
	"strings"

	"github.com/ef-ds/deque"
	"github.com/google/shlex"

	"github.com/mfridman/argparse/pkg/suggest"
)

// maxSuggestions bounds the "did you mean" candidates attached to an unknown token.
const maxSuggestions = 3

type token struct {
	value string
	pos   int
}

// Parse validates tokens against the registered schema and returns the matched flags and arguments.
//
// The first token is the invocation path, typically os.Args[0], and is skipped. Each remaining token
// must be a registered flag (marker plus title) or a registered argument title. A flag consumes the
// next Arity tokens verbatim as its option values, whatever they look like, and keeps the first one
// as its value. Flags and arguments may each appear at most once.
//
// Any violation stops the scan and returns an *[Error]; no partial result is returned. A help token
// ("-h", "-help" or "--help") that is not a registered flag returns an *Error with code
// [ErrShowHelp].
func (p *Parser) Parse(tokens []string) (*ParsedResult, error) {
	queue := deque.New()
	for i, tok := range tokens {
		if i == 0 {
			continue
		}
		queue.PushBack(token{value: tok, pos: i})
	}

	result := &ParsedResult{}
	seenFlags := make(map[string]struct{})
	seenArgs := make(map[string]struct{})

	for queue.Len() > 0 {
		v, _ := queue.PopFront()
		tok := v.(token)

		if title, ok := strings.CutPrefix(tok.value, Marker); ok {
			if f, ok := p.flags.Get(title); ok {
				if _, dup := seenFlags[title]; dup {
					return p.fail(newParseError(ErrDuplicateFlag, tok.value, tok.pos,
						"flags may only be used once, duplicate flag %q", tok.value))
				}
				arity := f.Arity()
				if queue.Len() < arity {
					return p.fail(newParseError(ErrMissingOption, tok.value, tok.pos,
						"flag %q expects %d option(s) %s, got %d", tok.value, arity, f.labels(), queue.Len()))
				}
				// Only the first option value is kept; the rest are consumed to keep the cursor in
				// step with the declared arity.
				var value string
				for i := 0; i < arity; i++ {
					opt, _ := queue.PopFront()
					if i == 0 {
						value = opt.(token).value
					}
				}
				seenFlags[title] = struct{}{}
				result.Flags = append(result.Flags, FlagValue{Title: title, Value: value})
				continue
			}
			if isHelpToken(tok.value) {
				return p.fail(newParseError(ErrShowHelp, tok.value, tok.pos, "help requested"))
			}
		}

		if _, ok := p.arguments.Get(tok.value); ok {
			if _, dup := seenArgs[tok.value]; dup {
				return p.fail(newParseError(ErrDuplicateArgument, tok.value, tok.pos,
					"arguments may only be used once, duplicate argument %q", tok.value))
			}
			seenArgs[tok.value] = struct{}{}
			result.Arguments = append(result.Arguments, tok.value)
			continue
		}

		return p.fail(p.unknownTokenError(tok))
	}
	return result, nil
}

// ParseLine splits a shell-style command line into tokens and parses them. As with [Parser.Parse],
// the first word is the invocation path.
func (p *Parser) ParseLine(line string) (*ParsedResult, error) {
	tokens, err := shlex.Split(line)
	if err != nil {
		return nil, fmt.Errorf("failed to split command line: %w", err)
	}
	return p.Parse(tokens)
}

func (p *Parser) fail(err *Error) (*ParsedResult, error) {
	p.logger.Debug("rejected token stream",
		"code", err.code.String(),
		"token", err.Token,
		"position", err.Position,
	)
	return nil, err
}

func (p *Parser) unknownTokenError(tok token) *Error {
	kind := "argument"
	if strings.HasPrefix(tok.value, Marker) {
		kind = "flag"
	}
	suggestions := suggest.FindSimilar(tok.value, p.knownNames(), maxSuggestions)
	var err *Error
	if len(suggestions) > 0 {
		err = newParseError(ErrUnknownToken, tok.value, tok.pos,
			"unknown %s %q. Did you mean one of these?\n\t%s", kind, tok.value, strings.Join(suggestions, "\n\t"))
	} else {
		err = newParseError(ErrUnknownToken, tok.value, tok.pos, "unknown %s %q", kind, tok.value)
	}
	err.Suggestions = suggestions
	return err
}

func isHelpToken(s string) bool {
	switch s {
	case "-h", "-help", "--help":
		return true
	}
	return false
}

