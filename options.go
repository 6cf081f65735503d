package argparse

import (
	"log/slog"
)

// Option configures a [Parser] at construction time.
type Option func(*Parser)

// WithUsage replaces the generated usage pattern shown in the help text.
//
// Example: "todo [flags] <add|list>"
func WithUsage(usage string) Option {
	return func(p *Parser) {
		p.usage = usage
	}
}

// WithWidth sets the column at which help descriptions are wrapped. Values below 20 are ignored.
func WithWidth(width int) Option {
	return func(p *Parser) {
		if width >= minWidth {
			p.width = width
		}
	}
}

// WithLogger sets a logger that receives debug records for rejected token streams. A nil logger
// keeps the parser silent.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Parser) {
		if logger != nil {
			p.logger = logger
		}
	}
}
