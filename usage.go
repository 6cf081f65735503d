package argparse

import (
	"strings"

	"github.com/mfridman/argparse/pkg/textutil"
)

const (
	entryIndent       = "  "
	descriptionIndent = "      "
)

// Help returns the help text generated from the registered schema: the project title and
// description, a usage line, then every flag and every argument in registration order with its
// description. It is deterministic and may be called any number of times.
func (p *Parser) Help() string {
	return p.render(p.width)
}

func (p *Parser) render(width int) string {
	var b strings.Builder

	header := p.title
	if p.description != "" {
		if header != "" {
			header += ", "
		}
		header += p.description
	}
	if header != "" {
		b.WriteString(textutil.Indent(header, "", width))
		b.WriteString("\n")
	}

	b.WriteString("Usage:\n")
	b.WriteString(entryIndent + p.usageLine() + "\n")

	if p.flags.Len() > 0 {
		b.WriteString("\nOptions:\n")
		for pair := p.flags.Oldest(); pair != nil; pair = pair.Next() {
			f := pair.Value
			b.WriteString(entryIndent + f.signature() + " :\n")
			b.WriteString(textutil.Indent(f.Description, descriptionIndent, width))
		}
	}

	if p.arguments.Len() > 0 {
		b.WriteString("\nArguments:\n")
		for pair := p.arguments.Oldest(); pair != nil; pair = pair.Next() {
			a := pair.Value
			b.WriteString(entryIndent + a.Title + " :\n")
			b.WriteString(textutil.Indent(a.Description, descriptionIndent, width))
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

func (p *Parser) usageLine() string {
	if p.usage != "" {
		return p.usage
	}
	usage := "[-h]"
	if p.flags.Len() > 0 {
		usage += " [flags]"
	}
	if p.arguments.Len() > 0 {
		usage += " [arguments]"
	}
	return usage
}
