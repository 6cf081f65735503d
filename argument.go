package argparse

// Argument describes one recognized positional token, usually a command. The zero value is a blank
// argument.
type Argument struct {
	// Title is matched against tokens exactly. It must be unique among the arguments of a parser.
	Title string

	// Description is shown in the help text.
	Description string
}

// NewArgument returns an argument with the given title and description.
func NewArgument(title, description string) Argument {
	return Argument{Title: title, Description: description}
}
