// Package argparse provides a small declarative command-line argument parser. A caller registers a
// fixed set of flags, each expecting a fixed number of option values, and a set of positional
// arguments, then hands the parser the raw tokens of a program invocation.
//
// The parser validates the tokens against the registered schema and returns the matched flags and
// arguments in order of appearance. The same schema drives the generated help text. The package
// never prints or exits on its own; see [ParseAndReport] for the conventional "print help and
// terminate" behavior, leaving the exit to the caller.
package argparse
