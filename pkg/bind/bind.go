// Package bind replays a parse result onto a standard library [flag.FlagSet], so that callers can
// read typed option values through the usual [flag.Value] machinery. The argparse package itself
// never interprets option values.
package bind

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/mfridman/xflag"

	"github.com/mfridman/argparse"
)

// FlagSet sets the flags of fs from r. Each matched flag is replayed as "-title=value", or as a bare
// "-title" when fs defines it as a boolean flag and the value is empty, and matched argument titles
// become fs.Args(). Every flag in r must be defined in fs. Errors from fs's own value parsing, e.g.,
// an invalid integer, are returned wrapped.
func FlagSet(fs *flag.FlagSet, r *argparse.ParsedResult) error {
	if fs == nil {
		return errors.New("bind: flag set is nil")
	}
	if r == nil {
		return errors.New("bind: result is nil")
	}
	args := make([]string, 0, len(r.Flags)+len(r.Arguments))
	for _, fv := range r.Flags {
		f := fs.Lookup(fv.Title)
		if f == nil {
			return fmt.Errorf("bind: flag %q is not defined in flag set %q", argparse.Marker+fv.Title, fs.Name())
		}
		if fv.Value == "" && isBoolFlag(f) {
			args = append(args, argparse.Marker+fv.Title)
			continue
		}
		args = append(args, argparse.Marker+fv.Title+"="+fv.Value)
	}
	args = append(args, r.Arguments...)

	fs.SetOutput(io.Discard)
	if err := xflag.ParseToEnd(fs, args); err != nil {
		return fmt.Errorf("bind: %w", err)
	}
	return nil
}

func isBoolFlag(f *flag.Flag) bool {
	b, ok := f.Value.(interface{ IsBoolFlag() bool })
	return ok && b.IsBoolFlag()
}
