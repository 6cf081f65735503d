package argparse

import (
	"testing"

	"github.com/google/shlex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func FuzzParse(f *testing.F) {
	f.Add("prog -a 3 foo")
	f.Add("prog -a -a")
	f.Add("prog -b one two bar -d")
	f.Add("prog -d -d")
	f.Add("prog foo foo")
	f.Add("prog -x")
	f.Add("prog -")
	f.Add("prog --help")
	f.Add("prog -c 'quoted value' foo")
	f.Add("prog -漢字 こんにちは")
	f.Fuzz(func(t *testing.T, line string) {
		tokens, err := shlex.Split(line)
		if err != nil {
			return
		}
		p := newTestParser(t)

		res, err := p.Parse(tokens)
		if err != nil {
			var perr *Error
			require.ErrorAs(t, err, &perr)
			require.Nil(t, res)
			require.NotZero(t, perr.Code())
			require.Greater(t, perr.Position, 0)
			require.Less(t, perr.Position, len(tokens))
			require.Equal(t, tokens[perr.Position], perr.Token)
			return
		}

		seen := make(map[string]bool)
		for _, fv := range res.Flags {
			require.False(t, seen[fv.Title], "flag %q matched twice", fv.Title)
			seen[fv.Title] = true
			flag, ok := p.LookupFlag(fv.Title)
			require.True(t, ok)
			if flag.Arity() == 0 {
				assert.Empty(t, fv.Value)
			}
		}
		seenArgs := make(map[string]bool)
		for _, a := range res.Arguments {
			require.False(t, seenArgs[a], "argument %q matched twice", a)
			seenArgs[a] = true
			_, ok := p.LookupArgument(a)
			require.True(t, ok)
		}

		// Re-parsing the same tokens is deterministic.
		again, err := p.Parse(tokens)
		require.NoError(t, err)
		require.Equal(t, res, again)
	})
}
