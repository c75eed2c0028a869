package clargs

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEchoParser(t *testing.T, capitalize *bool) *Parser {
	t.Helper()
	p := &Parser{
		ShortHelp: "prints text",
		Usage:     "echo [options] <text>...",
	}
	require.NoError(t, p.AddBool('c', "capitalize", "capitalize the input", func() error {
		*capitalize = true
		return nil
	}))
	require.NoError(t, p.AddBool('h', "help", "show help", func() error {
		return NewError(ErrShowHelp, nil)
	}))
	return p
}

func TestParseAndRun(t *testing.T) {
	t.Parallel()

	echo := func(capitalize *bool) func(context.Context, *State) error {
		return func(_ context.Context, s *State) error {
			if len(s.Args) == 0 {
				return NewError(ErrShowHelp, nil)
			}
			out := strings.Join(s.Args, " ")
			if *capitalize {
				out = strings.ToUpper(out)
			}
			_, err := s.Stdout.Write([]byte(out + "\n"))
			return err
		}
	}

	t.Run("exec receives leftovers", func(t *testing.T) {
		t.Parallel()
		var capitalize bool
		p := newEchoParser(t, &capitalize)
		stdout := bytes.NewBuffer(nil)

		err := ParseAndRun(context.Background(), p, []string{"hello", "-c", "world"}, echo(&capitalize), &RunOptions{Stdout: stdout})
		require.NoError(t, err)
		assert.Equal(t, "HELLO WORLD\n", stdout.String())
	})
	t.Run("help requested by a handler", func(t *testing.T) {
		t.Parallel()
		var capitalize bool
		p := newEchoParser(t, &capitalize)
		stdout := bytes.NewBuffer(nil)

		err := ParseAndRun(context.Background(), p, []string{"hello", "--help"}, echo(&capitalize), &RunOptions{Stdout: stdout})
		require.ErrorIs(t, err, ErrShowHelp)
		assert.Equal(t, p.Help()+"\n", stdout.String())
		assert.NotContains(t, stdout.String(), "hello")
	})
	t.Run("help requested by exec", func(t *testing.T) {
		t.Parallel()
		var capitalize bool
		p := newEchoParser(t, &capitalize)
		stdout := bytes.NewBuffer(nil)

		err := ParseAndRun(context.Background(), p, nil, echo(&capitalize), &RunOptions{Stdout: stdout})
		require.ErrorIs(t, err, ErrShowHelp)
		assert.True(t, strings.HasPrefix(stdout.String(), "prints text\n\nUsage:\n"))
	})
	t.Run("parse error skips exec", func(t *testing.T) {
		t.Parallel()
		var capitalize bool
		p := newEchoParser(t, &capitalize)
		stdout := bytes.NewBuffer(nil)

		called := false
		err := ParseAndRun(context.Background(), p, []string{"--capitalise", "hello"}, func(context.Context, *State) error {
			called = true
			return nil
		}, &RunOptions{Stdout: stdout})
		require.ErrorIs(t, err, ErrUnknownArgument)
		assert.False(t, called)
		assert.Empty(t, stdout.String())

		var cerr *Error
		require.ErrorAs(t, err, &cerr)
		assert.Equal(t, []string{"--capitalize"}, cerr.Suggestions())
	})
	t.Run("exec error", func(t *testing.T) {
		t.Parallel()
		var capitalize bool
		p := newEchoParser(t, &capitalize)
		errExec := errors.New("exec failed")

		err := ParseAndRun(context.Background(), p, []string{"x"}, func(context.Context, *State) error {
			return errExec
		}, &RunOptions{Stdout: bytes.NewBuffer(nil)})
		require.ErrorIs(t, err, errExec)
	})
	t.Run("nil parser and exec", func(t *testing.T) {
		t.Parallel()
		err := ParseAndRun(context.Background(), nil, nil, func(context.Context, *State) error { return nil }, nil)
		assert.EqualError(t, err, "failed to run: parser is nil")

		err = ParseAndRun(context.Background(), &Parser{}, nil, nil, nil)
		assert.EqualError(t, err, "failed to run: exec function is nil")
	})
	t.Run("default options", func(t *testing.T) {
		t.Parallel()
		opt := checkAndSetRunOptions(nil)
		assert.NotNil(t, opt.Stdin)
		assert.NotNil(t, opt.Stdout)
		assert.NotNil(t, opt.Stderr)
		assert.Equal(t, DefaultDescriptionWidth, descriptionWidth(bytes.NewBuffer(nil)))
	})
}
