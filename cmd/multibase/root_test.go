package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/multibase/transcoder"
	"github.com/calebcase/oops"
)

func run(t *testing.T, stdin string, args ...string) (stdout string, logs string, err error) {
	t.Helper()

	logBuf := &bytes.Buffer{}
	log := logrus.New()
	log.SetOutput(logBuf)

	outBuf := &bytes.Buffer{}

	cmd := newRootCmd(log)
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(outBuf)
	cmd.SetErr(io.Discard)

	err = cmd.Execute()

	return outBuf.String(), logBuf.String(), err
}

func TestCommands(t *testing.T) {
	type TC struct {
		Name   string
		Stdin  string
		Args   []string
		Stdout string
		Mark   error
	}

	tcs := []TC{
		{
			Name:   "encode arg",
			Args:   []string{"encode", "Hello World"},
			Stdout: "JxF12TrwUP45BMd\n",
			Mark:   oops.New("unexpected"),
		},
		{
			Name:   "encode stdin",
			Stdin:  "Hello World",
			Args:   []string{"encode"},
			Stdout: "JxF12TrwUP45BMd\n",
			Mark:   oops.New("unexpected"),
		},
		{
			Name:   "encode manual hex",
			Args:   []string{"encode", "--engine", "manual", "--preset", "hex", "Hello World"},
			Stdout: "48656c6c6f20576f726c64\n",
			Mark:   oops.New("unexpected"),
		},
		{
			Name:   "encode literal alphabet",
			Args:   []string{"encode", "--alphabet", "01", "\x00\x05"},
			Stdout: "0101\n",
			Mark:   oops.New("unexpected"),
		},
		{
			Name:   "decode arg",
			Args:   []string{"decode", "JxF12TrwUP45BMd"},
			Stdout: "Hello World",
			Mark:   oops.New("unexpected"),
		},
		{
			Name:   "decode stdin with newline",
			Stdin:  "JxF12TrwUP45BMd\n",
			Args:   []string{"decode", "-e", "manual"},
			Stdout: "Hello World",
			Mark:   oops.New("unexpected"),
		},
		{
			Name:   "verify",
			Args:   []string{"verify", "-p", "base62", "Hello World"},
			Stdout: "ok 73XpUgyMwkGr29M\n",
			Mark:   oops.New("unexpected"),
		},
	}

	for _, tc := range tcs {
		t.Run(tc.Name, func(t *testing.T) {
			stdout, logs, err := run(t, tc.Stdin, tc.Args...)
			require.NoError(t, err, tc.Mark)
			require.Equal(t, tc.Stdout, stdout, tc.Mark)
			require.Empty(t, logs, tc.Mark)
		})
	}
}

func TestErrors(t *testing.T) {
	t.Run("invalid symbols", func(t *testing.T) {
		_, _, err := run(t, "", "decode", "-p", "hex", "1Acf=")
		require.Error(t, err)

		var inv *transcoder.InvalidSymbolError
		require.True(t, errors.As(err, &inv))
		require.Equal(t, map[int]string{1: "A", 4: "="}, inv.Positions)
	})

	t.Run("duplicate symbols", func(t *testing.T) {
		_, _, err := run(t, "", "encode", "-a", "aBCadeffa", "x")
		require.Error(t, err)

		var dup *transcoder.DuplicateSymbolsError
		require.True(t, errors.As(err, &dup))
		require.Equal(t, []string{"a", "f"}, dup.Symbols())
	})

	t.Run("unknown preset", func(t *testing.T) {
		_, _, err := run(t, "", "encode", "-p", "base1000", "x")
		require.Error(t, err)
		require.True(t, Error.Has(err))
	})

	t.Run("unknown engine", func(t *testing.T) {
		_, _, err := run(t, "", "encode", "-e", "gmp", "x")
		require.Error(t, err)
		require.True(t, transcoder.Error.Has(err))
	})
}

func TestConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "alphabets.yaml")

	err := os.WriteFile(path, []byte(`
alphabets:
  - name: dna
    symbols: ACGT
  - name: hex
    symbols: "0123456789ABCDEF"
`), 0o600)
	require.NoError(t, err)

	stdout, _, err := run(t, "", "encode", "--config", path, "-p", "dna", "\x00\x1b")
	require.NoError(t, err)
	require.Equal(t, "ACGT\n", stdout)

	// Configured alphabets shadow the built-in presets.
	stdout, _, err = run(t, "", "encode", "--config", path, "-p", "hex", "\xab")
	require.NoError(t, err)
	require.Equal(t, "AB\n", stdout)

	stdout, _, err = run(t, "", "presets", "--config", path)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(stdout, "dna\tACGT\nhex\t0123456789ABCDEF\n"))
	require.Contains(t, stdout, "base58\t123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz\n")

	stdout, logs, err := run(t, "", "decode", "-v", "--config", path, "-p", "dna", "ACGT")
	require.NoError(t, err)
	require.Equal(t, "\x00\x1b", stdout)
	require.Contains(t, logs, "loaded config")
	require.Contains(t, logs, "transcoder ready")

	_, _, err = run(t, "", "encode", "--config", filepath.Join(dir, "missing.yaml"), "x")
	require.Error(t, err)
}
