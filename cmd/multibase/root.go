package main

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/zeebo/errs"

	"github.com/calebcase/multibase/alphabet"
	"github.com/calebcase/multibase/internal/config"
	"github.com/calebcase/multibase/preset"
	"github.com/calebcase/multibase/symbol"
	"github.com/calebcase/multibase/transcoder"
)

// Error is the class of errors returned by the command.
var Error = errs.Class("multibase")

type app struct {
	log *logrus.Logger

	alphabet string
	preset   string
	engine   string
	split    string
	config   string
	verbose  bool

	catalog *config.Catalog
}

func newRootCmd(log *logrus.Logger) *cobra.Command {
	a := &app{
		log: log,
	}

	root := &cobra.Command{
		Use:           "multibase",
		Short:         "Encode and decode data with arbitrary alphabets",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.alphabet, "alphabet", "a", "", "alphabet symbols (overrides --preset)")
	flags.StringVarP(&a.preset, "preset", "p", "base58", "named alphabet from the config or the built-in presets")
	flags.StringVarP(&a.engine, "engine", "e", "precision", "arithmetic engine: precision or manual")
	flags.StringVarP(&a.split, "split", "s", "runes", "symbol split mode: runes, graphemes or bytes")
	flags.StringVarP(&a.config, "config", "c", "", "YAML alphabet catalog")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "log debug information")

	root.AddCommand(
		&cobra.Command{
			Use:   "encode [input]",
			Short: "Encode the input (or stdin) into text",
			Args:  cobra.MaximumNArgs(1),
			RunE:  a.encode,
		},
		&cobra.Command{
			Use:   "decode [text]",
			Short: "Decode the text (or stdin) into bytes",
			Args:  cobra.MaximumNArgs(1),
			RunE:  a.decode,
		},
		&cobra.Command{
			Use:   "verify [input]",
			Short: "Check that both engines agree and round trip the input",
			Args:  cobra.MaximumNArgs(1),
			RunE:  a.verify,
		},
		&cobra.Command{
			Use:   "presets",
			Short: "List the available alphabets",
			Args:  cobra.NoArgs,
			RunE:  a.presets,
		},
	)

	return root
}

func (a *app) setup() (err error) {
	if a.verbose {
		a.log.SetLevel(logrus.DebugLevel)
	}

	if a.config == "" {
		a.catalog = &config.Catalog{}

		return nil
	}

	a.catalog, err = config.Load(a.config)
	if err != nil {
		return err
	}

	a.log.WithFields(logrus.Fields{
		"path":      a.config,
		"alphabets": len(a.catalog.Alphabets),
	}).Debug("loaded config")

	return nil
}

// resolve returns the alphabet selected by the flags. A literal alphabet
// wins over a preset, and configured presets win over built-in ones.
func (a *app) resolve() (_ *alphabet.Alphabet, err error) {
	mode, err := symbol.ParseMode(a.split)
	if err != nil {
		return nil, err
	}

	if a.alphabet != "" {
		return alphabet.Parse(a.alphabet, mode)
	}

	if e, ok := a.catalog.Lookup(a.preset); ok {
		if e.Split == "" {
			return alphabet.Parse(e.Symbols, mode)
		}

		return e.Alphabet()
	}

	if s, ok := preset.Lookup(a.preset); ok {
		return alphabet.Parse(s, mode)
	}

	return nil, Error.New("unknown preset: %q", a.preset)
}

func (a *app) transcoder(engine string) (_ *transcoder.Transcoder, err error) {
	alpha, err := a.resolve()
	if err != nil {
		return nil, err
	}

	e, err := transcoder.ParseEngine(engine)
	if err != nil {
		return nil, err
	}

	a.log.WithFields(logrus.Fields{
		"base":   alpha.Len(),
		"engine": e,
		"split":  alpha.Mode(),
	}).Debug("transcoder ready")

	return transcoder.NewFromAlphabet(alpha, transcoder.WithEngine(e)), nil
}

func (a *app) input(cmd *cobra.Command, args []string) (data []byte, err error) {
	if len(args) > 0 {
		return []byte(args[0]), nil
	}

	data, err = io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return nil, Error.Wrap(err)
	}

	return data, nil
}

func (a *app) encode(cmd *cobra.Command, args []string) (err error) {
	t, err := a.transcoder(a.engine)
	if err != nil {
		return err
	}

	data, err := a.input(cmd, args)
	if err != nil {
		return err
	}

	text := t.Encode(data)

	a.log.WithFields(logrus.Fields{
		"bytes":   len(data),
		"symbols": symbol.Count(text, t.Alphabet().Mode()),
	}).Debug("encoded")

	_, err = fmt.Fprintln(cmd.OutOrStdout(), text)

	return Error.Wrap(err)
}

func (a *app) decode(cmd *cobra.Command, args []string) (err error) {
	t, err := a.transcoder(a.engine)
	if err != nil {
		return err
	}

	text, err := a.input(cmd, args)
	if err != nil {
		return err
	}

	data, err := t.Decode(strings.TrimRight(string(text), "\r\n"))
	if err != nil {
		return err
	}

	a.log.WithFields(logrus.Fields{
		"bytes": len(data),
	}).Debug("decoded")

	_, err = cmd.OutOrStdout().Write(data)

	return Error.Wrap(err)
}

func (a *app) verify(cmd *cobra.Command, args []string) (err error) {
	precision, err := a.transcoder(transcoder.EnginePrecision.String())
	if err != nil {
		return err
	}

	manual, err := a.transcoder(transcoder.EngineManual.String())
	if err != nil {
		return err
	}

	data, err := a.input(cmd, args)
	if err != nil {
		return err
	}

	p := precision.Encode(data)
	m := manual.Encode(data)
	if p != m {
		return Error.New("engines disagree: precision=%q manual=%q", p, m)
	}

	for _, t := range []*transcoder.Transcoder{precision, manual} {
		decoded, err := t.Decode(p)
		if err != nil {
			return err
		}

		if !bytes.Equal(data, decoded) {
			return Error.New("%s engine round trip mismatch: %x != %x", t.Engine(), data, decoded)
		}
	}

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "ok %s\n", p)

	return Error.Wrap(err)
}

func (a *app) presets(cmd *cobra.Command, args []string) (err error) {
	w := cmd.OutOrStdout()

	for _, e := range a.catalog.Alphabets {
		err = list(w, e.Name, e.Symbols)
		if err != nil {
			return err
		}
	}

	for _, name := range preset.Names() {
		s, _ := preset.Lookup(name)

		err = list(w, name, s)
		if err != nil {
			return err
		}
	}

	return nil
}

func list(w io.Writer, name, symbols string) error {
	_, err := fmt.Fprintf(w, "%s\t%s\n", name, symbols)

	return Error.Wrap(err)
}
