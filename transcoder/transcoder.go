package transcoder

import (
	"strings"

	"github.com/calebcase/multibase/alphabet"
	"github.com/calebcase/multibase/symbol"
)

// Engine selects the arithmetic used by a Transcoder.
type Engine int

// Engines.
const (
	EnginePrecision Engine = iota
	EngineManual
)

var engineNames = map[Engine]string{
	EnginePrecision: "precision",
	EngineManual:    "manual",
}

// String returns the name of the engine.
func (e Engine) String() string {
	name, ok := engineNames[e]
	if !ok {
		return "unknown"
	}

	return name
}

// ParseEngine returns the engine with the given name. The empty name selects
// EnginePrecision.
func ParseEngine(name string) (e Engine, err error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return EnginePrecision, nil
	}

	for e, n := range engineNames {
		if n == name {
			return e, nil
		}
	}

	return EnginePrecision, Error.New("unknown engine: %q", name)
}

type options struct {
	engine Engine
	mode   symbol.Mode
}

// Option configures a Transcoder.
type Option func(o *options)

// WithEngine selects the engine. The default is EnginePrecision.
func WithEngine(e Engine) Option {
	return func(o *options) {
		o.engine = e
	}
}

// WithMode selects how the alphabet string is split into symbols. The
// default is symbol.Runes. It has no effect on NewFromAlphabet.
func WithMode(m symbol.Mode) Option {
	return func(o *options) {
		o.mode = m
	}
}

// Transcoder is a Codec bound to an alphabet and an engine.
type Transcoder struct {
	Codec

	alphabet *alphabet.Alphabet
	engine   Engine
}

var _ Codec = (*Transcoder)(nil)

// New returns a transcoder for the alphabet made of the symbols of s. It
// fails with a *DuplicateSymbolsError if any symbol is repeated.
func New(s string, opts ...Option) (t *Transcoder, err error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	a, err := alphabet.Parse(s, o.mode)
	if err != nil {
		return nil, err
	}

	return NewFromAlphabet(a, opts...), nil
}

// MustNew is like New but panics on error.
func MustNew(s string, opts ...Option) *Transcoder {
	t, err := New(s, opts...)
	if err != nil {
		panic(err)
	}

	return t
}

// NewFromAlphabet returns a transcoder for an already validated alphabet.
func NewFromAlphabet(a *alphabet.Alphabet, opts ...Option) *Transcoder {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	t := &Transcoder{
		alphabet: a,
		engine:   o.engine,
	}

	switch o.engine {
	case EngineManual:
		t.Codec = NewManual(a)
	default:
		t.engine = EnginePrecision
		t.Codec = NewPrecision(a)
	}

	return t
}

// Alphabet returns the alphabet of the transcoder.
func (t *Transcoder) Alphabet() *alphabet.Alphabet {
	return t.alphabet
}

// Engine returns the engine of the transcoder.
func (t *Transcoder) Engine() Engine {
	return t.engine
}
